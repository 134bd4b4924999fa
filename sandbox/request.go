package sandbox

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/isdmx/previewbox/shims"
	"github.com/isdmx/previewbox/theme"
)

// Theme selects the default theme of the assembled preview.
type Theme string

// Supported themes
const (
	ThemeLight Theme = theme.Light
	ThemeDark  Theme = theme.Dark
)

// ParseTheme converts a theme name into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unsupported theme: %q, must be %q or %q", s, ThemeLight, ThemeDark)
	}
}

// Request describes one preview project.
type Request struct {
	// DemoComponentName is the export of DemoCode to render, either bare or
	// as a property of the demo's default-exported Variants object.
	DemoComponentName string `json:"demo_component_name" validate:"required,jsident"`
	// ComponentSlug is the basename of the component module.
	ComponentSlug string `json:"component_slug" validate:"required,slug"`
	// RelativeImportPath is the directory the component module lives in.
	// Empty means the project root.
	RelativeImportPath string `json:"relative_import_path" validate:"importdir"`
	Code               string `json:"code"`
	DemoCode           string `json:"demo_code"`
	Theme              Theme  `json:"theme" validate:"required,oneof=light dark"`
}

// ComponentImportPath is the specifier the entry point imports the component
// by: RelativeImportPath + "/" + ComponentSlug.
func (r *Request) ComponentImportPath() string {
	return r.RelativeImportPath + "/" + r.ComponentSlug
}

// ComponentFilePath is the file set key the component source is written to.
// The runtime resolves ComponentImportPath to it by extension.
func (r *Request) ComponentFilePath() string {
	return r.ComponentImportPath() + ComponentExt
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("jsident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return validSlug(fl.Field().String())
		})

		_ = v.RegisterValidation("importdir", func(fl validator.FieldLevel) bool {
			return validImportDir(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// modulesRoot holds the shim library. User components never live under it.
var modulesRoot = path.Dir(shims.Prefix)

// validSegment accepts one path segment free of separators, quotes and
// control characters.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, "/\\'\"`") {
		return false
	}
	return !strings.ContainsFunc(s, unicode.IsControl)
}

// validSlug accepts a single path segment.
func validSlug(s string) bool {
	return validSegment(s)
}

// validImportDir accepts "" or an absolute, slash-separated directory with
// no trailing slash, no "." or ".." segments, outside the shim modules root.
func validImportDir(s string) bool {
	if s == "" {
		return true
	}
	if !strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") {
		return false
	}
	if s == modulesRoot || strings.HasPrefix(s, modulesRoot+"/") {
		return false
	}
	for _, seg := range strings.Split(s[1:], "/") {
		if !validSegment(seg) {
			return false
		}
	}
	return true
}

// Validate checks the request shape. It does not look at Code or DemoCode.
func (r *Request) Validate() error {
	err := validatorInstance().Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewValidationError("", err.Error(), err)
	}

	fe := verrs[0]
	return NewValidationError(fe.Field(), validationMessage(fe), err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "jsident":
		return fmt.Sprintf("%q is not a valid identifier", fe.Value())
	case "slug":
		return fmt.Sprintf("%q must be a single path segment without separators, quotes or control characters", fe.Value())
	case "importdir":
		return fmt.Sprintf("%q must be empty or an absolute directory outside %s, without trailing slash, dot segments, quotes or control characters", fe.Value(), modulesRoot)
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

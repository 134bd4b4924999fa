package sandbox

import (
	"errors"
	"fmt"
	"sync"

	"github.com/isdmx/previewbox/shims"
	"github.com/isdmx/previewbox/theme"
)

// static is the request-independent part of every project, built once.
var (
	staticOnce sync.Once
	shimFiles  []File
	assetFiles []File
)

func loadStatic() {
	for _, f := range shims.Files() {
		shimFiles = append(shimFiles, File{Path: f.Path, Content: f.Content})
	}
	assetFiles = []File{
		{Path: UtilsPath, Content: utilsSource},
		{Path: GlobalsPath, Content: theme.GlobalsCSS()},
		{Path: TailwindPath, Content: theme.TailwindConfig()},
		{Path: TSConfigPath, Content: renderTSConfig()},
	}
}

// Assemble builds the preview project for req. It returns a *ValidationError
// if req is malformed, including when the component path coincides with a
// path the project reserves; that error wraps the *CollisionError. The result
// depends only on req.
func Assemble(req Request) (*FileSet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	staticOnce.Do(loadStatic)

	entry, err := renderEntry(&req)
	if err != nil {
		return nil, fmt.Errorf("failed to render entry point: %w", err)
	}

	files := NewFileSet()
	put := func(path, content string) {
		if err == nil {
			err = files.Put(path, content)
		}
	}

	put(EntryPath, entry)
	put(ThemeProviderPath, themeProviderSource)
	for _, f := range shimFiles {
		put(f.Path, f.Content)
	}
	put(req.ComponentFilePath(), req.Code)
	put(DemoPath, req.DemoCode)
	for _, f := range assetFiles {
		put(f.Path, f.Content)
	}

	if err != nil {
		var collision *CollisionError
		if errors.As(err, &collision) {
			return nil, NewValidationError("component_slug",
				fmt.Sprintf("component path %s collides with a reserved path", collision.Path), collision)
		}
		return nil, err
	}
	return files, nil
}

// ReservedPaths returns the paths every project occupies regardless of the
// request, in the order Assemble writes them.
func ReservedPaths() []string {
	staticOnce.Do(loadStatic)
	paths := []string{EntryPath, ThemeProviderPath}
	for _, f := range shimFiles {
		paths = append(paths, f.Path)
	}
	paths = append(paths, DemoPath)
	for _, f := range assetFiles {
		paths = append(paths, f.Path)
	}
	return paths
}

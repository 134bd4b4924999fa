package shims

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestFiles(t *testing.T) {
	files := Files()
	require.Len(t, files, len(order))

	t.Run("AllUnderPrefix", func(t *testing.T) {
		for _, f := range files {
			assert.True(t, strings.HasPrefix(f.Path, Prefix+"/"), f.Path)
			assert.NotEmpty(t, f.Content, f.Path)
		}
	})

	t.Run("PackageDescriptor", func(t *testing.T) {
		pkg := files[0]
		assert.Equal(t, "/node_modules/next/package.json", pkg.Path)
		require.True(t, gjson.Valid(pkg.Content))
		assert.Equal(t, "next", gjson.Get(pkg.Content, "name").String())
		assert.Equal(t, "index.js", gjson.Get(pkg.Content, "main").String())
	})

	t.Run("StableAcrossCalls", func(t *testing.T) {
		assert.Equal(t, files, Files())
	})

	t.Run("CallerCannotMutateCatalog", func(t *testing.T) {
		mutated := Files()
		mutated[0].Content = "{}"
		assert.Equal(t, files, Files())
	})
}

func TestShimContracts(t *testing.T) {
	byName := map[string]string{}
	for _, f := range Files() {
		byName[strings.TrimPrefix(f.Path, Prefix+"/")] = f.Content
	}

	tests := []struct {
		name     string
		contains []string
	}{
		{"index.js", []string{"Image", "Link", "useRouter", "RouterProvider", "Head", "Script", "dynamic", "Roboto", "Document"}},
		{"image.js", []string{"src, alt, width, height, ...props", "<img"}},
		{"link.js", []string{"href, children, onClick", "event.preventDefault()", "console.log(`Navigating to ", "onClick={handleClick}"}},
		{"router.js", []string{"pathname: '/'", "push:", "replace:", "useContext(RouterContext)", "RouterContext.Provider"}},
		{"head.js", []string{"{children}"}},
		{"script.js", []string{"<script src={src}"}},
		{"dynamic.js", []string{"React.lazy(importFunc)", "Suspense", "Loading..."}},
		{"font.js", []string{"className: 'font-roboto'"}},
		{"document.js", []string{"<html", "<head>", `id="__next"`, "<script />"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, ok := byName[tt.name]
			require.True(t, ok, "missing shim %s", tt.name)
			for _, want := range tt.contains {
				assert.Contains(t, content, want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, "next", names[0])
	assert.Contains(t, names, "next/image")
	assert.Contains(t, names, "next/router")
	assert.Contains(t, names, "next/document")
	assert.NotContains(t, names, "next/package")
	assert.Len(t, names, len(order)-1)
}

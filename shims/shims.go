package shims

import (
	"embed"
	"path"
	"strings"
	"sync"
)

// Prefix is the virtual directory the shims are written under. Bare
// "next/..." import specifiers resolve against it inside the preview runtime.
const Prefix = "/node_modules/next"

//go:embed next/*
var nextFS embed.FS

// File is a single shim module.
type File struct {
	Path    string
	Content string
}

// catalog order; package.json first so the runtime sees the package
// descriptor before its entry module.
var order = []string{
	"package.json",
	"index.js",
	"image.js",
	"link.js",
	"router.js",
	"head.js",
	"script.js",
	"dynamic.js",
	"font.js",
	"document.js",
}

var (
	loadOnce sync.Once
	catalog  []File
)

func load() {
	catalog = make([]File, 0, len(order))
	for _, name := range order {
		data, err := nextFS.ReadFile("next/" + name)
		if err != nil {
			// Every name in order is embedded; a miss means the binary was
			// built from a broken tree.
			panic("shims: missing embedded module " + name + ": " + err.Error())
		}
		catalog = append(catalog, File{
			Path:    path.Join(Prefix, name),
			Content: string(data),
		})
	}
}

// Files returns the shim catalog in a fixed order. The returned slice is a
// copy; the underlying contents are shared and never change.
func Files() []File {
	loadOnce.Do(load)
	out := make([]File, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the import specifiers the catalog satisfies, e.g. "next/image".
// The package entry itself is reported as "next".
func Names() []string {
	names := make([]string, 0, len(order))
	for _, name := range order {
		switch {
		case name == "package.json":
			continue
		case name == "index.js":
			names = append(names, "next")
		default:
			names = append(names, "next/"+strings.TrimSuffix(name, ".js"))
		}
	}
	return names
}

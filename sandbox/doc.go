// Package sandbox assembles self-contained preview projects.
//
// A preview project is a virtual file set, a mapping of absolute paths to
// text, that an isolated in-browser or out-of-process runtime bundles and
// renders. Given the source of a user-authored component and a demo that
// renders it, the assembler adds an entry point, a theme provider, the
// framework shims from package shims, the styling assets from package theme
// and a module-resolution config, so the component can be previewed without
// the host framework.
//
// The assembler never inspects the submitted sources. Syntax errors, missing
// exports and unsupported imports surface only when the consuming runtime
// executes the project.
//
// Usage:
//
//	files, err := sandbox.Assemble(sandbox.Request{
//	    DemoComponentName:  "Card",
//	    ComponentSlug:      "card",
//	    RelativeImportPath: "/components",
//	    Code:               code,
//	    DemoCode:           demo,
//	    Theme:              sandbox.ThemeDark,
//	})
package sandbox

// Package shims provides stand-in modules for the host UI framework.
//
// Component and demo sources submitted for preview are written against the
// next framework and import modules such as next/image, next/link or
// next/router. The preview runtime does not ship that framework, so the
// modules in this package are placed under node_modules/next in the assembled
// project. Each shim keeps the call signature user code expects and collapses
// behavior to the minimum needed for a visual render: navigation is inert,
// head content renders in place, lazy loading falls back to a text
// placeholder. None of them throw.
//
// The catalog is embedded at build time and is identical for every request.
//
// Usage:
//
//	for _, f := range shims.Files() {
//	    fmt.Println(f.Path)
//	}
package shims

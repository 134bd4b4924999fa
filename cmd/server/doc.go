// Package main is the entry point for the previewbox MCP server.
//
// The server assembles self-contained preview projects for user-authored UI
// components: given a component and a demo that renders it, it returns the
// virtual file set an isolated in-browser or out-of-process runtime needs to
// render the component without the host framework. It supports both stdio
// and HTTP transports.
//
// The application uses Uber's fx framework for dependency injection and lifecycle
// management, with zap for structured logging and viper for configuration.
package main

// Package mcpserver provides the Model Context Protocol (MCP) server implementation.
//
// The mcpserver package exposes the preview project assembler as MCP tools
// using the mark3labs/mcp-go library. The assemble_sandbox_project tool turns
// a component and its demo into a virtual file set for an isolated preview
// runtime; open_sandbox_project reopens an exported archive or file map and
// reports which files came from the request; list_shims reports which
// host-framework modules the generated projects stand in for.
//
// The server supports both stdio and HTTP transports as configured by the
// application configuration.
//
// Usage:
//
//	server, err := mcpserver.New(config, logger, assembler)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = server.ServeStdio() // or server.ServeHTTP()
package mcpserver

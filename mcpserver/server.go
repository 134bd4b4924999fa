package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/isdmx/previewbox/config"
	"github.com/isdmx/previewbox/sandbox"
	"github.com/isdmx/previewbox/shims"
)

// Output formats of the assemble_sandbox_project tool
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MCPServer represents the MCP server
type MCPServer struct {
	config    *config.Config
	logger    *zap.Logger
	assembler sandbox.Assembler
	mcpServer *server.MCPServer
}

// assembleResult is the payload of a successful assemble_sandbox_project call
type assembleResult struct {
	Files      *sandbox.FileSet `json:"files" yaml:"files"`
	ArchiveTar string           `json:"archive_tar,omitempty" yaml:"archive_tar,omitempty"`
}

// openResult is the payload of a successful open_sandbox_project call
type openResult struct {
	Files      *sandbox.FileSet `json:"files" yaml:"files"`
	ArchiveTar string           `json:"archive_tar,omitempty" yaml:"archive_tar,omitempty"`

	sandbox.Inventory `yaml:",inline"`
}

// New creates a new MCPServer
func New(cfg *config.Config, logger *zap.Logger, assembler sandbox.Assembler) (*MCPServer, error) {
	s := &MCPServer{
		config:    cfg,
		logger:    logger,
		assembler: assembler,
	}

	logger.Info("configuration loaded",
		zap.String("server.transport", s.config.Server.Transport),
		zap.Int("server.http_port", s.config.Server.HTTPPort),
		zap.String("logging.mode", s.config.Logging.Mode),
		zap.String("logging.level", s.config.Logging.Level),
		zap.String("logging.output", s.config.Logging.Output),
		zap.String("preview.default_theme", s.config.Preview.DefaultTheme),
		zap.Strings("preview.archive_excludes", s.config.Preview.ArchiveExcludes),
		zap.Int("preview.max_archive_size_mb", s.config.Preview.MaxArchiveSizeMB),
	)

	s.mcpServer = server.NewMCPServer("previewbox", "0.1.0")

	s.registerAssembleTool()
	s.registerOpenTool()
	s.registerListShimsTool()

	return s, nil
}

// registerAssembleTool registers the assemble_sandbox_project tool
func (s *MCPServer) registerAssembleTool() {
	tool := mcp.Tool{
		Name:        "assemble_sandbox_project",
		Description: "Assemble a self-contained preview project for a UI component and its demo",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"demo_component_name": map[string]any{
					"type":        "string",
					"description": "Export of the demo source to render",
				},
				"component_slug": map[string]any{
					"type":        "string",
					"description": "Basename of the component module, without extension",
				},
				"relative_import_path": map[string]any{
					"type":        "string",
					"description": "Absolute directory of the component module, e.g. /components/ui; empty for the project root",
				},
				"code": map[string]any{
					"type":        "string",
					"description": "Component source",
				},
				"demo_code": map[string]any{
					"type":        "string",
					"description": "Demo source that imports and renders the component",
				},
				"theme": map[string]any{
					"type":        "string",
					"description": "Default theme of the preview",
					"enum":        []string{string(sandbox.ThemeLight), string(sandbox.ThemeDark)},
				},
				"format": map[string]any{
					"type":        "string",
					"description": "Encoding of the returned file set",
					"enum":        []string{FormatJSON, FormatYAML},
				},
				"archive": map[string]any{
					"type":        "boolean",
					"description": "Also return the file set as a base64-encoded tar.gz",
				},
			},
			Required: []string{"demo_component_name", "component_slug", "code", "demo_code"},
		},
	}

	s.mcpServer.AddTool(tool, s.handleAssemble)
}

// registerOpenTool registers the open_sandbox_project tool
func (s *MCPServer) registerOpenTool() {
	tool := mcp.Tool{
		Name:        "open_sandbox_project",
		Description: "Reopen an exported preview project from its archive or its JSON file map, list the user files and the missing reserved files, and optionally repack it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"archive_tar": map[string]any{
					"type":        "string",
					"description": "Base64-encoded tar.gz as returned by assemble_sandbox_project",
				},
				"files": map[string]any{
					"type":        "string",
					"description": "JSON object mapping absolute path to file content",
				},
				"format": map[string]any{
					"type":        "string",
					"description": "Encoding of the returned file set",
					"enum":        []string{FormatJSON, FormatYAML},
				},
				"archive": map[string]any{
					"type":        "boolean",
					"description": "Also return the file set as a base64-encoded tar.gz",
				},
			},
		},
	}

	s.mcpServer.AddTool(tool, s.handleOpen)
}

// registerListShimsTool registers the list_shims tool
func (s *MCPServer) registerListShimsTool() {
	tool := mcp.Tool{
		Name:        "list_shims",
		Description: "List the host-framework modules that assembled projects provide stand-ins for",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	s.mcpServer.AddTool(tool, s.handleListShims)
}

// handleAssemble handles the assemble_sandbox_project tool
func (s *MCPServer) handleAssemble(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()
	log := s.logger.With(zap.String("request_id", requestID))
	log.Info("preview assembly requested")

	demoComponentName, err := request.RequireString("demo_component_name")
	if err != nil {
		return nil, fmt.Errorf("demo_component_name parameter is required: %w", err)
	}

	componentSlug, err := request.RequireString("component_slug")
	if err != nil {
		return nil, fmt.Errorf("component_slug parameter is required: %w", err)
	}

	code, err := request.RequireString("code")
	if err != nil {
		return nil, fmt.Errorf("code parameter is required: %w", err)
	}

	demoCode, err := request.RequireString("demo_code")
	if err != nil {
		return nil, fmt.Errorf("demo_code parameter is required: %w", err)
	}

	format := request.GetString("format", FormatJSON)
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("invalid format: %s, must be one of: json, yaml", format)
	}

	req := sandbox.Request{
		DemoComponentName:  demoComponentName,
		ComponentSlug:      componentSlug,
		RelativeImportPath: request.GetString("relative_import_path", ""),
		Code:               code,
		DemoCode:           demoCode,
		Theme:              sandbox.Theme(request.GetString("theme", "")),
	}

	files, err := s.assembler.Assemble(req)
	if err != nil {
		var verr *sandbox.ValidationError
		if errors.As(err, &verr) {
			log.Info("preview request rejected", zap.Error(err))
			return errorResult(fmt.Sprintf("Invalid request: %v", err)), nil
		}
		log.Error("preview assembly failed", zap.Error(err))
		return errorResult(fmt.Sprintf("Assembly failed: %v", err)), nil
	}

	result := assembleResult{Files: files}

	if request.GetBool("archive", false) {
		archive, archiveErr := s.assembler.Archive(files)
		if archiveErr != nil {
			log.Error("preview archive failed", zap.Error(archiveErr))
			return errorResult(fmt.Sprintf("Archive failed: %v", archiveErr)), nil
		}
		result.ArchiveTar = base64.StdEncoding.EncodeToString(archive)
	}

	text, err := encodeResult(result, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	log.Info("preview assembly completed",
		zap.String("component_path", req.ComponentFilePath()),
		zap.Int("files", files.Len()),
		zap.String("format", format),
		zap.Bool("archive", result.ArchiveTar != ""))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}

// handleOpen handles the open_sandbox_project tool
func (s *MCPServer) handleOpen(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()
	log := s.logger.With(zap.String("request_id", requestID))

	archiveTar := request.GetString("archive_tar", "")
	filesJSON := request.GetString("files", "")
	if (archiveTar == "") == (filesJSON == "") {
		return nil, errors.New("exactly one of archive_tar or files is required")
	}

	format := request.GetString("format", FormatJSON)
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("invalid format: %s, must be one of: json, yaml", format)
	}

	var files *sandbox.FileSet
	if archiveTar != "" {
		log.Info("preview archive open requested", zap.Int("archive_tar_len", len(archiveTar)))

		data, err := base64.StdEncoding.DecodeString(archiveTar)
		if err != nil {
			return errorResult(fmt.Sprintf("Invalid archive_tar: %v", err)), nil
		}
		files, err = s.assembler.Open(data)
		if err != nil {
			log.Info("preview archive rejected", zap.Error(err))
			return errorResult(fmt.Sprintf("Open failed: %v", err)), nil
		}
	} else {
		log.Info("preview file map open requested", zap.Int("files_len", len(filesJSON)))

		files = sandbox.NewFileSet()
		if err := json.Unmarshal([]byte(filesJSON), files); err != nil {
			log.Info("preview file map rejected", zap.Error(err))
			return errorResult(fmt.Sprintf("Invalid files: %v", err)), nil
		}
	}

	result := openResult{Files: files, Inventory: sandbox.TakeInventory(files)}

	if request.GetBool("archive", false) {
		archive, err := s.assembler.Archive(files)
		if err != nil {
			log.Error("preview archive failed", zap.Error(err))
			return errorResult(fmt.Sprintf("Archive failed: %v", err)), nil
		}
		result.ArchiveTar = base64.StdEncoding.EncodeToString(archive)
	}

	text, err := encodeResult(result, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	log.Info("preview project opened",
		zap.Int("files", files.Len()),
		zap.Int("user_files", len(result.UserPaths)),
		zap.Int("missing_reserved", len(result.MissingReserved)),
		zap.String("format", format))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}

// handleListShims handles the list_shims tool
func (*MCPServer) handleListShims(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(map[string]any{
		"prefix":  shims.Prefix,
		"modules": shims.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode shim list: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(payload),
			},
		},
	}, nil
}

func encodeResult(result any, format string) (string, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(result)
		return string(data), err
	default:
		data, err := json.Marshal(result)
		return string(data), err
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
		IsError: true,
	}
}

// ServeStdio starts the server on stdio
func (s *MCPServer) ServeStdio() error {
	s.logger.Info("starting MCP server on stdio")
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP starts the server on HTTP
func (s *MCPServer) ServeHTTP() error {
	port := s.config.Server.HTTPPort
	s.logger.Info("starting MCP server on HTTP", zap.Int("port", port))

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)
	return httpServer.Start(fmt.Sprintf(":%d", port))
}

// GetMCPServer returns the underlying MCP server for fx
func (s *MCPServer) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

package sandbox

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/isdmx/previewbox/config"
)

// Assembler builds preview projects, packs them into archives and reopens
// those archives.
type Assembler interface {
	Assemble(req Request) (*FileSet, error)
	Archive(files *FileSet) ([]byte, error)
	Open(archive []byte) (*FileSet, error)
}

// Config holds configuration for the ProjectAssembler
type Config struct {
	DefaultTheme     Theme
	ArchiveExcludes  []string
	MaxArchiveSizeMB int
}

// ProjectAssembler implements Assembler on top of Assemble, filling in the
// configured default theme and logging each build.
type ProjectAssembler struct {
	logger *zap.Logger
	config *Config
}

// NewAssembler creates a new ProjectAssembler
func NewAssembler(logger *zap.Logger, config *Config) *ProjectAssembler {
	return &ProjectAssembler{
		logger: logger,
		config: config,
	}
}

// NewFromConfig creates the Assembler described by the application config
func NewFromConfig(logger *zap.Logger, cfg *config.Config) (Assembler, error) {
	defaultTheme, err := ParseTheme(cfg.Preview.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("invalid preview.default_theme: %w", err)
	}

	return NewAssembler(logger, &Config{
		DefaultTheme:     defaultTheme,
		ArchiveExcludes:  cfg.Preview.ArchiveExcludes,
		MaxArchiveSizeMB: cfg.Preview.MaxArchiveSizeMB,
	}), nil
}

// Assemble builds the project for req. An empty theme falls back to the
// configured default.
//
//nolint:gocritic // Request is passed by value to keep callers' copies untouched
func (a *ProjectAssembler) Assemble(req Request) (*FileSet, error) {
	if req.Theme == "" {
		req.Theme = a.config.DefaultTheme
	}

	files, err := Assemble(req)
	if err != nil {
		a.logger.Warn("preview assembly rejected",
			zap.Error(err),
			zap.String("component_slug", req.ComponentSlug),
			zap.String("relative_import_path", req.RelativeImportPath))
		return nil, err
	}

	a.logger.Debug("preview assembled",
		zap.String("demo_component_name", req.DemoComponentName),
		zap.String("component_path", req.ComponentFilePath()),
		zap.String("theme", string(req.Theme)),
		zap.Int("files", files.Len()),
		zap.Int("code_len", len(req.Code)),
		zap.Int("demo_code_len", len(req.DemoCode)))

	return files, nil
}

// Archive packs files as tar.gz with the configured excludes and size limit.
func (a *ProjectAssembler) Archive(files *FileSet) ([]byte, error) {
	data, err := files.Archive(a.config.ArchiveExcludes)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}

	limit := a.config.MaxArchiveSizeMB * BytesPerMB
	if len(data) > limit {
		return nil, fmt.Errorf("%w: %d bytes > %d bytes", ErrArchiveTooLarge, len(data), limit)
	}

	return data, nil
}

// Open reads an archive produced by Archive back into a file set. Archives
// over the configured size limit are refused before decompression.
func (a *ProjectAssembler) Open(archive []byte) (*FileSet, error) {
	limit := a.config.MaxArchiveSizeMB * BytesPerMB
	if len(archive) > limit {
		return nil, fmt.Errorf("%w: %d bytes > %d bytes", ErrArchiveTooLarge, len(archive), limit)
	}

	files, err := ExtractArchive(archive)
	if err != nil {
		a.logger.Warn("preview archive rejected", zap.Error(err), zap.Int("archive_len", len(archive)))
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	a.logger.Debug("preview archive opened",
		zap.Int("archive_len", len(archive)),
		zap.Int("files", files.Len()))

	return files, nil
}

package sandbox

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// File permission and size constants
const (
	FilePermission  = 0644
	BytesPerMB      = 1024 * 1024
	maxArchiveEntry = 64 * BytesPerMB
)

// ErrArchiveTooLarge is returned when an archive exceeds the configured limit.
var ErrArchiveTooLarge = errors.New("archive size exceeds limit")

// Archive writes the file set as a tar.gz with paths relative to the project
// root, skipping entries that match any of excludes. A pattern ending in "/"
// excludes a directory and everything below it; any other pattern is matched
// against the file's basename with path.Match semantics.
//
// Headers carry a fixed timestamp, so equal file sets produce equal archives.
func (fs *FileSet) Archive(excludes []string) ([]byte, error) {
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	tarWriter := tar.NewWriter(gzipWriter)

	for pair := fs.entries().Oldest(); pair != nil; pair = pair.Next() {
		relPath := strings.TrimPrefix(pair.Key, "/")
		if shouldExcludeFile(relPath, excludes) {
			continue
		}

		header := &tar.Header{
			Name:     relPath,
			Mode:     FilePermission,
			Size:     int64(len(pair.Value)),
			Typeflag: tar.TypeReg,
			ModTime:  time.Unix(0, 0),
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			return nil, fmt.Errorf("failed to write header for %s: %w", pair.Key, err)
		}
		if _, err := io.WriteString(tarWriter, pair.Value); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", pair.Key, err)
		}
	}

	if err := tarWriter.Close(); err != nil {
		return nil, err
	}
	if err := gzipWriter.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExtractArchive reads a tar.gz produced by Archive back into a FileSet.
// Entries are keyed by "/" + their cleaned relative name; absolute names and
// names escaping the root are rejected. Directory entries are skipped.
func ExtractArchive(data []byte) (*FileSet, error) {
	gzipReader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)
	files := NewFileSet()

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading tar: %w", err)
		}

		if path.IsAbs(header.Name) {
			return nil, fmt.Errorf("absolute path not allowed in tar: %s", header.Name)
		}
		cleanName := path.Clean(header.Name)
		if cleanName == ".." || strings.HasPrefix(cleanName, "../") {
			return nil, fmt.Errorf("unsafe relative path in tar: %s", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			continue
		case tar.TypeReg:
			if header.Size > maxArchiveEntry {
				return nil, fmt.Errorf("tar entry %s too large: %d bytes", header.Name, header.Size)
			}
			content := make([]byte, header.Size)
			if _, err := io.ReadFull(tarReader, content); err != nil {
				return nil, fmt.Errorf("failed to read file content: %w", err)
			}
			if err := files.Put("/"+cleanName, string(content)); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported file type in tar: %c", header.Typeflag)
		}
	}

	return files, nil
}

// shouldExcludeFile reports whether relPath matches any exclude pattern.
func shouldExcludeFile(relPath string, excludePatterns []string) bool {
	base := path.Base(relPath)
	for _, pattern := range excludePatterns {
		if pattern == "" {
			continue
		}
		if dir, ok := strings.CutSuffix(pattern, "/"); ok {
			if strings.HasPrefix(relPath, dir+"/") || strings.Contains(relPath, "/"+dir+"/") {
				return true
			}
			continue
		}
		if relPath == pattern {
			return true
		}
		if matched, err := path.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

package sandbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// File is a single entry of a FileSet.
type File struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// FileSet is an insertion-ordered mapping from virtual absolute path to file
// content. Paths are unique: a second Put to the same path fails with a
// *CollisionError instead of replacing the first write.
//
// The zero value is an empty set. A FileSet is not safe for concurrent
// mutation. Assemble returns a fresh one
// per call, owned by the caller.
type FileSet struct {
	files *orderedmap.OrderedMap[string, string]
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{files: orderedmap.New[string, string]()}
}

func (fs *FileSet) entries() *orderedmap.OrderedMap[string, string] {
	if fs.files == nil {
		fs.files = orderedmap.New[string, string]()
	}
	return fs.files
}

// Put adds a file.
func (fs *FileSet) Put(path, content string) error {
	files := fs.entries()
	if _, exists := files.Get(path); exists {
		return &CollisionError{Path: path}
	}
	files.Set(path, content)
	return nil
}

// Get returns the content stored at path.
func (fs *FileSet) Get(path string) (string, bool) {
	return fs.entries().Get(path)
}

// Len returns the number of files.
func (fs *FileSet) Len() int {
	return fs.entries().Len()
}

// Paths returns the paths in insertion order.
func (fs *FileSet) Paths() []string {
	paths := make([]string, 0, fs.entries().Len())
	for pair := fs.entries().Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	return paths
}

// Files returns the entries in insertion order.
func (fs *FileSet) Files() []File {
	files := make([]File, 0, fs.entries().Len())
	for pair := fs.entries().Oldest(); pair != nil; pair = pair.Next() {
		files = append(files, File{Path: pair.Key, Content: pair.Value})
	}
	return files
}

// MarshalJSON encodes the set as a JSON object keyed by path, in insertion
// order.
func (fs *FileSet) MarshalJSON() ([]byte, error) {
	return fs.entries().MarshalJSON()
}

// UnmarshalJSON adds the entries of a JSON object keyed by path, in document
// order. A path repeated in data, or already present in the set, fails with a
// *CollisionError and leaves the set unchanged.
//
// The object is read token by token: decoding into a map first would keep
// only the last of two duplicate keys.
func (fs *FileSet) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode file set: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed to decode file set: expected an object, got %v", tok)
	}

	decoded := NewFileSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode file set: %w", err)
		}
		filePath, ok := tok.(string)
		if !ok {
			return fmt.Errorf("failed to decode file set: unexpected token %v", tok)
		}

		var content string
		if err := dec.Decode(&content); err != nil {
			return fmt.Errorf("failed to decode content of %s: %w", filePath, err)
		}
		if err := decoded.Put(filePath, content); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode file set: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("failed to decode file set: unexpected data after object")
	}

	for _, p := range decoded.Paths() {
		if _, exists := fs.Get(p); exists {
			return &CollisionError{Path: p}
		}
	}
	for _, f := range decoded.Files() {
		fs.entries().Set(f.Path, f.Content)
	}
	return nil
}

// MarshalYAML encodes the set as a YAML mapping keyed by path, in insertion
// order.
func (fs *FileSet) MarshalYAML() (interface{}, error) {
	return fs.entries().MarshalYAML()
}

// Package writer persists the index artifact: a single JSON array of index
// records. Writes go to a temporary file in the destination directory and are
// renamed into place, so readers never observe a truncated artifact.
package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f4ah6o/postindex-go/internal/content"
)

// ErrOutputDirMissing is returned when the artifact's parent directory does
// not exist. The writer never creates it.
var ErrOutputDirMissing = errors.New("output directory does not exist")

// Writer serializes index records to the artifact path.
type Writer struct {
	perm os.FileMode
}

// New creates a new Writer instance.
func New() *Writer {
	return &Writer{perm: 0644}
}

// Encode renders records as the artifact's JSON text: two-space indentation,
// HTML characters left unescaped, trailing newline. A nil or empty slice
// encodes as [].
func Encode(records []content.IndexRecord) ([]byte, error) {
	if records == nil {
		records = []content.IndexRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the artifact at path with records. The previous artifact is
// left untouched if any step before the final rename fails.
func (w *Writer) Write(path string, records []content.IndexRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(w.perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	committed = true

	return nil
}

// Read loads an artifact written by Write.
func Read(path string) ([]content.IndexRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var records []content.IndexRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse index %s: %w", path, err)
	}
	return records, nil
}

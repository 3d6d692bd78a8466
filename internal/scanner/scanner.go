// Package scanner enumerates content units under a content root.
// Each direct subdirectory of the root is a candidate; it becomes a unit only
// when it contains the primary document.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f4ah6o/postindex-go/internal/content"
)

var (
	// ErrRootNotFound is returned when the content root does not exist.
	ErrRootNotFound = errors.New("content root not found")
	// ErrRootNotDir is returned when the content root is not a directory.
	ErrRootNotDir = errors.New("content root is not a directory")
)

// Result is the outcome of a scan pass.
type Result struct {
	// Units are the candidates, in directory listing order (sorted by name).
	Units []content.ContentUnit
	// Skipped lists subdirectories without a primary document.
	Skipped []content.Skip
}

// Scanner lists content units below a root directory.
type Scanner struct {
	document string
}

// New creates a Scanner that looks for the named primary document
// (for example "index.md") in each subdirectory.
func New(document string) *Scanner {
	return &Scanner{document: document}
}

// Scan lists the direct subdirectories of root. Files directly under root are
// ignored. A missing root is fatal; a subdirectory without the primary
// document is recorded in Result.Skipped.
func (s *Scanner) Scan(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list content root %s: %w", root, err)
	}

	res := &Result{}
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(entry, dir) {
			continue
		}

		docPath := filepath.Join(dir, s.document)
		if !isFile(docPath) {
			res.Skipped = append(res.Skipped, content.Skip{
				Slug:   entry.Name(),
				Reason: content.ReasonNoDocument,
			})
			continue
		}

		res.Units = append(res.Units, content.ContentUnit{
			Slug:         entry.Name(),
			DocumentPath: docPath,
		})
	}

	return res, nil
}

// isDir follows symlinks so a linked post directory still counts.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

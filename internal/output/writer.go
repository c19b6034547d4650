// Package output persists accepted values documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nauticalab/values-engine/internal/document"
)

// header is written above every generated values file.
const header = "# Generated by valuesgen. Re-run the generator instead of hand-editing.\n"

// Writer writes validated values documents. It never writes a document that
// failed validation; callers enforce that ordering.
type Writer struct {
	force bool
}

// NewWriter creates a writer. With force set an existing destination file is
// overwritten instead of rejected.
func NewWriter(force bool) *Writer {
	return &Writer{force: force}
}

// Write marshals doc and writes it to destPath, creating parent directories
// as needed.
func (w *Writer) Write(doc *document.Document, destPath string) error {
	if !w.force {
		if _, err := os.Stat(destPath); err == nil {
			return fmt.Errorf("refusing to overwrite existing file %s (use --force)", destPath)
		}
	}

	data, err := document.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal values: %w", err)
	}

	if dir := filepath.Dir(destPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	out := append([]byte(header), data...)
	if err := os.WriteFile(destPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return nil
}

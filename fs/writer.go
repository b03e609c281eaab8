// Package fs writes ranking output to the local filesystem.
package fs

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/filmrank"
)

// Encode writes ranking as indented JSON.
func Encode(w io.Writer, ranking *filmrank.Ranking) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ranking)
}

// Writer writes a ranking to a JSON file with atomic replace semantics:
// the output is written to a temporary file in the same directory and
// renamed over the destination only once fully written.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the file at path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRanking encodes ranking and moves it into place.
func (w *Writer) WriteRanking(ranking *filmrank.Ranking) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := Encode(tmp, ranking); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
)

// loadDocument reads the JSON document at path into dst.
//
// Failure handling follows the data-loss policy of the original data format:
// a missing file leaves dst at its zero value (callers treat that as the
// documented empty default), and an unreadable or corrupt document also
// degrades to the zero value — but is surfaced as a logged warning instead of
// failing the request.
func loadDocument(path string, dst any, log *logger.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("document unreadable, using empty default")
		}
		return
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("document corrupt, using empty default")
	}
}

// saveDocument writes src as indented UTF-8 JSON to path, wholesale.
//
// The write goes through a temp file in the same directory followed by a
// rename, so readers never observe a partially written document. The parent
// directory is created if needed.
func saveDocument(path string, src any) error {
	raw, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	return nil
}

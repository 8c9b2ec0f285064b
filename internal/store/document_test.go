package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDocument struct {
	Items []string `json:"items"`
}

func TestLoadDocument(t *testing.T) {
	t.Run("missing file leaves zero value", func(t *testing.T) {
		var doc testDocument
		loadDocument(filepath.Join(t.TempDir(), "missing.json"), &doc, logger.Nop())
		assert.Empty(t, doc.Items)
	})

	t.Run("corrupt file leaves zero value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"items": [truncated`), 0o644))

		var doc testDocument
		loadDocument(path, &doc, logger.Nop())
		assert.Empty(t, doc.Items)
	})

	t.Run("valid file loads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ok.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"items": ["a", "b"]}`), 0o644))

		var doc testDocument
		loadDocument(path, &doc, logger.Nop())
		assert.Equal(t, []string{"a", "b"}, doc.Items)
	})
}

func TestSaveDocument(t *testing.T) {
	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "doc.json")
		require.NoError(t, saveDocument(path, &testDocument{Items: []string{"x"}}))

		var doc testDocument
		loadDocument(path, &doc, logger.Nop())
		assert.Equal(t, []string{"x"}, doc.Items)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "doc.json")
		require.NoError(t, saveDocument(path, &testDocument{Items: []string{"x"}}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "doc.json", entries[0].Name())
	})

	t.Run("unencodable value fails with sentinel", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.json")
		err := saveDocument(path, make(chan int))
		require.ErrorIs(t, err, ErrWritingDocument)
	})
}

package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// memoriesDocument is the exact on-disk shape of memories/<username>.json:
// a mapping from "YYYY-MM-DD" to the entries written on that date.
type memoriesDocument struct {
	Memories map[string][]models.MemoryEntry `json:"memories"`
}

// memoryRepository is the flat-file implementation of [MemoryRepository].
// Each user owns one document under the memories/ directory; nothing is ever
// shared between users.
type memoryRepository struct {
	dir    string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewMemoryRepository constructs a [MemoryRepository] persisting per-user
// documents under dataDir/memories.
func NewMemoryRepository(dataDir string, logger *logger.Logger) MemoryRepository {
	logger.Debug().Msg("MemoryRepository created")
	return &memoryRepository{
		dir:    filepath.Join(dataDir, "memories"),
		logger: logger,
	}
}

func (r *memoryRepository) userPath(username string) string {
	return filepath.Join(r.dir, username+".json")
}

func (r *memoryRepository) AddEntry(ctx context.Context, username, date string, entry models.MemoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc memoriesDocument
	loadDocument(r.userPath(username), &doc, r.logger)
	if doc.Memories == nil {
		doc.Memories = make(map[string][]models.MemoryEntry)
	}

	doc.Memories[date] = append(doc.Memories[date], entry)

	if err := saveDocument(r.userPath(username), &doc); err != nil {
		r.logger.Err(err).Str("func", "*memoryRepository.AddEntry").Msg("error persisting memories document")
		return err
	}

	return nil
}

func (r *memoryRepository) ListEntries(ctx context.Context, username, date string) ([]models.MemoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc memoriesDocument
	loadDocument(r.userPath(username), &doc, r.logger)

	return doc.Memories[date], nil
}

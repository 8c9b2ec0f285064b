package store

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
)

// Storages bundles every repository backed by the flat-file data directory.
// Constructed once at process start and handed to the service layer; no
// package-level state exists anywhere in the store.
type Storages struct {
	AccountRepository    AccountRepository
	SessionRepository    SessionRepository
	GroupRegistry        GroupRegistry
	RecordRepository     RecordRepository
	QuestionRepository   QuestionRepository
	MemoryRepository     MemoryRepository
	DecorationRepository DecorationRepository
}

// NewStorages creates the data directory if needed and wires up all
// flat-file repositories against it.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	return &Storages{
		AccountRepository:    NewAccountRepository(cfg.DataDir, logger),
		SessionRepository:    NewSessionRepository(cfg.DataDir, logger),
		GroupRegistry:        NewGroupRegistry(cfg.DataDir, logger),
		RecordRepository:     NewRecordRepository(cfg.DataDir, logger),
		QuestionRepository:   NewQuestionRepository(cfg.DataDir, logger),
		MemoryRepository:     NewMemoryRepository(cfg.DataDir, logger),
		DecorationRepository: NewDecorationRepository(cfg.DataDir, logger),
	}, nil
}

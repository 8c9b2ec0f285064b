package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// memoryService is the concrete implementation of MemoryService.
type memoryService struct {
	memoryRepository     store.MemoryRepository
	decorationRepository store.DecorationRepository

	// now is the clock used to stamp new entries; overridable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewMemoryService constructs a MemoryService.
func NewMemoryService(memories store.MemoryRepository, decos store.DecorationRepository, logger *logger.Logger) MemoryService {
	return &memoryService{
		memoryRepository:     memories,
		decorationRepository: decos,
		now:                  time.Now,
		logger:               logger,
	}
}

// AddEntry appends a memory entry for (username, date). Both title and text
// must be non-empty after trimming; the entry is stamped with the server
// clock and returned.
func (s *memoryService) AddEntry(ctx context.Context, username, date, title, text string) (models.MemoryEntry, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.MemoryEntry{}, ErrInvalidDataProvided
	}
	if !validDate(date) {
		return models.MemoryEntry{}, ErrValidationBadDate
	}

	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" || text == "" {
		return models.MemoryEntry{}, ErrValidationEmptyMemoryFields
	}

	entry := models.MemoryEntry{Title: title, Text: text, TS: s.now()}
	if err := s.memoryRepository.AddEntry(ctx, username, date, entry); err != nil {
		log.Err(err).Str("username", username).Str("date", date).Msg("memory entry persist failed")
		return models.MemoryEntry{}, fmt.Errorf("memory entry persist failed: %w", err)
	}

	return entry, nil
}

func (s *memoryService) ListEntries(ctx context.Context, username, date string) ([]models.MemoryEntry, error) {
	if username == "" || !validDate(date) {
		return nil, ErrInvalidDataProvided
	}

	return s.memoryRepository.ListEntries(ctx, username, date)
}

// SaveDecoration quietly overwrites the decoration for (username, date);
// that is the whole contract.
func (s *memoryService) SaveDecoration(ctx context.Context, username, date string, deco models.Decoration) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return ErrInvalidDataProvided
	}
	if !validDate(date) {
		return ErrValidationBadDate
	}

	if err := s.decorationRepository.Save(ctx, username, date, deco); err != nil {
		log.Err(err).Str("username", username).Str("date", date).Msg("decoration persist failed")
		return fmt.Errorf("decoration persist failed: %w", err)
	}

	return nil
}

func (s *memoryService) GetDecoration(ctx context.Context, username, date string) (models.Decoration, bool, error) {
	if username == "" || !validDate(date) {
		return models.Decoration{}, false, ErrInvalidDataProvided
	}

	return s.decorationRepository.Find(ctx, username, date)
}

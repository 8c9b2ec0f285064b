package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// sessionRepository is the flat-file implementation of [SessionRepository].
// The whole document is the session itself: sessions.json holds a single
// {"username","role"} object while someone is logged in and is removed on
// logout.
type sessionRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] persisting to
// sessions.json inside dataDir.
func NewSessionRepository(dataDir string, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("SessionRepository created")
	return &sessionRepository{
		path:   filepath.Join(dataDir, "sessions.json"),
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, s models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := saveDocument(r.path, &s); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error persisting session document")
		return err
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s models.Session
	loadDocument(r.path, &s, r.logger)

	// An absent or corrupt document reads back as the zero session.
	if s.Username == "" {
		return models.Session{}, false, nil
	}

	return s, true, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error removing session document")
		return err
	}

	return nil
}

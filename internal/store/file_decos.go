package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// decosDocument is the exact on-disk shape of decos/<username>.json.
type decosDocument struct {
	Decos map[string]models.Decoration `json:"decos"`
}

// decorationRepository is the flat-file implementation of
// [DecorationRepository]. Saves quietly overwrite whatever was there before.
type decorationRepository struct {
	dir    string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewDecorationRepository constructs a [DecorationRepository] persisting
// per-user documents under dataDir/decos.
func NewDecorationRepository(dataDir string, logger *logger.Logger) DecorationRepository {
	logger.Debug().Msg("DecorationRepository created")
	return &decorationRepository{
		dir:    filepath.Join(dataDir, "decos"),
		logger: logger,
	}
}

func (r *decorationRepository) userPath(username string) string {
	return filepath.Join(r.dir, username+".json")
}

func (r *decorationRepository) Save(ctx context.Context, username, date string, deco models.Decoration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc decosDocument
	loadDocument(r.userPath(username), &doc, r.logger)
	if doc.Decos == nil {
		doc.Decos = make(map[string]models.Decoration)
	}

	doc.Decos[date] = deco

	if err := saveDocument(r.userPath(username), &doc); err != nil {
		r.logger.Err(err).Str("func", "*decorationRepository.Save").Msg("error persisting decos document")
		return err
	}

	return nil
}

func (r *decorationRepository) Find(ctx context.Context, username, date string) (models.Decoration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc decosDocument
	loadDocument(r.userPath(username), &doc, r.logger)

	deco, ok := doc.Decos[date]
	return deco, ok, nil
}

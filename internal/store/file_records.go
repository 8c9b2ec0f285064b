package store

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// recordsDocument is the exact on-disk shape of diagnosis.json.
type recordsDocument struct {
	Records []models.DailyRecord `json:"records"`
}

// recordRepository is the flat-file implementation of [RecordRepository].
//
// One record per (username, date) is enforced here with a compound-key scan
// rather than at the UI: disabling a submit button is not an invariant.
type recordRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] persisting to
// diagnosis.json inside dataDir.
func NewRecordRepository(dataDir string, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("RecordRepository created")
	return &recordRepository{
		path:   filepath.Join(dataDir, "diagnosis.json"),
		logger: logger,
	}
}

func (r *recordRepository) SubmitRecord(ctx context.Context, rec models.DailyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc recordsDocument
	loadDocument(r.path, &doc, r.logger)

	for _, existing := range doc.Records {
		if existing.Username == rec.Username && existing.Date == rec.Date {
			r.logger.Debug().Str("username", rec.Username).Str("date", rec.Date).Msg("record already submitted")
			return ErrAlreadySubmitted
		}
	}

	doc.Records = append(doc.Records, rec)
	if err := saveDocument(r.path, &doc); err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.SubmitRecord").Msg("error persisting records document")
		return err
	}

	return nil
}

func (r *recordRepository) HasSubmitted(ctx context.Context, username, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc recordsDocument
	loadDocument(r.path, &doc, r.logger)

	for _, rec := range doc.Records {
		if rec.Username == username && rec.Date == date {
			return true, nil
		}
	}

	return false, nil
}

func (r *recordRepository) FindByUsernames(ctx context.Context, usernames []string) ([]models.DailyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc recordsDocument
	loadDocument(r.path, &doc, r.logger)

	wanted := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		wanted[u] = struct{}{}
	}

	var matched []models.DailyRecord
	for _, rec := range doc.Records {
		if _, ok := wanted[rec.Username]; ok {
			matched = append(matched, rec)
		}
	}

	// Display order: newest date first, username descending as tiebreaker.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].Username > matched[j].Username
	})

	return matched, nil
}

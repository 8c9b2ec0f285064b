package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// questionsDocument is the exact on-disk shape of questions.json.
type questionsDocument struct {
	CustomQuestions []models.CustomQuestion `json:"custom_questions"`
}

// questionRepository is the flat-file implementation of [QuestionRepository].
// Questions are append-only and never mutated after creation.
type questionRepository struct {
	path   string
	mu     sync.Mutex
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewQuestionRepository constructs a [QuestionRepository] persisting to
// questions.json inside dataDir.
func NewQuestionRepository(dataDir string, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("QuestionRepository created")
	return &questionRepository{
		path:   filepath.Join(dataDir, "questions.json"),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *questionRepository) CreateQuestion(ctx context.Context, q models.CustomQuestion) (models.CustomQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc questionsDocument
	loadDocument(r.path, &doc, r.logger)

	q.ID = r.ids.Generate()
	doc.CustomQuestions = append(doc.CustomQuestions, q)

	if err := saveDocument(r.path, &doc); err != nil {
		r.logger.Err(err).Str("func", "*questionRepository.CreateQuestion").Msg("error persisting questions document")
		return models.CustomQuestion{}, err
	}

	return q, nil
}

func (r *questionRepository) FindByTarget(ctx context.Context, username string) ([]models.CustomQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc questionsDocument
	loadDocument(r.path, &doc, r.logger)

	var targeted []models.CustomQuestion
	for _, q := range doc.CustomQuestions {
		for _, t := range q.Targets {
			if t == username {
				targeted = append(targeted, q)
				break
			}
		}
	}

	return targeted, nil
}

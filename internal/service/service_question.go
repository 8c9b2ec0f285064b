package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// questionService is the concrete implementation of QuestionService.
type questionService struct {
	questionRepository store.QuestionRepository

	logger *logger.Logger
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(questions store.QuestionRepository, logger *logger.Logger) QuestionService {
	return &questionService{
		questionRepository: questions,
		logger:             logger,
	}
}

// Create validates a sender-authored question and stores it. Validation:
// non-empty text and creator, at least one target, a known type, min < max
// for scale questions, at least two options for choice questions. The id on
// q is ignored; the repository assigns one.
func (s *questionService) Create(ctx context.Context, q models.CustomQuestion) (models.CustomQuestion, error) {
	log := logger.FromContext(ctx)

	q.Text = strings.TrimSpace(q.Text)
	if q.Creator == "" || q.Text == "" {
		return models.CustomQuestion{}, ErrInvalidDataProvided
	}
	if len(q.Targets) == 0 {
		return models.CustomQuestion{}, ErrValidationNoTargets
	}
	if !q.Type.Valid() {
		return models.CustomQuestion{}, ErrValidationUnknownType
	}
	if q.Type == models.QuestionScale && q.Min >= q.Max {
		return models.CustomQuestion{}, ErrValidationBadScaleBounds
	}
	if q.Type == models.QuestionChoice && len(q.Options) < 2 {
		return models.CustomQuestion{}, ErrValidationNotEnoughOptions
	}

	created, err := s.questionRepository.CreateQuestion(ctx, q)
	if err != nil {
		log.Err(err).Str("creator", q.Creator).Msg("question creation ended with error")
		return models.CustomQuestion{}, fmt.Errorf("question creation ended with error: %w", err)
	}

	return created, nil
}

func (s *questionService) ForReceiver(ctx context.Context, username string) ([]models.CustomQuestion, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.questionRepository.FindByTarget(ctx, username)
}

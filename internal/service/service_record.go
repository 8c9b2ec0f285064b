package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// defaultQuestions is the built-in self-assessment set every receiver sees.
// Exposed through the service so the UI never hard-codes it.
var defaultQuestions = []models.CustomQuestion{
	{ID: "mood", Text: "How is your mood today?", Type: models.QuestionScale, Min: 1, Max: 5},
	{ID: "sleep", Text: "Did you sleep well last night?", Type: models.QuestionScale, Min: 1, Max: 5},
	{ID: "pain", Text: "How much pain are you in? (0-10)", Type: models.QuestionScale, Min: 0, Max: 10},
	{ID: "diet", Text: "How were your meals?", Type: models.QuestionChoice, Options: []string{"not enough", "okay", "ate well"}},
	{ID: "activity", Text: "How active were you today?", Type: models.QuestionScale, Min: 1, Max: 5},
}

// recordService is the concrete implementation of RecordService.
type recordService struct {
	recordRepository store.RecordRepository
	groupService     GroupService

	logger *logger.Logger
}

// NewRecordService constructs a RecordService. The group service supplies
// the receivers set for the monitoring view.
func NewRecordService(records store.RecordRepository, groups GroupService, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: records,
		groupService:     groups,
		logger:           logger,
	}
}

func (s *recordService) HasSubmitted(ctx context.Context, username, date string) (bool, error) {
	if username == "" || !validDate(date) {
		return false, ErrInvalidDataProvided
	}

	return s.recordRepository.HasSubmitted(ctx, username, date)
}

// Submit validates and stores a self-assessment. The one-record-per-day rule
// lives in the store, so a double submission surfaces as
// store.ErrAlreadySubmitted regardless of what the UI disabled.
func (s *recordService) Submit(ctx context.Context, rec models.DailyRecord) error {
	log := logger.FromContext(ctx)

	if rec.Username == "" || len(rec.Answers) == 0 {
		return ErrInvalidDataProvided
	}
	if !validDate(rec.Date) {
		return ErrValidationBadDate
	}

	if err := s.recordRepository.SubmitRecord(ctx, rec); err != nil {
		log.Err(err).Str("username", rec.Username).Str("date", rec.Date).Msg("record submission ended with error")
		return fmt.Errorf("record submission ended with error: %w", err)
	}

	return nil
}

// Monitor returns the daily records of every receiver connected to sender
// through group membership, sorted by (date, username) descending. A sender
// with no receivers gets an empty result, never their own records.
func (s *recordService) Monitor(ctx context.Context, sender string) ([]models.DailyRecord, error) {
	log := logger.FromContext(ctx)

	receivers, err := s.groupService.Receivers(ctx, sender)
	if err != nil {
		log.Err(err).Str("sender", sender).Msg("resolving receivers ended with error")
		return nil, fmt.Errorf("resolving receivers ended with error: %w", err)
	}
	if len(receivers) == 0 {
		return nil, nil
	}

	return s.recordRepository.FindByUsernames(ctx, receivers)
}

func (s *recordService) DefaultQuestions() []models.CustomQuestion {
	questions := make([]models.CustomQuestion, len(defaultQuestions))
	copy(questions, defaultQuestions)
	return questions
}

// validDate reports whether date is a well-formed "YYYY-MM-DD" calendar date.
func validDate(date string) bool {
	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}

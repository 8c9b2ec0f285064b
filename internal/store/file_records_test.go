package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepository_SubmitRecord(t *testing.T) {
	repo := NewRecordRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	rec := models.DailyRecord{
		Username: "bob",
		Date:     "2026-08-30",
		Answers:  map[string]any{"mood": float64(4)},
		Memo:     "walked to the park",
	}

	t.Run("first submission succeeds", func(t *testing.T) {
		require.NoError(t, repo.SubmitRecord(ctx, rec))
	})

	t.Run("second submission for the same day is rejected", func(t *testing.T) {
		dup := rec
		dup.Memo = "different memo"
		require.ErrorIs(t, repo.SubmitRecord(ctx, dup), ErrAlreadySubmitted)
	})

	t.Run("same user, next day is allowed", func(t *testing.T) {
		next := rec
		next.Date = "2026-08-31"
		require.NoError(t, repo.SubmitRecord(ctx, next))
	})

	t.Run("other user, same day is allowed", func(t *testing.T) {
		other := rec
		other.Username = "carol"
		require.NoError(t, repo.SubmitRecord(ctx, other))
	})
}

func TestRecordRepository_HasSubmitted(t *testing.T) {
	repo := NewRecordRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	submitted, err := repo.HasSubmitted(ctx, "bob", "2026-08-30")
	require.NoError(t, err)
	assert.False(t, submitted)

	require.NoError(t, repo.SubmitRecord(ctx, models.DailyRecord{Username: "bob", Date: "2026-08-30"}))

	submitted, err = repo.HasSubmitted(ctx, "bob", "2026-08-30")
	require.NoError(t, err)
	assert.True(t, submitted)

	submitted, err = repo.HasSubmitted(ctx, "bob", "2026-08-31")
	require.NoError(t, err)
	assert.False(t, submitted)
}

func TestRecordRepository_FindByUsernames(t *testing.T) {
	repo := NewRecordRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	seed := []models.DailyRecord{
		{Username: "bob", Date: "2026-08-29"},
		{Username: "carol", Date: "2026-08-30"},
		{Username: "bob", Date: "2026-08-30"},
		{Username: "mallory", Date: "2026-08-30"},
	}
	for _, rec := range seed {
		require.NoError(t, repo.SubmitRecord(ctx, rec))
	}

	t.Run("filters and orders newest first", func(t *testing.T) {
		records, err := repo.FindByUsernames(ctx, []string{"bob", "carol"})
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "carol", records[0].Username)
		assert.Equal(t, "2026-08-30", records[0].Date)
		assert.Equal(t, "bob", records[1].Username)
		assert.Equal(t, "2026-08-30", records[1].Date)
		assert.Equal(t, "bob", records[2].Username)
		assert.Equal(t, "2026-08-29", records[2].Date)
	})

	t.Run("no usernames yields nothing", func(t *testing.T) {
		records, err := repo.FindByUsernames(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRecordRepository_AnswersSurviveRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewRecordRepository(dir, logger.Nop())
	require.NoError(t, first.SubmitRecord(ctx, models.DailyRecord{
		Username: "bob",
		Date:     "2026-08-30",
		Answers:  map[string]any{"mood": float64(5), "sleep": "7-9"},
	}))

	second := NewRecordRepository(dir, logger.Nop())
	records, err := second.FindByUsernames(ctx, []string{"bob"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, float64(5), records[0].Answers["mood"])
	assert.Equal(t, "7-9", records[0].Answers["sleep"])
}

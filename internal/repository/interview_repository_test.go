package repository

import (
	"context"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChronologicalPage(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	user := testutil.SeedUser(t, db, "pages@example.com")
	other := testutil.SeedUser(t, db, "other@example.com")
	repo := NewInterviewRepository(db)

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	// 两条记录时间相同，按 id 决定先后
	for _, rec := range []model.InterviewRecord{
		{UserID: user.ID, Type: model.InterviewDSA, CompletedAt: base.Add(2 * time.Hour)},
		{UserID: user.ID, Type: model.InterviewHR, CompletedAt: base},
		{UserID: user.ID, Type: model.InterviewTechnical, CompletedAt: base},
		{UserID: other.ID, Type: model.InterviewHR, CompletedAt: base.Add(time.Hour)},
		{UserID: user.ID, Type: model.InterviewHR, CompletedAt: base.Add(time.Hour)},
	} {
		require.NoError(t, repo.Create(ctx, &rec))
	}

	var got []model.InterviewType
	var after *TrendCursor
	pages := 0
	for {
		page, err := repo.ChronologicalPage(ctx, user.ID, after, 2)
		require.NoError(t, err)
		pages++
		for _, rec := range page {
			got = append(got, rec.Type)
		}
		if len(page) < 2 {
			break
		}
		last := page[len(page)-1]
		after = &TrendCursor{CompletedAt: last.CompletedAt, ID: last.ID}
	}

	assert.Equal(t, []model.InterviewType{
		model.InterviewHR, model.InterviewTechnical, model.InterviewHR, model.InterviewDSA,
	}, got)
	assert.Equal(t, 3, pages)
}

package repository

import (
	"context"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlan(userID uint, topics ...string) *model.StudyPlan {
	day := model.DailyPlan{DayIndex: 0}
	for i, topic := range topics {
		day.Tasks = append(day.Tasks, model.StudyTask{Position: i, Topic: topic, EstimatedMinutes: 30})
	}
	return &model.StudyPlan{
		UserID:     userID,
		TargetRole: "Dev",
		Status:     model.StudyPlanActive,
		TotalTasks: len(topics),
		DailyPlans: []model.DailyPlan{day},
	}
}

func TestPointerCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	user := testutil.SeedUser(t, db, "cas@example.com")
	repo := NewStudyPlanRepository(db)

	ptr, err := repo.GetPointer(ctx, nil, user.ID, false)
	require.NoError(t, err)
	assert.Nil(t, ptr)

	first := newPlan(user.ID, "A")
	require.NoError(t, repo.Create(ctx, nil, first))
	require.NoError(t, repo.CreatePointer(ctx, nil, user.ID, first.ID))
	assert.ErrorIs(t, repo.CreatePointer(ctx, nil, user.ID, first.ID), gorm.ErrDuplicatedKey)

	stale, err := repo.GetPointer(ctx, nil, user.ID, false)
	require.NoError(t, err)
	require.NotNil(t, stale)
	assert.Equal(t, int64(1), stale.Version)

	second := newPlan(user.ID, "B")
	require.NoError(t, repo.Create(ctx, nil, second))
	swapped, err := repo.SwapPointer(ctx, nil, stale, second.ID)
	require.NoError(t, err)
	assert.True(t, swapped)

	third := newPlan(user.ID, "C")
	require.NoError(t, repo.Create(ctx, nil, third))
	swapped, err = repo.SwapPointer(ctx, nil, stale, third.ID)
	require.NoError(t, err)
	assert.False(t, swapped, "stale version must not win")

	header, err := repo.FindCurrentHeader(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, header.ID)
}

func TestCountTasksAndSupersede(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	user := testutil.SeedUser(t, db, "count@example.com")
	repo := NewStudyPlanRepository(db)

	plan := newPlan(user.ID, "A", "B", "C")
	require.NoError(t, repo.Create(ctx, nil, plan))

	loaded, err := repo.FindByID(ctx, nil, plan.ID)
	require.NoError(t, err)
	require.Len(t, loaded.DailyPlans[0].Tasks, 3)
	assert.Equal(t, "B", loaded.DailyPlans[0].Tasks[1].Topic)

	now := time.Now()
	require.NoError(t, repo.UpdateTaskCompletion(ctx, nil, loaded.DailyPlans[0].Tasks[2].ID, true, &now))
	total, completed, err := repo.CountTasks(ctx, nil, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, completed)

	require.NoError(t, repo.MarkSuperseded(ctx, nil, plan.ID, now))
	plans, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, model.StudyPlanSuperseded, plans[0].Status)
	assert.NotNil(t, plans[0].SupersededAt)
}

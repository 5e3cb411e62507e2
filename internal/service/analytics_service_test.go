package service

import (
	"context"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/internal/testutil"
	"interview_coach_backend/internal/util"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func TestAnalyticsUnknownUser(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.analytics.PerformanceTrend(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = f.analytics.GetDashboard(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestDashboardWithoutData(t *testing.T) {
	f := newPlanFixture(t)
	user := testutil.SeedUser(t, f.db, "fresh@example.com")

	dashboard, err := f.analytics.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Dashboard{}, *dashboard)

	seq, err := f.analytics.PerformanceTrend(context.Background(), user.ID)
	require.NoError(t, err)
	points, err := CollectTrend(seq)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestDashboardAveragesPerType(t *testing.T) {
	ctx := context.Background()
	f := newPlanFixture(t)
	user := testutil.SeedUser(t, f.db, "scores@example.com")

	inputs := []RecordInterviewInput{
		{Type: "HR", Score: score(80)},
		{Type: "hr", Score: score(90)},
		{Type: "HR"},
		{Type: "Technical", Score: score(70)},
	}
	for _, in := range inputs {
		_, err := f.interview.Record(ctx, user.ID, in)
		require.NoError(t, err)
	}

	dashboard, err := f.analytics.GetDashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, dashboard.TotalInterviews)
	assert.InDelta(t, 85.0, dashboard.HRScore, 0.001)
	assert.InDelta(t, 70.0, dashboard.TechnicalScore, 0.001)
	assert.Equal(t, 0.0, dashboard.DSAScore)
	assert.Equal(t, 0.0, dashboard.StudyProgress)
}

func TestPerformanceTrendOrderAndNullScores(t *testing.T) {
	ctx := context.Background()
	f := newPlanFixture(t)
	user := testutil.SeedUser(t, f.db, "trend@example.com")

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []RecordInterviewInput{
		{Type: "DSA", Score: score(60), CompletedAt: ptrTime(base.Add(48 * time.Hour))},
		{Type: "HR", CompletedAt: ptrTime(base)},
		{Type: "Technical", Score: score(75), CompletedAt: ptrTime(base.Add(24 * time.Hour))},
	}
	for _, in := range records {
		_, err := f.interview.Record(ctx, user.ID, in)
		require.NoError(t, err)
	}

	seq, err := f.analytics.PerformanceTrend(ctx, user.ID)
	require.NoError(t, err)
	points, err := CollectTrend(seq)
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.Equal(t, model.InterviewHR, points[0].Type)
	assert.Nil(t, points[0].Score)
	assert.Equal(t, model.InterviewTechnical, points[1].Type)
	assert.Equal(t, model.InterviewDSA, points[2].Type)
	assert.InDelta(t, 60.0, *points[2].Score, 0.001)
	for i := 1; i < len(points); i++ {
		assert.False(t, points[i].Date.Before(points[i-1].Date))
	}

	// 序列可重复遍历，并能看到之后写入的数据
	_, err = f.interview.Record(ctx, user.ID, RecordInterviewInput{Type: "HR", Score: score(50), CompletedAt: ptrTime(base.Add(72 * time.Hour))})
	require.NoError(t, err)
	points, err = CollectTrend(seq)
	require.NoError(t, err)
	assert.Len(t, points, 4)

	// 提前结束遍历
	n := 0
	for _, err := range seq {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestPerformanceTrendMixedOffsets(t *testing.T) {
	ctx := context.Background()
	f := newPlanFixture(t)
	user := testutil.SeedUser(t, f.db, "offsets@example.com")

	cst := time.FixedZone("CST", 8*3600)
	hrAt := time.Date(2024, 3, 1, 10, 0, 0, 0, cst) // 02:00Z
	dsaAt := time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)
	_, err := f.interview.Record(ctx, user.ID, RecordInterviewInput{Type: "HR", Score: score(70), CompletedAt: &hrAt})
	require.NoError(t, err)
	_, err = f.interview.Record(ctx, user.ID, RecordInterviewInput{Type: "DSA", Score: score(80), CompletedAt: &dsaAt})
	require.NoError(t, err)

	seq, err := f.analytics.PerformanceTrend(ctx, user.ID)
	require.NoError(t, err)
	points, err := CollectTrend(seq)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, model.InterviewHR, points[0].Type)
	assert.Equal(t, model.InterviewDSA, points[1].Type)
	assert.True(t, points[0].Date.Equal(hrAt))
	assert.True(t, points[1].Date.Equal(dsaAt))
}

// 遍历趋势时在循环体内访问数据库，测试库只有一个连接
func TestPerformanceTrendAllowsQueriesWhileIterating(t *testing.T) {
	ctx := context.Background()
	f := newPlanFixture(t)
	f.analytics.TrendPageSize = 2
	user := testutil.SeedUser(t, f.db, "paged@example.com")

	base := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := f.interview.Record(ctx, user.ID, RecordInterviewInput{
			Type:        "Technical",
			Score:       score(float64(50 + i)),
			CompletedAt: ptrTime(base.Add(time.Duration(i) * time.Hour)),
		})
		require.NoError(t, err)
	}

	seq, err := f.analytics.PerformanceTrend(ctx, user.ID)
	require.NoError(t, err)

	done := make(chan []float64, 1)
	go func() {
		var scores []float64
		for p, err := range seq {
			if err != nil {
				break
			}
			scores = append(scores, *p.Score)
			if _, err := f.analytics.GetDashboard(ctx, user.ID); err != nil {
				break
			}
		}
		done <- scores
	}()

	select {
	case scores := <-done:
		assert.Equal(t, []float64{50, 51, 52, 53, 54}, scores)
	case <-time.After(10 * time.Second):
		t.Fatal("trend iteration blocked on the database connection")
	}
}

func TestDashboardCacheReflectsWrites(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := repository.NewDashboardCache(rdb, time.Minute)

	f := newPlanFixtureWithCache(t, cache)
	user := testutil.SeedUser(t, f.db, "cached@example.com")
	f.saveGap(t, user.ID, "A", "B")
	_, err := f.plans.GenerateForUser(ctx, user.ID)
	require.NoError(t, err)

	first, err := f.analytics.GetDashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalTasks)
	assert.Equal(t, 0, first.CompletedTasks)

	current, err := f.plans.GetCurrentPlan(ctx, user.ID)
	require.NoError(t, err)

	// 模拟并发读者：在写入之前取得代号并完成计算，写入提交之后才回填缓存
	_, staleGen, err := cache.Get(ctx, user.ID)
	require.NoError(t, err)
	stale := *first

	_, err = f.plans.SetTaskCompletion(ctx, user.ID, current.ID, 0, 0, true)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, user.ID, staleGen, &stale))

	after, err := f.analytics.GetDashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.CompletedTasks)
	assert.InDelta(t, 50.0, after.StudyProgress, 0.001)

	_, err = f.interview.Record(ctx, user.ID, RecordInterviewInput{Type: "HR", Score: score(90)})
	require.NoError(t, err)
	after, err = f.analytics.GetDashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.TotalInterviews)
	assert.InDelta(t, 90.0, after.HRScore, 0.001)

	// 缓存不可用时仍从数据库计算
	mr.Close()
	after, err = f.analytics.GetDashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.CompletedTasks)
}

func TestRecordInterviewValidation(t *testing.T) {
	f := newPlanFixture(t)
	user := testutil.SeedUser(t, f.db, "bad@example.com")

	cases := []RecordInterviewInput{
		{Type: ""},
		{Type: "HR", Score: score(-1)},
		{Type: "HR", Score: score(100.5)},
	}
	for _, in := range cases {
		_, err := f.interview.Record(context.Background(), user.ID, in)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

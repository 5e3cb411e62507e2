package repository

import (
	"context"
	"interview_coach_backend/internal/model"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*DashboardCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewDashboardCache(rdb, 30*time.Second), mr
}

func TestDashboardCacheWithoutRedis(t *testing.T) {
	ctx := context.Background()
	var nilCache *DashboardCache
	for _, c := range []*DashboardCache{nilCache, NewDashboardCache(nil, 0)} {
		d, gen, err := c.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, d)
		assert.Zero(t, gen)
		assert.NoError(t, c.Set(ctx, 1, gen, &model.Dashboard{TotalInterviews: 3}))
		assert.NoError(t, c.Invalidate(ctx, 1))
	}
}

func TestDashboardCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t)

	d, gen, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, d)

	want := &model.Dashboard{TotalInterviews: 2, HRScore: 80, TotalTasks: 4, CompletedTasks: 1, StudyProgress: 25}
	require.NoError(t, c.Set(ctx, 7, gen, want))

	got, _, err := c.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *want, *got)

	// 其他用户不受影响
	other, _, err := c.Get(ctx, 8)
	require.NoError(t, err)
	assert.Nil(t, other)

	mr.FastForward(31 * time.Second)
	expired, _, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestDashboardCacheInvalidateDropsEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := newRedisCache(t)

	_, gen, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, 1, gen, &model.Dashboard{CompletedTasks: 1}))
	require.NoError(t, c.Invalidate(ctx, 1))

	d, newGen, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Greater(t, newGen, gen)
}

// 读者未命中后计算期间发生写入并失效，读者随后写回的旧值不能被后续读取看到
func TestDashboardCacheStaleWriteAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newRedisCache(t)

	_, readerGen, err := c.Get(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, 1))
	require.NoError(t, c.Set(ctx, 1, readerGen, &model.Dashboard{CompletedTasks: 0, TotalTasks: 2}))

	d, gen, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, d)

	fresh := &model.Dashboard{CompletedTasks: 1, TotalTasks: 2, StudyProgress: 50}
	require.NoError(t, c.Set(ctx, 1, gen, fresh))
	d, _, err = c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.CompletedTasks)
}

func TestDashboardCacheRedisDown(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t)
	mr.Close()

	_, _, err := c.Get(ctx, 1)
	assert.Error(t, err)
	assert.Error(t, c.Invalidate(ctx, 1))
}

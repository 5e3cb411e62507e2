package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"interview_coach_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

// DashboardCache 仪表盘缓存，Redis 未启用时所有操作为空操作。
// 每个用户维护一个代号，写操作通过 INCR 使旧代号下的缓存全部失效
type DashboardCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardCache{Redis: rdb, TTL: ttl}
}

func generationKey(userID uint) string {
	return fmt.Sprintf("analytics:dashboard:gen:%d", userID)
}

func dashboardKey(userID uint, gen int64) string {
	return fmt.Sprintf("analytics:dashboard:%d:%d", userID, gen)
}

// Get 返回当前代号下的缓存与代号本身，未命中时仪表盘为 nil。
// 未命中后重新计算的结果应以同一个代号调用 Set
func (c *DashboardCache) Get(ctx context.Context, userID uint) (*model.Dashboard, int64, error) {
	if c == nil || c.Redis == nil {
		return nil, 0, nil
	}
	gen, err := c.Redis.Get(ctx, generationKey(userID)).Int64()
	if err != nil && err != redis.Nil {
		return nil, 0, err
	}

	raw, err := c.Redis.Get(ctx, dashboardKey(userID, gen)).Bytes()
	if err == redis.Nil {
		return nil, gen, nil
	}
	if err != nil {
		return nil, gen, err
	}
	var d model.Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, gen, err
	}
	return &d, gen, nil
}

// Set 写入指定代号下的缓存；代号已过期时写入的数据不会再被读到，随 TTL 过期
func (c *DashboardCache) Set(ctx context.Context, userID uint, gen int64, d *model.Dashboard) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, dashboardKey(userID, gen), raw, c.TTL).Err()
}

func (c *DashboardCache) Invalidate(ctx context.Context, userID uint) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	return c.Redis.Incr(ctx, generationKey(userID)).Err()
}

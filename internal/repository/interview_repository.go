package repository

import (
	"context"
	"interview_coach_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// InterviewRepository 面试记录只追加，不提供更新和删除
type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

func (r *InterviewRepository) Create(ctx context.Context, record *model.InterviewRecord) error {
	return r.DB.WithContext(ctx).Create(record).Error
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]model.InterviewRecord, error) {
	var records []model.InterviewRecord
	q := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&records).Error
	return records, err
}

// TrendCursor 指向上一页最后一条记录
type TrendCursor struct {
	CompletedAt time.Time
	ID          uint
}

// ChronologicalPage 按 (completed_at, id) 升序取一页，after 为 nil 时从第一条开始。
// 每页查询完即释放连接，调用方在两页之间可以自由访问数据库
func (r *InterviewRepository) ChronologicalPage(ctx context.Context, userID uint, after *TrendCursor, limit int) ([]model.InterviewRecord, error) {
	var records []model.InterviewRecord
	q := r.DB.WithContext(ctx).
		Where("user_id = ?", userID)
	if after != nil {
		q = q.Where("completed_at > ? OR (completed_at = ? AND id > ?)", after.CompletedAt, after.CompletedAt, after.ID)
	}
	err := q.Order("completed_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// TypeStats 按面试类型统计次数与平均分，AVG 忽略缺失的分数
func (r *InterviewRepository) TypeStats(ctx context.Context, userID uint) ([]model.TypeScoreStat, error) {
	var stats []model.TypeScoreStat
	err := r.DB.WithContext(ctx).
		Model(&model.InterviewRecord{}).
		Select("type, COUNT(*) AS count, AVG(score) AS avg_score").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&stats).Error
	return stats, err
}

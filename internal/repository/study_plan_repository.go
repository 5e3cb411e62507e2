package repository

import (
	"context"
	"interview_coach_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudyPlanRepository 所有方法接受可选事务 tx，为 nil 时使用默认连接
type StudyPlanRepository struct {
	DB *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{DB: db}
}

func (r *StudyPlanRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

// Create 连同每日计划和任务一起写入
func (r *StudyPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error {
	return r.conn(ctx, tx).Create(plan).Error
}

// FindByID 预加载每日计划与任务，并按天、按位置排序
func (r *StudyPlanRepository) FindByID(ctx context.Context, tx *gorm.DB, planID string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.conn(ctx, tx).
		Preload("DailyPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_index ASC")
		}).
		Preload("DailyPlans.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", planID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindCurrentHeader 通过指针读取当前计划（不含任务），没有计划时返回 nil
func (r *StudyPlanRepository) FindCurrentHeader(ctx context.Context, userID uint) (*model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.conn(ctx, nil).
		Joins("JOIN study_plan_pointers ON study_plan_pointers.plan_id = study_plans.id").
		Where("study_plan_pointers.user_id = ?", userID).
		Limit(1).
		Find(&plans).Error
	if err != nil || len(plans) == 0 {
		return nil, err
	}
	return &plans[0], nil
}

func (r *StudyPlanRepository) ListByUser(ctx context.Context, userID uint) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.conn(ctx, nil).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

// GetPointer 返回当前计划指针，不存在时返回 nil。forUpdate 为 true 时加行锁
func (r *StudyPlanRepository) GetPointer(ctx context.Context, tx *gorm.DB, userID uint, forUpdate bool) (*model.StudyPlanPointer, error) {
	var ptr model.StudyPlanPointer
	q := r.conn(ctx, tx)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Where("user_id = ?", userID).Limit(1).Find(&ptr).Error
	if err != nil {
		return nil, err
	}
	if ptr.UserID == 0 {
		return nil, nil
	}
	return &ptr, nil
}

// CreatePointer 首次生成计划时插入指针，主键冲突说明有并发生成
func (r *StudyPlanRepository) CreatePointer(ctx context.Context, tx *gorm.DB, userID uint, planID string) error {
	return r.conn(ctx, tx).Create(&model.StudyPlanPointer{
		UserID:  userID,
		PlanID:  planID,
		Version: 1,
	}).Error
}

// SwapPointer 仅当版本号未变化时切换到新计划，返回是否成功
func (r *StudyPlanRepository) SwapPointer(ctx context.Context, tx *gorm.DB, expected *model.StudyPlanPointer, planID string) (bool, error) {
	result := r.conn(ctx, tx).
		Model(&model.StudyPlanPointer{}).
		Where("user_id = ? AND plan_id = ? AND version = ?", expected.UserID, expected.PlanID, expected.Version).
		Updates(map[string]interface{}{
			"plan_id":    planID,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *StudyPlanRepository) MarkSuperseded(ctx context.Context, tx *gorm.DB, planID string, at time.Time) error {
	return r.conn(ctx, tx).
		Model(&model.StudyPlan{}).
		Where("id = ? AND status = ?", planID, model.StudyPlanActive).
		Updates(map[string]interface{}{
			"status":        model.StudyPlanSuperseded,
			"superseded_at": at,
		}).Error
}

func (r *StudyPlanRepository) UpdateTaskCompletion(ctx context.Context, tx *gorm.DB, taskID uint, completed bool, completedAt *time.Time) error {
	return r.conn(ctx, tx).
		Model(&model.StudyTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"completed":    completed,
			"completed_at": completedAt,
		}).Error
}

// CountTasks 从任务表重新统计，保证缓存的计数与任务状态一致
func (r *StudyPlanRepository) CountTasks(ctx context.Context, tx *gorm.DB, planID string) (total, completed int, err error) {
	var row struct {
		Total     int
		Completed int
	}
	err = r.conn(ctx, tx).
		Model(&model.StudyTask{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN study_tasks.completed THEN 1 ELSE 0 END), 0) AS completed").
		Joins("JOIN study_daily_plans ON study_daily_plans.id = study_tasks.daily_plan_id").
		Where("study_daily_plans.plan_id = ?", planID).
		Scan(&row).Error
	return row.Total, row.Completed, err
}

func (r *StudyPlanRepository) UpdateCounts(ctx context.Context, tx *gorm.DB, planID string, total, completed int) error {
	return r.conn(ctx, tx).
		Model(&model.StudyPlan{}).
		Where("id = ?", planID).
		Updates(map[string]interface{}{
			"total_tasks":     total,
			"completed_tasks": completed,
		}).Error
}

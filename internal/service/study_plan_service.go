package service

import (
	"context"
	"errors"
	"fmt"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/internal/util"
	"interview_coach_backend/pkg/logger"
	"interview_coach_backend/pkg/monitoring"
	"interview_coach_backend/pkg/tracing"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SkillGapProvider 外部简历分析结果的读取接口
type SkillGapProvider interface {
	GetSkillGap(ctx context.Context, userID uint) (*model.SkillGap, error)
}

type StudyPlanService struct {
	DB        *gorm.DB
	PlanRepo  *repository.StudyPlanRepository
	SkillGaps SkillGapProvider
	Generator *StudyPlanGenerator
	Cache     *repository.DashboardCache
}

func NewStudyPlanService(
	db *gorm.DB,
	planRepo *repository.StudyPlanRepository,
	skillGaps SkillGapProvider,
	generator *StudyPlanGenerator,
	cache *repository.DashboardCache,
) *StudyPlanService {
	return &StudyPlanService{
		DB:        db,
		PlanRepo:  planRepo,
		SkillGaps: skillGaps,
		Generator: generator,
		Cache:     cache,
	}
}

// GenerateForUser 使用用户已保存的技能差距分析生成新计划
func (s *StudyPlanService) GenerateForUser(ctx context.Context, userID uint) (*model.StudyPlan, error) {
	gap, err := s.SkillGaps.GetSkillGap(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, userID, gap.TargetRole, gap)
}

// Generate 生成并保存新计划，同时在一个事务内替换用户的当前计划。
// 旧计划保留为 superseded；若指针在读取后被他人修改则返回 ErrConflict。
func (s *StudyPlanService) Generate(ctx context.Context, userID uint, targetRole string, gap *model.SkillGap) (*model.StudyPlan, error) {
	ctx, span := tracing.Tracer.Start(ctx, "StudyPlanService.Generate")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", int64(userID)))

	var missing []string
	if gap != nil {
		missing = gap.MissingSkills
	}
	plan, err := s.Generator.Build(userID, targetRole, missing)
	if err != nil {
		return nil, err
	}

	expected, err := s.PlanRepo.GetPointer(ctx, nil, userID, false)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.PlanRepo.Create(ctx, tx, plan); err != nil {
			return err
		}

		if expected == nil {
			if err := s.PlanRepo.CreatePointer(ctx, tx, userID, plan.ID); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("%w: another study plan was generated concurrently", util.ErrConflict)
				}
				return err
			}
			return nil
		}

		swapped, err := s.PlanRepo.SwapPointer(ctx, tx, expected, plan.ID)
		if err != nil {
			return err
		}
		if !swapped {
			return fmt.Errorf("%w: current study plan changed while generating", util.ErrConflict)
		}
		return s.PlanRepo.MarkSuperseded(ctx, tx, expected.PlanID, time.Now())
	})
	if err != nil {
		if errors.Is(err, util.ErrConflict) {
			monitoring.StudyPlanConflicts.Inc()
			logger.Log.Warn("study plan generation conflict", zap.Uint("userID", userID), zap.Error(err))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.invalidate(ctx, userID)
	monitoring.StudyPlansGenerated.Inc()

	fields := []zap.Field{
		zap.Uint("userID", userID),
		zap.String("planID", plan.ID),
		zap.Int("days", len(plan.DailyPlans)),
		zap.Int("tasks", plan.TotalTasks),
	}
	if expected != nil {
		fields = append(fields, zap.String("supersededPlanID", expected.PlanID))
	}
	logger.Log.Info("study plan generated", fields...)
	return plan, nil
}

// GetCurrentPlan 返回用户当前计划，没有计划时返回 nil, nil
func (s *StudyPlanService) GetCurrentPlan(ctx context.Context, userID uint) (*model.StudyPlan, error) {
	ptr, err := s.PlanRepo.GetPointer(ctx, nil, userID, false)
	if err != nil || ptr == nil {
		return nil, err
	}
	plan, err := s.PlanRepo.FindByID(ctx, nil, ptr.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	plan.Recount()
	return plan, nil
}

func (s *StudyPlanService) ListHistory(ctx context.Context, userID uint) ([]model.StudyPlanSummary, error) {
	plans, err := s.PlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.StudyPlanSummary, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		summaries = append(summaries, model.StudyPlanSummary{
			ID:             p.ID,
			TargetRole:     p.TargetRole,
			Status:         p.Status,
			CreatedAt:      p.CreatedAt,
			SupersededAt:   p.SupersededAt,
			TotalTasks:     p.TotalTasks,
			CompletedTasks: p.CompletedTasks,
			StudyProgress:  p.Progress(),
		})
	}
	return summaries, nil
}

// SetTaskCompletion 修改当前计划中单个任务的完成状态，并在同一事务内刷新计数。
// 先锁定用户的计划指针，保证与 Generate 串行；对已被替换的计划返回 ErrConflict。
func (s *StudyPlanService) SetTaskCompletion(ctx context.Context, userID uint, planID string, dayIndex, taskIndex int, completed bool) (*model.StudyPlan, error) {
	ctx, span := tracing.Tracer.Start(ctx, "StudyPlanService.SetTaskCompletion")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.String("plan.id", planID),
		attribute.Int("plan.day", dayIndex),
		attribute.Int("plan.task", taskIndex),
	)

	var plan *model.StudyPlan
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ptr, err := s.PlanRepo.GetPointer(ctx, tx, userID, true)
		if err != nil {
			return err
		}

		plan, err = s.PlanRepo.FindByID(ctx, tx, planID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: study plan %s", util.ErrNotFound, planID)
			}
			return err
		}
		if plan.UserID != userID {
			return fmt.Errorf("%w: study plan %s belongs to another user", util.ErrForbidden, planID)
		}
		if ptr == nil || ptr.PlanID != plan.ID {
			return fmt.Errorf("%w: study plan %s has been superseded, refetch the current plan", util.ErrConflict, planID)
		}

		if dayIndex < 0 || dayIndex >= len(plan.DailyPlans) {
			return fmt.Errorf("%w: day %d (plan has %d days)", util.ErrOutOfRange, dayIndex, len(plan.DailyPlans))
		}
		day := &plan.DailyPlans[dayIndex]
		if taskIndex < 0 || taskIndex >= len(day.Tasks) {
			return fmt.Errorf("%w: task %d (day %d has %d tasks)", util.ErrOutOfRange, taskIndex, dayIndex, len(day.Tasks))
		}
		task := &day.Tasks[taskIndex]

		if task.Completed != completed {
			var completedAt *time.Time
			if completed {
				now := time.Now()
				completedAt = &now
			}
			if err := s.PlanRepo.UpdateTaskCompletion(ctx, tx, task.ID, completed, completedAt); err != nil {
				return err
			}
			task.Completed = completed
			task.CompletedAt = completedAt
		}

		total, done, err := s.PlanRepo.CountTasks(ctx, tx, plan.ID)
		if err != nil {
			return err
		}
		if total != plan.TotalTasks || done != plan.CompletedTasks {
			if err := s.PlanRepo.UpdateCounts(ctx, tx, plan.ID, total, done); err != nil {
				return err
			}
		}
		plan.TotalTasks = total
		plan.CompletedTasks = done
		return nil
	})
	if err != nil {
		if errors.Is(err, util.ErrConflict) {
			monitoring.StudyPlanConflicts.Inc()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.invalidate(ctx, userID)
	monitoring.StudyTaskUpdates.WithLabelValues(strconv.FormatBool(completed)).Inc()
	logger.Log.Info("study task updated",
		zap.Uint("userID", userID),
		zap.String("planID", planID),
		zap.Int("day", dayIndex),
		zap.Int("task", taskIndex),
		zap.Bool("completed", completed),
		zap.Int("completedTasks", plan.CompletedTasks),
		zap.Int("totalTasks", plan.TotalTasks),
	)
	return plan, nil
}

func (s *StudyPlanService) invalidate(ctx context.Context, userID uint) {
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warn("dashboard cache invalidation failed", zap.Uint("userID", userID), zap.Error(err))
	}
}

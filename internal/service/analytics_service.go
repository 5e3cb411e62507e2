package service

import (
	"context"
	"errors"
	"fmt"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/internal/util"
	"interview_coach_backend/pkg/logger"
	"iter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultTrendPageSize = 200

type AnalyticsService struct {
	UserRepo      *repository.UserRepository
	InterviewRepo *repository.InterviewRepository
	PlanRepo      *repository.StudyPlanRepository
	Cache         *repository.DashboardCache
	// TrendPageSize 趋势序列每次从数据库读取的条数
	TrendPageSize int
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	interviewRepo *repository.InterviewRepository,
	planRepo *repository.StudyPlanRepository,
	cache *repository.DashboardCache,
) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:      userRepo,
		InterviewRepo: interviewRepo,
		PlanRepo:      planRepo,
		Cache:         cache,
		TrendPageSize: defaultTrendPageSize,
	}
}

func (s *AnalyticsService) ensureUser(ctx context.Context, userID uint) error {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", util.ErrNotFound, userID)
		}
		return err
	}
	return nil
}

// PerformanceTrend 返回按完成时间升序的成绩序列。
// 序列是惰性的，每次遍历都会重新查询数据库；评分缺失的记录同样包含在内。
// 记录按页读取，yield 期间不占用数据库连接，循环体内可以继续查询或写入
func (s *AnalyticsService) PerformanceTrend(ctx context.Context, userID uint) (iter.Seq2[model.TrendPoint, error], error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	size := s.TrendPageSize
	if size <= 0 {
		size = defaultTrendPageSize
	}
	return func(yield func(model.TrendPoint, error) bool) {
		var after *repository.TrendCursor
		for {
			page, err := s.InterviewRepo.ChronologicalPage(ctx, userID, after, size)
			if err != nil {
				yield(model.TrendPoint{}, err)
				return
			}
			for _, rec := range page {
				if !yield(model.TrendPoint{Type: rec.Type, Score: rec.Score, Date: rec.CompletedAt}, nil) {
					return
				}
			}
			if len(page) < size {
				return
			}
			last := page[len(page)-1]
			after = &repository.TrendCursor{CompletedAt: last.CompletedAt, ID: last.ID}
		}
	}, nil
}

// CollectTrend 将趋势序列展开为切片，空数据返回空切片而不是 nil
func CollectTrend(seq iter.Seq2[model.TrendPoint, error]) ([]model.TrendPoint, error) {
	points := []model.TrendPoint{}
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// GetDashboard 汇总面试成绩与当前学习计划进度，没有数据时各项为 0
func (s *AnalyticsService) GetDashboard(ctx context.Context, userID uint) (*model.Dashboard, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	// 代号在读库之前取得，期间若有写入，写回的旧值落在过期代号下不会再被读到
	cached, gen, cacheErr := s.Cache.Get(ctx, userID)
	if cacheErr != nil {
		logger.Log.Warn("dashboard cache read failed", zap.Uint("userID", userID), zap.Error(cacheErr))
	} else if cached != nil {
		return cached, nil
	}

	stats, err := s.InterviewRepo.TypeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{}
	for _, st := range stats {
		dashboard.TotalInterviews += int(st.Count)
		avg := 0.0
		if st.AvgScore != nil {
			avg = *st.AvgScore
		}
		switch st.Type {
		case model.InterviewHR:
			dashboard.HRScore = avg
		case model.InterviewTechnical:
			dashboard.TechnicalScore = avg
		case model.InterviewDSA:
			dashboard.DSAScore = avg
		}
	}

	plan, err := s.PlanRepo.FindCurrentHeader(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		dashboard.TotalTasks = plan.TotalTasks
		dashboard.CompletedTasks = plan.CompletedTasks
		dashboard.StudyProgress = plan.Progress()
	}

	if cacheErr == nil {
		if err := s.Cache.Set(ctx, userID, gen, dashboard); err != nil {
			logger.Log.Warn("dashboard cache write failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}
	return dashboard, nil
}

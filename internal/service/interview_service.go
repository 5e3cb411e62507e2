package service

import (
	"context"
	"fmt"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/internal/util"
	"interview_coach_backend/pkg/logger"
	"interview_coach_backend/pkg/monitoring"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

type InterviewService struct {
	Repo  *repository.InterviewRepository
	Cache *repository.DashboardCache
}

func NewInterviewService(repo *repository.InterviewRepository, cache *repository.DashboardCache) *InterviewService {
	return &InterviewService{Repo: repo, Cache: cache}
}

type RecordInterviewInput struct {
	Type        string
	Score       *float64
	CompletedAt *time.Time
}

// Record 保存一次已完成的面试。分数可为空，存在时必须在 [0,100] 内
func (s *InterviewService) Record(ctx context.Context, userID uint, in RecordInterviewInput) (*model.InterviewRecord, error) {
	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		return nil, fmt.Errorf("%w: interview type is required", util.ErrInvalidInput)
	}
	if len(typ) > util.MaxInterviewTypeLength {
		return nil, fmt.Errorf("%w: interview type exceeds %d characters", util.ErrInvalidInput, util.MaxInterviewTypeLength)
	}
	if in.Score != nil {
		sc := *in.Score
		if math.IsNaN(sc) || sc < 0 || sc > 100 {
			return nil, fmt.Errorf("%w: score must be within [0, 100]", util.ErrInvalidInput)
		}
	}

	// 统一存为 UTC，sqlite 以文本保存时间，排序按字符串比较
	completedAt := time.Now().UTC()
	if in.CompletedAt != nil && !in.CompletedAt.IsZero() {
		completedAt = in.CompletedAt.UTC()
	}

	record := &model.InterviewRecord{
		UserID:      userID,
		Type:        canonicalInterviewType(typ),
		Score:       in.Score,
		CompletedAt: completedAt,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warn("dashboard cache invalidation failed", zap.Uint("userID", userID), zap.Error(err))
	}
	monitoring.InterviewsRecorded.WithLabelValues(string(record.Type)).Inc()
	logger.Log.Debug("interview recorded", zap.Uint("userID", userID), zap.String("type", string(record.Type)))
	return record, nil
}

func (s *InterviewService) List(ctx context.Context, userID uint, limit int) ([]model.InterviewRecord, error) {
	records, err := s.Repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.InterviewRecord{}
	}
	return records, nil
}

// canonicalInterviewType 已知类型统一大小写，其余原样保留
func canonicalInterviewType(t string) model.InterviewType {
	for _, known := range []model.InterviewType{model.InterviewHR, model.InterviewTechnical, model.InterviewDSA} {
		if strings.EqualFold(t, string(known)) {
			return known
		}
	}
	return model.InterviewType(t)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/internal/util"
	"interview_coach_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SkillGapService 保存并读取外部简历分析服务产出的技能差距
type SkillGapService struct {
	Repo *repository.SkillGapRepository
}

func NewSkillGapService(repo *repository.SkillGapRepository) *SkillGapService {
	return &SkillGapService{Repo: repo}
}

type SkillGapInput struct {
	TargetRole      string
	KnownSkills     []string
	MissingSkills   []string
	Recommendations []string
}

func (s *SkillGapService) Save(ctx context.Context, userID uint, in SkillGapInput) (*model.SkillGap, error) {
	role := strings.TrimSpace(in.TargetRole)
	if role == "" {
		return nil, fmt.Errorf("%w: targetRole is required", util.ErrInvalidInput)
	}
	if len(role) > util.MaxTargetRoleLength {
		return nil, fmt.Errorf("%w: targetRole exceeds %d characters", util.ErrInvalidInput, util.MaxTargetRoleLength)
	}

	gap := &model.SkillGap{
		UserID:          userID,
		TargetRole:      role,
		KnownSkills:     trimAll(in.KnownSkills),
		MissingSkills:   trimAll(in.MissingSkills),
		Recommendations: trimAll(in.Recommendations),
	}
	if err := s.Repo.Upsert(ctx, gap); err != nil {
		return nil, err
	}

	logger.Log.Info("skill gap stored",
		zap.Uint("userID", userID),
		zap.String("targetRole", role),
		zap.Int("missingSkills", len(gap.MissingSkills)),
	)
	return gap, nil
}

// GetSkillGap 实现 SkillGapProvider
func (s *SkillGapService) GetSkillGap(ctx context.Context, userID uint) (*model.SkillGap, error) {
	gap, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no resume analysis for this user, upload a resume first", util.ErrNotFound)
		}
		return nil, err
	}
	return gap, nil
}

// trimAll 去掉首尾空白并丢弃空项，保持原有顺序
func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

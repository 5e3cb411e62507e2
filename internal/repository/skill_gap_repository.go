package repository

import (
	"context"
	"interview_coach_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillGapRepository struct {
	DB *gorm.DB
}

func NewSkillGapRepository(db *gorm.DB) *SkillGapRepository {
	return &SkillGapRepository{DB: db}
}

// Upsert 覆盖用户上一份分析结果
func (r *SkillGapRepository) Upsert(ctx context.Context, gap *model.SkillGap) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_role", "known_skills", "missing_skills", "recommendations", "updated_at"}),
	}).Create(gap).Error
}

func (r *SkillGapRepository) FindByUserID(ctx context.Context, userID uint) (*model.SkillGap, error) {
	var gap model.SkillGap
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&gap).Error
	if err != nil {
		return nil, err
	}
	return &gap, nil
}

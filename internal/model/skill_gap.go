package model

import (
	"time"

	"gorm.io/datatypes"
)

// SkillGap 外部简历分析服务给出的技能差距，每个用户仅保留最新一份
type SkillGap struct {
	UserID          uint                        `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	TargetRole      string                      `gorm:"size:150;not null" json:"targetRole"`
	KnownSkills     datatypes.JSONSlice[string] `json:"knownSkills"`
	MissingSkills   datatypes.JSONSlice[string] `json:"missingSkills"` // 按优先级排序，越靠前越关键
	Recommendations datatypes.JSONSlice[string] `json:"recommendations"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

func (SkillGap) TableName() string {
	return "skill_gaps"
}

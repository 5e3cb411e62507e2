package model

import "time"

type InterviewType string

const (
	InterviewHR        InterviewType = "HR"
	InterviewTechnical InterviewType = "Technical"
	InterviewDSA       InterviewType = "DSA"
)

// InterviewRecord 一次已完成的面试，创建后不可修改
type InterviewRecord struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint          `gorm:"index:idx_interview_user_completed,priority:1;not null" json:"userId"`
	Type        InterviewType `gorm:"size:50;index;not null" json:"type"`
	Score       *float64      `json:"score"` // nil 表示评分缺失，记录仍计入面试次数
	CompletedAt time.Time     `gorm:"index:idx_interview_user_completed,priority:2;not null" json:"completedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (InterviewRecord) TableName() string {
	return "interview_records"
}

package model

import "time"

// TrendPoint 成绩趋势中的单次面试，Score 为 nil 时前端显示为不可用
type TrendPoint struct {
	Type  InterviewType `json:"type"`
	Score *float64      `json:"score"`
	Date  time.Time     `json:"date"`
}

// Dashboard 仪表盘汇总，缺少数据的类别一律为 0
type Dashboard struct {
	TotalInterviews int     `json:"totalInterviews"`
	HRScore         float64 `json:"hrScore"`
	TechnicalScore  float64 `json:"technicalScore"`
	DSAScore        float64 `json:"dsaScore"`
	StudyProgress   float64 `json:"studyProgress"`
	CompletedTasks  int     `json:"completedTasks"`
	TotalTasks      int     `json:"totalTasks"`
}

// TypeScoreStat 按面试类型分组的统计
type TypeScoreStat struct {
	Type     InterviewType
	Count    int64
	AvgScore *float64
}

// StudyPlanResponse 学习计划接口返回结构
type StudyPlanResponse struct {
	ID             string          `json:"id"`
	TargetRole     string          `json:"targetRole"`
	Status         StudyPlanStatus `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	TotalTasks     int             `json:"totalTasks"`
	CompletedTasks int             `json:"completedTasks"`
	StudyProgress  float64         `json:"studyProgress"`
	DailyPlans     []DailyPlan     `json:"dailyPlans"`
}

func NewStudyPlanResponse(p *StudyPlan) *StudyPlanResponse {
	days := p.DailyPlans
	if days == nil {
		days = []DailyPlan{}
	}
	return &StudyPlanResponse{
		ID:             p.ID,
		TargetRole:     p.TargetRole,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		TotalTasks:     p.TotalTasks,
		CompletedTasks: p.CompletedTasks,
		StudyProgress:  p.Progress(),
		DailyPlans:     days,
	}
}

// StudyPlanSummary 历史计划列表项，不含任务明细
type StudyPlanSummary struct {
	ID             string          `json:"id"`
	TargetRole     string          `json:"targetRole"`
	Status         StudyPlanStatus `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	SupersededAt   *time.Time      `json:"supersededAt,omitempty"`
	TotalTasks     int             `json:"totalTasks"`
	CompletedTasks int             `json:"completedTasks"`
	StudyProgress  float64         `json:"studyProgress"`
}

package model

import "time"

type StudyPlanStatus string

const (
	StudyPlanActive     StudyPlanStatus = "active"
	StudyPlanSuperseded StudyPlanStatus = "superseded"
)

// StudyPlan 按天划分的学习计划。CompletedTasks/TotalTasks 与任务完成状态在同一事务内更新
type StudyPlan struct {
	UUIDBase
	UserID         uint            `gorm:"index;not null" json:"userId"`
	TargetRole     string          `gorm:"size:150;not null" json:"targetRole"`
	Status         StudyPlanStatus `gorm:"size:20;index;not null;default:'active'" json:"status"`
	SupersededAt   *time.Time      `json:"supersededAt,omitempty"`
	TotalTasks     int             `gorm:"not null;default:0" json:"totalTasks"`
	CompletedTasks int             `gorm:"not null;default:0" json:"completedTasks"`
	DailyPlans     []DailyPlan     `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"dailyPlans"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// Progress 完成百分比，没有任务时为 0
func (p *StudyPlan) Progress() float64 {
	return StudyProgress(p.CompletedTasks, p.TotalTasks)
}

// Recount 根据已加载的任务重新计算计数，任务在同一条查询中读取，结果自洽
func (p *StudyPlan) Recount() {
	total, completed := 0, 0
	for _, d := range p.DailyPlans {
		for _, t := range d.Tasks {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	p.TotalTasks = total
	p.CompletedTasks = completed
}

func StudyProgress(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

type DailyPlan struct {
	ID       uint        `gorm:"primaryKey;autoIncrement" json:"-"`
	PlanID   string      `gorm:"type:varchar(36);uniqueIndex:idx_plan_day;not null" json:"-"`
	DayIndex int         `gorm:"uniqueIndex:idx_plan_day;not null" json:"dayIndex"`
	Tasks    []StudyTask `gorm:"foreignKey:DailyPlanID;constraint:OnDelete:CASCADE" json:"tasks"`
}

func (DailyPlan) TableName() string {
	return "study_daily_plans"
}

// Minutes 当天任务预计总时长
func (d *DailyPlan) Minutes() int {
	total := 0
	for _, t := range d.Tasks {
		total += t.EstimatedMinutes
	}
	return total
}

type StudyTask struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	DailyPlanID      uint       `gorm:"uniqueIndex:idx_day_position;not null" json:"-"`
	Position         int        `gorm:"uniqueIndex:idx_day_position;not null" json:"-"`
	Topic            string     `gorm:"size:150;not null" json:"topic"`
	EstimatedMinutes int        `gorm:"not null" json:"estimatedMinutes"`
	Completed        bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

func (StudyTask) TableName() string {
	return "study_tasks"
}

// StudyPlanPointer 每个用户唯一的当前计划指针，Version 用于比较并交换
type StudyPlanPointer struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	PlanID    string `gorm:"type:varchar(36);not null"`
	Version   int64  `gorm:"not null;default:1"`
	UpdatedAt time.Time
}

func (StudyPlanPointer) TableName() string {
	return "study_plan_pointers"
}

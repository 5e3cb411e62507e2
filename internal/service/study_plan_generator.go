package service

import (
	"fmt"
	"interview_coach_backend/internal/config"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/util"
	"strings"
	"sync"
)

// StudyPlanGenerator 将按优先级排序的缺失技能装箱到连续的每日计划中。
// 配置可在运行时通过 UpdateConfig 热更新。
type StudyPlanGenerator struct {
	mu  sync.RWMutex
	cfg config.StudyPlanConfig
}

func NewStudyPlanGenerator(cfg config.StudyPlanConfig) (*StudyPlanGenerator, error) {
	g := &StudyPlanGenerator{}
	if err := g.UpdateConfig(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *StudyPlanGenerator) UpdateConfig(cfg config.StudyPlanConfig) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}
	categories := make([]config.TopicCategory, len(cfg.Categories))
	for i, cat := range cfg.Categories {
		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		categories[i] = config.TopicCategory{Name: cat.Name, Minutes: cat.Minutes, Keywords: keywords}
	}
	cfg.Categories = categories

	g.mu.Lock()
	g.cfg = cfg
	g.mu.Unlock()
	return nil
}

func (g *StudyPlanGenerator) Config() config.StudyPlanConfig {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

// EstimateMinutes 取第一个关键字命中的分类时长，否则使用默认时长
func (g *StudyPlanGenerator) EstimateMinutes(topic string) int {
	return estimateMinutes(g.Config(), topic)
}

func estimateMinutes(cfg config.StudyPlanConfig, topic string) int {
	lower := strings.ToLower(topic)
	for _, cat := range cfg.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Minutes
			}
		}
	}
	return cfg.DefaultTaskMinutes
}

// Build 生成一个尚未持久化的计划。
// 任务不跨天拆分；单个任务超出每日容量时独占一天。
func (g *StudyPlanGenerator) Build(userID uint, targetRole string, missingSkills []string) (*model.StudyPlan, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return nil, fmt.Errorf("%w: target role is required", util.ErrInvalidInput)
	}
	if len(targetRole) > util.MaxTargetRoleLength {
		return nil, fmt.Errorf("%w: target role exceeds %d characters", util.ErrInvalidInput, util.MaxTargetRoleLength)
	}

	topics, err := normalizeTopics(missingSkills)
	if err != nil {
		return nil, err
	}

	cfg := g.Config()
	capacity := cfg.DailyCapacityMinutes

	var days []model.DailyPlan
	var current *model.DailyPlan
	used := 0
	for _, topic := range topics {
		minutes := estimateMinutes(cfg, topic)
		if current != nil && used+minutes > capacity {
			days = append(days, *current)
			current = nil
		}
		if current == nil {
			current = &model.DailyPlan{DayIndex: len(days)}
			used = 0
		}
		current.Tasks = append(current.Tasks, model.StudyTask{
			Position:         len(current.Tasks),
			Topic:            topic,
			EstimatedMinutes: minutes,
		})
		used += minutes
	}
	days = append(days, *current)

	return &model.StudyPlan{
		UserID:     userID,
		TargetRole: targetRole,
		Status:     model.StudyPlanActive,
		TotalTasks: len(topics),
		DailyPlans: days,
	}, nil
}

func normalizeTopics(missingSkills []string) ([]string, error) {
	if len(missingSkills) == 0 {
		return nil, fmt.Errorf("%w: no missing skills to plan", util.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(missingSkills))
	topics := make([]string, 0, len(missingSkills))
	for i, raw := range missingSkills {
		topic := strings.TrimSpace(raw)
		if topic == "" {
			return nil, fmt.Errorf("%w: missing skill #%d is empty", util.ErrInvalidInput, i+1)
		}
		if len(topic) > util.MaxTopicLength {
			return nil, fmt.Errorf("%w: missing skill %q exceeds %d characters", util.ErrInvalidInput, topic, util.MaxTopicLength)
		}
		key := strings.ToLower(topic)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate missing skill %q", util.ErrInvalidInput, topic)
		}
		seen[key] = struct{}{}
		topics = append(topics, topic)
	}
	return topics, nil
}

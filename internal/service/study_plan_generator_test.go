package service

import (
	"interview_coach_backend/internal/config"
	"interview_coach_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlanConfig() config.StudyPlanConfig {
	return config.StudyPlanConfig{
		DailyCapacityMinutes: 120,
		DefaultTaskMinutes:   45,
		Categories: []config.TopicCategory{
			{Name: "tooling", Minutes: 30, Keywords: []string{"Git", "css"}},
			{Name: "frameworks", Minutes: 60, Keywords: []string{"react"}},
			{Name: "infra", Minutes: 150, Keywords: []string{"kubernetes"}},
		},
	}
}

func topicsOf(days [][]string) []string {
	var out []string
	for _, d := range days {
		out = append(out, d...)
	}
	return out
}

func TestGeneratorPacksDefaultTopics(t *testing.T) {
	g, err := NewStudyPlanGenerator(config.StudyPlanConfig{})
	require.NoError(t, err)

	plan, err := g.Build(1, "Backend Engineer", []string{"A", "B", "C"})
	require.NoError(t, err)

	require.Len(t, plan.DailyPlans, 2)
	assert.Equal(t, 0, plan.DailyPlans[0].DayIndex)
	assert.Equal(t, 1, plan.DailyPlans[1].DayIndex)
	assert.Len(t, plan.DailyPlans[0].Tasks, 2)
	assert.Len(t, plan.DailyPlans[1].Tasks, 1)
	assert.Equal(t, 90, plan.DailyPlans[0].Minutes())
	assert.Equal(t, "C", plan.DailyPlans[1].Tasks[0].Topic)
	assert.Equal(t, 3, plan.TotalTasks)
	assert.Equal(t, 0, plan.CompletedTasks)
}

func TestGeneratorPreservesPriorityAndCapacity(t *testing.T) {
	g, err := NewStudyPlanGenerator(testPlanConfig())
	require.NoError(t, err)

	input := []string{"Git", "React", "CSS", "System Design", "React Native", "Docker"}
	plan, err := g.Build(1, "Frontend", input)
	require.NoError(t, err)

	var days [][]string
	for _, d := range plan.DailyPlans {
		var topics []string
		for i, task := range d.Tasks {
			assert.Equal(t, i, task.Position)
			assert.False(t, task.Completed)
			topics = append(topics, task.Topic)
		}
		days = append(days, topics)
		assert.LessOrEqual(t, d.Minutes(), 120)
	}
	assert.Equal(t, input, topicsOf(days))
	// Git 30 + React 60 + CSS 30 = 120 正好装满
	assert.Equal(t, []string{"Git", "React", "CSS"}, days[0])
}

func TestGeneratorOversizedTopicGetsOwnDay(t *testing.T) {
	g, err := NewStudyPlanGenerator(testPlanConfig())
	require.NoError(t, err)

	plan, err := g.Build(1, "SRE", []string{"Git", "Kubernetes Operators", "CSS"})
	require.NoError(t, err)

	require.Len(t, plan.DailyPlans, 3)
	assert.Equal(t, "Kubernetes Operators", plan.DailyPlans[1].Tasks[0].Topic)
	assert.Len(t, plan.DailyPlans[1].Tasks, 1)
	assert.Equal(t, 150, plan.DailyPlans[1].Minutes())
}

func TestGeneratorRejectsInvalidInput(t *testing.T) {
	g, err := NewStudyPlanGenerator(testPlanConfig())
	require.NoError(t, err)

	cases := []struct {
		name   string
		role   string
		skills []string
	}{
		{"no skills", "Dev", nil},
		{"empty skills", "Dev", []string{}},
		{"blank skill", "Dev", []string{"Go", "  "}},
		{"duplicate ignoring case", "Dev", []string{"Go", "go"}},
		{"blank role", "   ", []string{"Go"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := g.Build(1, tc.role, tc.skills)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, util.ErrInvalidInput)
		})
	}
}

func TestGeneratorEstimateAndReload(t *testing.T) {
	g, err := NewStudyPlanGenerator(testPlanConfig())
	require.NoError(t, err)

	assert.Equal(t, 60, g.EstimateMinutes("Advanced REACT hooks"))
	assert.Equal(t, 30, g.EstimateMinutes("git rebase"))
	assert.Equal(t, 45, g.EstimateMinutes("Graph Algorithms"))

	bad := testPlanConfig()
	bad.DailyCapacityMinutes = -1
	assert.Error(t, g.UpdateConfig(bad))
	assert.Equal(t, 120, g.Config().DailyCapacityMinutes)

	require.NoError(t, g.UpdateConfig(config.StudyPlanConfig{DailyCapacityMinutes: 60, DefaultTaskMinutes: 20}))
	assert.Equal(t, 20, g.EstimateMinutes("Advanced React hooks"))

	plan, err := g.Build(1, "Dev", []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	assert.Len(t, plan.DailyPlans, 2)
}

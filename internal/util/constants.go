package util

const (
	MaxInterviewTypeLength = 50
	MaxTopicLength         = 150
	MaxTargetRoleLength    = 150
)

package controller

import (
	"interview_coach_backend/internal/service"
	"interview_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ResumeController 简历分析结果由外部技能提取服务产出，这里只负责存取
type ResumeController struct {
	SkillGapService *service.SkillGapService
}

func NewResumeController(skillGapService *service.SkillGapService) *ResumeController {
	return &ResumeController{SkillGapService: skillGapService}
}

type SkillGapRequest struct {
	TargetRole      string   `json:"targetRole" binding:"required"`
	KnownSkills     []string `json:"knownSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

// @Summary 保存简历分析结果
// @Description missingSkills 按优先级排序，越靠前越先安排
// @Tags 简历
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SkillGapRequest true "技能差距"
// @Success 200 {object} util.Response{data=model.SkillGap}
// @Failure 400 {object} util.Response
// @Router /resume/analysis [put]
func (c *ResumeController) SaveAnalysis(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SkillGapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	gap, err := c.SkillGapService.Save(ctx.Request.Context(), user.UserID, service.SkillGapInput{
		TargetRole:      req.TargetRole,
		KnownSkills:     req.KnownSkills,
		MissingSkills:   req.MissingSkills,
		Recommendations: req.Recommendations,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gap)
}

// @Summary 获取简历分析结果
// @Tags 简历
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.SkillGap}
// @Failure 404 {object} util.Response
// @Router /resume/analysis [get]
func (c *ResumeController) GetAnalysis(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	gap, err := c.SkillGapService.GetSkillGap(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gap)
}

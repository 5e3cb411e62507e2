package controller

import (
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/service"
	"interview_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyPlanController struct {
	StudyPlanService *service.StudyPlanService
}

func NewStudyPlanController(studyPlanService *service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{StudyPlanService: studyPlanService}
}

// @Summary 生成学习计划
// @Description 根据已保存的简历分析（目标岗位与缺失技能）生成新的多日学习计划，并替换当前计划。计划位于 data 字段，dailyPlans 需从 data 中读取
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.StudyPlanResponse}
// @Failure 400 {object} util.Response "缺失技能为空或目标岗位为空"
// @Failure 404 {object} util.Response "没有简历分析结果"
// @Failure 409 {object} util.Response "并发生成冲突，请重试"
// @Router /study-plan/generate [post]
func (c *StudyPlanController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.StudyPlanService.GenerateForUser(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, model.NewStudyPlanResponse(plan))
}

// @Summary 获取当前学习计划
// @Description 计划位于 data 字段，dailyPlans 需从 data 中读取；没有计划时不返回 data
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudyPlanResponse}
// @Router /study-plan [get]
func (c *StudyPlanController) GetCurrent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.StudyPlanService.GetCurrentPlan(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if plan == nil {
		util.Success(ctx, nil)
		return
	}

	util.Success(ctx, model.NewStudyPlanResponse(plan))
}

// @Summary 学习计划历史
// @Description 当前计划与已被替换的计划，按创建时间倒序，不含任务明细
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudyPlanSummary}
// @Router /study-plan/history [get]
func (c *StudyPlanController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.StudyPlanService.ListHistory(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// TaskCompletionRequest 任务完成状态
type TaskCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// @Summary 更新任务完成状态
// @Description 按计划ID、天序号、任务序号定位任务。重复设置同一状态不会报错。更新后的计划位于 data 字段
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param planId path string true "计划ID"
// @Param dayIndex path int true "天序号（从0开始）"
// @Param taskIndex path int true "任务序号（从0开始）"
// @Param body body TaskCompletionRequest true "完成状态"
// @Success 200 {object} util.Response{data=model.StudyPlanResponse}
// @Failure 400 {object} util.Response "下标越界"
// @Failure 403 {object} util.Response "不是计划所有者"
// @Failure 404 {object} util.Response "计划不存在"
// @Failure 409 {object} util.Response "计划已被替换，请重新获取当前计划"
// @Router /study-plan/task/{planId}/{dayIndex}/{taskIndex} [patch]
func (c *StudyPlanController) SetTaskCompletion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TaskCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "completed (boolean) is required")
		return
	}

	dayIndex, err := util.ParseIndex("dayIndex", ctx.Param("dayIndex"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	taskIndex, err := util.ParseIndex("taskIndex", ctx.Param("taskIndex"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	plan, err := c.StudyPlanService.SetTaskCompletion(
		ctx.Request.Context(),
		user.UserID,
		ctx.Param("planId"),
		dayIndex,
		taskIndex,
		*req.Completed,
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, model.NewStudyPlanResponse(plan))
}

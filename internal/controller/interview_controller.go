package controller

import (
	"interview_coach_backend/internal/service"
	"interview_coach_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	InterviewService *service.InterviewService
}

func NewInterviewController(interviewService *service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

// RecordInterviewRequest 完成一次面试
type RecordInterviewRequest struct {
	Type        string     `json:"type" binding:"required"`
	Score       *float64   `json:"score"`
	CompletedAt *time.Time `json:"completedAt"`
}

// @Summary 记录面试结果
// @Description 面试完成后写入一条不可修改的记录，score 可为空
// @Tags 面试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RecordInterviewRequest true "面试结果"
// @Success 201 {object} util.Response{data=model.InterviewRecord}
// @Failure 400 {object} util.Response
// @Router /interviews [post]
func (c *InterviewController) Record(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RecordInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.InterviewService.Record(ctx.Request.Context(), user.UserID, service.RecordInterviewInput{
		Type:        req.Type,
		Score:       req.Score,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, record)
}

// @Summary 面试历史
// @Description 按完成时间倒序
// @Tags 面试
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "返回条数，0 表示全部" default(0)
// @Success 200 {object} util.Response{data=[]model.InterviewRecord}
// @Router /interviews [get]
func (c *InterviewController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	records, err := c.InterviewService.List(ctx.Request.Context(), user.UserID, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, records)
}

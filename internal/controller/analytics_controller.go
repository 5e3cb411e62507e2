package controller

import (
	"interview_coach_backend/internal/service"
	"interview_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 获取成绩趋势
// @Description 按完成时间升序返回每次面试的类型、分数与日期，分数缺失时为 null。数组位于 data 字段
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.TrendPoint}
// @Failure 404 {object} util.Response
// @Router /analytics/performance-trend [get]
func (c *AnalyticsController) GetPerformanceTrend(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	seq, err := c.AnalyticsService.PerformanceTrend(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	points, err := service.CollectTrend(seq)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, points)
}

// @Summary 获取仪表盘
// @Description 面试总数、各类别平均分以及当前学习计划进度，没有数据时为 0。结果位于 data 字段
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Dashboard}
// @Failure 404 {object} util.Response
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.AnalyticsService.GetDashboard(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

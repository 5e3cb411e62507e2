package app

import (
	"interview_coach_backend/docs"
	"interview_coach_backend/internal/config"
	"interview_coach_backend/internal/middleware"
	"interview_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		registerCoachRoutes(authGroup, c)
	}
}

func registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}
}

func registerCoachRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.GetProfile)

	analytics := group.Group("/analytics")
	{
		analytics.GET("/performance-trend", c.analytics.GetPerformanceTrend)
		analytics.GET("/dashboard", c.analytics.GetDashboard)
	}

	plan := group.Group("/study-plan")
	{
		plan.POST("/generate", c.studyPlan.Generate)
		plan.GET("", c.studyPlan.GetCurrent)
		plan.GET("/history", c.studyPlan.GetHistory)
		plan.PATCH("/task/:planId/:dayIndex/:taskIndex", c.studyPlan.SetTaskCompletion)
	}

	interviews := group.Group("/interviews")
	{
		interviews.POST("", c.interview.Record)
		interviews.GET("", c.interview.List)
	}

	resume := group.Group("/resume")
	{
		resume.PUT("/analysis", c.resume.SaveAnalysis)
		resume.GET("/analysis", c.resume.GetAnalysis)
	}
}

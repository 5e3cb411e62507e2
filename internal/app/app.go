package app

import (
	"context"
	"interview_coach_backend/internal/config"
	"interview_coach_backend/internal/controller"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/internal/service"
	"interview_coach_backend/pkg/configwatcher"
	"interview_coach_backend/pkg/database"
	"interview_coach_backend/pkg/logger"
	"interview_coach_backend/pkg/monitoring"
	"interview_coach_backend/pkg/security"
	"interview_coach_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopWatcher     context.CancelFunc
}

type repositories struct {
	user      *repository.UserRepository
	interview *repository.InterviewRepository
	skillGap  *repository.SkillGapRepository
	studyPlan *repository.StudyPlanRepository
	dashboard *repository.DashboardCache
}

type services struct {
	auth      *service.AuthService
	interview *service.InterviewService
	skillGap  *service.SkillGapService
	generator *service.StudyPlanGenerator
	studyPlan *service.StudyPlanService
	analytics *service.AnalyticsService
}

type controllers struct {
	auth      *controller.AuthController
	analytics *controller.AnalyticsController
	studyPlan *controller.StudyPlanController
	interview *controller.InterviewController
	resume    *controller.ResumeController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		interview: repository.NewInterviewRepository(db),
		skillGap:  repository.NewSkillGapRepository(db),
		studyPlan: repository.NewStudyPlanRepository(db),
		dashboard: repository.NewDashboardCache(rdb, time.Duration(cfg.Redis.DashboardTTLSeconds)*time.Second),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	generator, err := service.NewStudyPlanGenerator(cfg.StudyPlan)
	if err != nil {
		logger.Log.Fatal("Invalid study plan config", zap.Error(err))
	}
	s.generator = generator

	s.auth = service.NewAuthService(repos.user, cfg)
	s.interview = service.NewInterviewService(repos.interview, repos.dashboard)
	s.skillGap = service.NewSkillGapService(repos.skillGap)
	s.studyPlan = service.NewStudyPlanService(db, repos.studyPlan, s.skillGap, s.generator, repos.dashboard)
	s.analytics = service.NewAnalyticsService(repos.user, repos.interview, repos.studyPlan, repos.dashboard)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		analytics: controller.NewAnalyticsController(s.analytics),
		studyPlan: controller.NewStudyPlanController(s.studyPlan),
		interview: controller.NewInterviewController(s.interview),
		resume:    controller.NewResumeController(s.skillGap),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startConfigWatcher 配置文件变化时只热更新日志级别和学习计划参数，其余配置需要重启
func (a *App) startConfigWatcher() {
	a.RegisterConfigCallback(logger.SetLevel)
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		if err := a.services.generator.UpdateConfig(newCfg.StudyPlan); err != nil {
			logger.Log.Error("Rejected study plan config", zap.Error(err))
			return
		}
		logger.Log.Info("Study plan config updated",
			zap.Int("dailyCapacityMinutes", newCfg.StudyPlan.DailyCapacityMinutes),
			zap.Int("defaultTaskMinutes", newCfg.StudyPlan.DefaultTaskMinutes),
			zap.Int("categories", len(newCfg.StudyPlan.Categories)),
		)
	})

	ctx, cancel := context.WithCancel(context.Background())
	a.stopWatcher = cancel
	err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config watcher disabled", zap.Error(err))
	}
}

// NewApp 完成依赖装配。MigrateOnly 时迁移后直接返回，不创建路由
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// release 模式默认不迁移，需显式 --migrate
	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	app.Redis = rdb

	repos := app.initRepositories(db, rdb, cfg)
	app.services = app.initServices(repos, cfg, db)
	controllers := app.initControllers(app.services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.startConfigWatcher()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.stopWatcher != nil {
		a.stopWatcher()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}

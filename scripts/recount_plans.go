// 手动修复学习计划的完成计数
//
// 正常情况下计数与任务状态在同一事务内更新，此脚本只用于
// 手工改库或导入历史数据之后，按任务表重新统计所有计划。
//
// 用法: go run scripts/recount_plans.go [-user 42]

package main

import (
	"context"
	"flag"
	"interview_coach_backend/internal/config"
	"interview_coach_backend/internal/model"
	"interview_coach_backend/internal/repository"
	"interview_coach_backend/pkg/database"
	"interview_coach_backend/pkg/logger"
	"log"

	"go.uber.org/zap"
)

func main() {
	userID := flag.Uint("user", 0, "只处理指定用户，0 表示全部")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	repo := repository.NewStudyPlanRepository(db)
	ctx := context.Background()

	q := db.WithContext(ctx).Model(&model.StudyPlan{})
	if *userID != 0 {
		q = q.Where("user_id = ?", *userID)
	}
	var ids []string
	if err := q.Pluck("id", &ids).Error; err != nil {
		log.Fatalf("读取计划失败: %v", err)
	}

	fixed := 0
	for _, id := range ids {
		total, completed, err := repo.CountTasks(ctx, nil, id)
		if err != nil {
			logger.Log.Error("count tasks failed", zap.String("planID", id), zap.Error(err))
			continue
		}
		if err := repo.UpdateCounts(ctx, nil, id, total, completed); err != nil {
			logger.Log.Error("update counts failed", zap.String("planID", id), zap.Error(err))
			continue
		}
		fixed++
	}

	log.Printf("处理完成: %d/%d 个计划", fixed, len(ids))
}

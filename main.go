package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerniceZTT/mentorship_analytics/config"
	"github.com/BerniceZTT/mentorship_analytics/middleware"
	"github.com/BerniceZTT/mentorship_analytics/repository"
	"github.com/BerniceZTT/mentorship_analytics/routes"
	"github.com/BerniceZTT/mentorship_analytics/service"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.LoadConfig()

	// 初始化日志
	utils.InitLogger(cfg.Debug)
	utils.SetJWTSecret(cfg.JWTKey)

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("连接MongoDB失败")
	}
	defer repository.CloseMongoDB()

	// 初始化系统数据
	utils.Logger.Info().Msg("开始系统初始化...")
	if err := repository.InitializeCollections(); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化数据库集合失败")
	}
	if cfg.AdminPassword != "" {
		if err := repository.InitializeAdminAccount(cfg.AdminPassword); err != nil {
			utils.Logger.Error().Err(err).Msg("初始化管理员账户失败")
		}
	}
	utils.Logger.Info().Msg("系统初始化完成")

	repo := repository.NewAnalyticsRepository(repository.GetDB())

	// 创建Gin实例
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.OperationLoggerMiddleware(repo))

	routes.RegisterRoutes(router, repo, repository.GetDatabaseStatus)

	// 定时清理操作日志
	taskCtx, stopTasks := context.WithCancel(context.Background())
	defer stopTasks()
	if cfg.LogRetentionDays > 0 {
		service.ScheduleDailyTaskAt(taskCtx, 3, 0, 0, func(ctx context.Context) {
			_, _ = service.PurgeOperationLogs(ctx, repo, cfg.LogRetentionDays)
		})
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.LogInfo(map[string]interface{}{
			"port":          cfg.Port,
			"database":      cfg.MongoDB,
			"retentionDays": cfg.LogRetentionDays,
		}, "服务器启动")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("启动服务器失败")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("正在关闭服务器...")
	stopTasks()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("服务器关闭异常")
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
}

package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskcall/internal/adapter/db"
	httpadapter "taskcall/internal/adapter/http"
	"taskcall/internal/adapter/http/handlers"
	httpmiddleware "taskcall/internal/adapter/http/middleware"
	"taskcall/internal/adapter/notifier"
	"taskcall/internal/app/service"
	"taskcall/internal/config"
	"taskcall/internal/scheduler"
	"taskcall/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	subtaskRepository := dbadapter.NewSubtaskRepository(db)

	authService := service.NewAuthService(userRepository, cfg.JwtIssuer, []byte(cfg.JwtSecret), cfg.JwtTokenTTL)
	taskService := service.NewTaskService(taskRepository)
	subtaskService := service.NewSubtaskService(subtaskRepository, taskRepository)

	voiceClient := notifier.NewVoiceClient(cfg.VoiceBaseURL, cfg.VoiceAPIKey, cfg.VoiceCallerID)
	reconcileService := service.NewReconcileService(taskRepository, voiceClient)

	sched := scheduler.New(time.Local)
	if _, err := sched.ScheduleDaily(cfg.PriorityRefreshAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := reconcileService.RefreshPriorities(jobCtx, time.Now()); err != nil {
			zap.L().Error("priority refresh failed", zap.Error(err))
		}
	}); err != nil {
		logger.Fatal("failed to schedule priority refresh", zap.Error(err))
	}
	if _, err := sched.ScheduleDaily(cfg.OverdueSweepAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := reconcileService.SweepOverdue(jobCtx, time.Now()); err != nil {
			zap.L().Error("overdue sweep failed", zap.Error(err))
		}
	}); err != nil {
		logger.Fatal("failed to schedule overdue sweep", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	subtaskHandler := handlers.NewSubtaskHandler(subtaskService)
	httpadapter.RegisterRoutes(r, authService, healthHandler, authHandler, taskHandler, subtaskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

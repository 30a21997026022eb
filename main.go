package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"shootbook/config"
	"shootbook/cron"
	"shootbook/database"
	bookingRepo "shootbook/database/repository/booking"
	"shootbook/handlers"
	"shootbook/middleware"
	"shootbook/routes"
	"shootbook/services/booking"
	"shootbook/services/notification"
	"shootbook/services/session"
	"shootbook/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := database.InitDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize MongoDB", zap.Error(err))
	}
	repo := bookingRepo.NewMongoBookingRepo(mongoClient, cfg.DatabaseName)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("main: failed to ensure booking indexes", zap.Error(err))
	}

	pingers := map[string]utils.Pinger{"mongo": utils.MongoPinger(mongoClient)}

	var drafts session.DraftStore
	switch cfg.SessionStore {
	case "memory":
		logger.Warn("main: wizard sessions are kept in memory and lost on restart")
		drafts = session.NewMemoryDraftStore(cfg.SessionTTL())
	default:
		redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
		if err != nil {
			logger.Fatal("main: failed to initialize session cache", zap.Error(err))
		}
		defer redisClient.Close()
		drafts = session.NewRedisDraftStore(redisClient, cfg.SessionTTL())
		pingers["redis"] = utils.RedisPinger(redisClient)
	}

	queueOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisTaskQueueDB,
	}
	taskClient := asynq.NewClient(queueOpts)
	defer taskClient.Close()

	notificationService, err := notification.NewLogNotificationService(logger)
	if err != nil {
		logger.Fatal("main: failed to initialize notifications", zap.Error(err))
	}
	worker := cron.InitConfirmationWorker(queueOpts, notificationService, logger)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	monitor := utils.NewHealthMonitor(pingers, 60*time.Second)
	monitor.Start(monitorCtx)

	bookingService := &booking.DefaultBookingService{
		Drafts:   drafts,
		Repo:     repo,
		Tasks:    taskClient,
		Rates:    cfg.Rates,
		Location: cfg.Location(),
		Logger:   logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	healthHandler := &handlers.HealthHandler{Monitor: monitor}
	handlerBundle := handlers.NewHandlerBundle(bookingHandler, healthHandler)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

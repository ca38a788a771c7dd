// File: attendai/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendai/config"
	"attendai/cron"
	"attendai/database"
	userRepoPkg "attendai/database/repository/user"
	userDataRepo "attendai/database/repository/userdata"
	"attendai/handlers"
	"attendai/middleware"
	"attendai/routes"
	ai "attendai/services/intelligence"
	"attendai/services/notification"
	"attendai/services/user"
	"attendai/services/userdata"
	"attendai/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	var (
		userRepo     userRepoPkg.UserRepository
		dataRepo     userDataRepo.UserDataRepository
		otpStore     user.OTPStore
		authCache    *redis.Client
		redisClients []*redis.Client
	)
	if config.UsesMemoryStore() {
		logger.Warn("main: using in-memory storage; data is lost on restart")
		userRepo = userRepoPkg.NewMemoryUserRepo()
		dataRepo = userDataRepo.NewMemoryUserDataRepo()
		otpStore = user.NewMemoryOTPStore()
	} else {
		if err := database.InitDB(); err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		db := database.Database()
		userRepo = userRepoPkg.NewMongoUserRepo(db, logger)
		dataRepo = userDataRepo.NewMongoUserDataRepo(db, logger)

		authCache = utils.GetAuthCacheClient()
		otpStore = user.NewRedisOTPStore(utils.GetOTPCacheClient())
		redisClients = []*redis.Client{authCache, utils.OTPCacheClient}
	}

	// mail delivery.
	var mailer notification.Mailer
	if config.AppConfig.SendgridAPIKey != "" {
		mailer = notification.NewSendgridMailer(config.AppConfig.SendgridAPIKey, config.AppConfig.MailFromName, config.AppConfig.MailFrom)
	} else {
		logger.Warn("main: SENDGRID_API_KEY not set; OTP emails are logged instead of sent")
		mailer = notification.NewConsoleMailer(logger)
	}

	var (
		dispatcher  user.OTPDispatcher
		queueClient *asynq.Client
		mailWorker  *asynq.Server
	)
	if config.UsesMemoryStore() {
		dispatcher = user.NewDirectDispatcher(mailer)
	} else {
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		mailWorker = cron.InitMailWorker(mailer)
		dispatcher = user.NewQueueDispatcher(queueClient)
	}

	// timetable extraction.
	extractor, err := ai.NewGeminiExtractor(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize Gemini client", zap.Error(err))
	}
	defer extractor.Close()

	var archive ai.ImageArchive
	if config.AppConfig.CloudinaryCloudName != "" {
		cld, err := ai.NewCloudinaryArchive(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
			config.AppConfig.CloudinaryFolder,
		)
		if err != nil {
			logger.Warn("main: timetable archive disabled", zap.Error(err))
		} else {
			archive = cld
		}
	}

	// services.
	userService := user.NewDefaultUserService(userRepo, otpStore, dispatcher, config.AppConfig.TokenTTL)
	dataService := userdata.NewService(dataRepo, extractor, archive, logger)

	handlerBundle := handlers.NewHandlerBundle(
		userRepo,
		authCache,
		handlers.NewAuthHandler(userService),
		handlers.NewDataHandler(dataService, config.AppConfig.MaxUploadBytes),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.MaxMultipartMemory = config.AppConfig.MaxUploadBytes

	routes.RegisterRoutes(router, handlerBundle)
	utils.StartHealthMonitor(rootCtx, redisClients, dataRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	if mailWorker != nil {
		mailWorker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	utils.CloseCaches()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	bookingRepoPkg "voyago/database/repository/booking"
	listingRepoPkg "voyago/database/repository/listing"
	paymentRepoPkg "voyago/database/repository/payment"
	reviewRepoPkg "voyago/database/repository/review"
	userRepoPkg "voyago/database/repository/user"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/booking"
	"voyago/services/listing"
	"voyago/services/notification"
	"voyago/services/payment"
	"voyago/services/user"
	"voyago/tasks"
	"voyago/utils"
	"voyago/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()
	defer logger.Sync()

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}

	cacheClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo(mongoClient, cfg.DatabaseName)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient, cfg.DatabaseName)
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo(mongoClient, cfg.DatabaseName)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(mongoClient, cfg.DatabaseName)
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient, cfg.DatabaseName)

	// task queue client.
	submitter := tasks.NewAsynqSubmitter(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	})
	defer submitter.Close()

	// services.
	tokenIssuer := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())

	listingService := &listing.DefaultService{
		Listings: listingRepo,
		Reviews:  reviewRepo,
		Cache:    cacheClient,
		Logger:   logger,
	}

	bookingService := &booking.DefaultService{
		Bookings: bookingRepo,
		Listings: listingRepo,
		Tasks:    submitter,
		Logger:   logger,
	}

	gateway := payment.NewChapaClient(cfg.ChapaBaseURL, cfg.ChapaSecretKey, cfg.GatewayTimeout(), logger)
	paymentService := &payment.DefaultService{
		Gateway:     gateway,
		Payments:    paymentRepo,
		Tasks:       submitter,
		Currency:    cfg.PaymentCurrency,
		CallbackURL: cfg.PaymentCallbackURL,
		Logger:      logger,
	}

	userService := &user.DefaultService{
		Repo:   userRepo,
		Tokens: tokenIssuer,
		Logger: logger,
	}

	mailer := notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	dispatcher := notification.NewDispatcher(bookingRepo, listingRepo, paymentRepo, mailer, logger)

	// Background notification worker pulling from the task queue.
	worker.Start(worker.Options{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisQueueDB,
		Concurrency:   cfg.WorkerConcurrency,
	}, dispatcher, logger)

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(200))

	handlerBundle := &routes.HandlerBundle{
		Listings: handlers.NewListingHandler(listingService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Payments: handlers.NewPaymentHandler(paymentService),
		Users:    handlers.NewUserHandler(userService),
		Health:   handlers.NewHealthHandler(mongoClient, cacheClient),
		Tokens:   tokenIssuer,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

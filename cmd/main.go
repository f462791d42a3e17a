package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/vastu-shakti/application/admin"
	blogapp "github.com/muhammadheryan/vastu-shakti/application/blog"
	chatapp "github.com/muhammadheryan/vastu-shakti/application/chat"
	consultationapp "github.com/muhammadheryan/vastu-shakti/application/consultation"
	contactapp "github.com/muhammadheryan/vastu-shakti/application/contact"
	"github.com/muhammadheryan/vastu-shakti/application/notification"
	userapp "github.com/muhammadheryan/vastu-shakti/application/user"
	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	redisclient "github.com/muhammadheryan/vastu-shakti/cmd/redis"
	_ "github.com/muhammadheryan/vastu-shakti/docs"
	blogRepo "github.com/muhammadheryan/vastu-shakti/repository/blog"
	chatRepo "github.com/muhammadheryan/vastu-shakti/repository/chat"
	consultationRepo "github.com/muhammadheryan/vastu-shakti/repository/consultation"
	contactRepo "github.com/muhammadheryan/vastu-shakti/repository/contact"
	feedbackRepo "github.com/muhammadheryan/vastu-shakti/repository/feedback"
	redisRepo "github.com/muhammadheryan/vastu-shakti/repository/redis"
	userRepo "github.com/muhammadheryan/vastu-shakti/repository/user"
	"github.com/muhammadheryan/vastu-shakti/thirdparty/mailer"
	"github.com/muhammadheryan/vastu-shakti/thirdparty/rabbitmq"
	"github.com/muhammadheryan/vastu-shakti/transport"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
)

// @title VASTU SHAKTI API
// @version 1.0
// @description Vastu Shakti consultation booking API Documentation
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis only backs rate limiting, the API runs without it
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("err connect redis, rate limiting disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ConsultationRepo := consultationRepo.NewConsultationRepository(db)
	ContactRepo := contactRepo.NewContactRepository(db)
	FeedbackRepo := feedbackRepo.NewFeedbackRepository(db)
	BlogRepo := blogRepo.NewBlogRepository(db)
	ChatRepo := chatRepo.NewChatRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Notifications go through the queue when enabled, otherwise straight to SMTP
	var sender notification.Sender = notification.NewEmailSender(notification.NewRenderer(cfg.Business), mailer.NewSMTPMailer(cfg.Email))
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
		sender = publisher
	}
	dispatcher := notification.NewDispatcher(sender, cfg.Email.SendTimeout)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo)
	ConsultationApp := consultationapp.NewConsultationApp(ConsultationRepo, UserRepo, dispatcher)
	ContactApp := contactapp.NewContactApp(ContactRepo, FeedbackRepo, dispatcher)
	BlogApp := blogapp.NewBlogApp(BlogRepo)
	ChatApp := chatapp.NewChatApp(ChatRepo)
	AdminApp := adminapp.NewAdminApp(ConsultationRepo, UserRepo, ContactRepo, FeedbackRepo)

	httpTransport := transport.NewTransport(transport.Options{
		Config:          cfg,
		UserApp:         UserApp,
		ConsultationApp: ConsultationApp,
		ContactApp:      ContactApp,
		BlogApp:         BlogApp,
		ChatApp:         ChatApp,
		AdminApp:        AdminApp,
		RateLimiter:     RedisRepo,
		DBCheck:         db.PingContext,
		RedisCheck:      redisclient.Ping,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go reportDBStats(ctx, db)

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed server", zap.Error(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logger.Warn("notifications still in flight at shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func reportDBStats(ctx context.Context, db *sqlx.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateDBStats(db.Stats())
		}
	}
}

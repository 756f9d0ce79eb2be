package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/KhaledAshrafH/Task-Management-System/internal/adapter/db"
	httpadapter "github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/handlers"
	httpmiddleware "github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/middleware"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/mail"
	appauth "github.com/KhaledAshrafH/Task-Management-System/internal/app/auth"
	appservice "github.com/KhaledAshrafH/Task-Management-System/internal/app/service"
	"github.com/KhaledAshrafH/Task-Management-System/internal/config"
	"github.com/KhaledAshrafH/Task-Management-System/pkg/translator"
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
	tokenRepository := dbadapter.NewTokenRepository(db)
	historyRepository := dbadapter.NewTaskHistoryRepository(db)
	notificationRepository := dbadapter.NewNotificationRepository(db)
	transactor := dbadapter.NewTransactor(db)

	mailSender := mail.NewSMTPSender(mail.Config{
		Host:     cfg.SmtpHost,
		Port:     cfg.SmtpPort,
		Username: cfg.SmtpUser,
		Password: cfg.SmtpPass,
		From:     cfg.MailFrom,
	})

	tokenIssuer := appauth.NewJWTManager(appauth.JWTConfig{
		SecretKey: cfg.JwtSecret,
		TokenTTL:  cfg.JwtTTL,
		Issuer:    cfg.JwtIssuer,
	})
	passwordHasher := appauth.NewPasswordHasher(cfg.BcryptCost)

	notificationService := appservice.NewNotificationService(notificationRepository, userRepository, mailSender, cfg.MailTimeout)
	historyService := appservice.NewTaskHistoryService(taskRepository, historyRepository)
	authService := appservice.NewAuthService(userRepository, tokenRepository, notificationService, tokenIssuer, passwordHasher, transactor)
	taskService := appservice.NewTaskService(taskRepository, userRepository, historyService, notificationService, transactor)
	userService := appservice.NewUserService(userRepository)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scanner := appservice.NewDueSoonScanner(taskRepository, notificationService, cfg.DueSoonScan)
	go scanner.Run(ctx)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService, historyService)
	userHandler := handlers.NewUserHandler(userService, historyService, notificationService)
	httpadapter.RegisterRoutes(r, authService, healthHandler, authHandler, taskHandler, userHandler)

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

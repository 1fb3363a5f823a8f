package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"soko.backend/internal/config"
	"soko.backend/internal/infrastructure/jobs"
	"soko.backend/internal/infrastructure/mailer"
	"soko.backend/internal/infrastructure/paygate"
	"soko.backend/internal/infrastructure/repositories"
	"soko.backend/internal/interfaces/http/handlers"
	"soko.backend/internal/interfaces/http/middleware"
	"soko.backend/internal/usecases"
	"soko.backend/pkg/jwt"
	"soko.backend/pkg/logger"
	"soko.backend/pkg/redis"
)

const adExpiryInterval = time.Minute

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(cfg.Server.Environment)
	logger.Info(context.Background(), "Logger initialized",
		zap.String("env", cfg.Server.Environment))

	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	logger.Info(context.Background(), "Connected to PostgreSQL")

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	tokenStore := redis.NewTokenStore(cfg.JWT.RefreshExpiry)

	var mail mailer.Mailer = mailer.NoopMailer{}
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username,
			cfg.SMTP.Password, cfg.SMTP.From, cfg.Server.AppURL)
	}

	gateway := paygate.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.SecretKey, cfg.Gateway.Timeout)

	// Repositories
	customerRepo := repositories.NewCustomerRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	marketRepo := repositories.NewMarketRepository(db)
	productRepo := repositories.NewProductRepository(db)
	adRepo := repositories.NewAdRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	marketerRepo := repositories.NewMarketerRepository(db)
	earningsRepo := repositories.NewEarningsRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	authTokenRepo := repositories.NewAuthTokenRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(customerRepo, merchantRepo, marketerRepo, authTokenRepo, jwtService, tokenStore, mail)
	customerUsecase := usecases.NewCustomerUsecase(customerRepo, addressRepo)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, marketRepo, marketerRepo, addressRepo)
	marketUsecase := usecases.NewMarketUsecase(marketRepo, merchantRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, merchantRepo)
	adUsecase := usecases.NewAdUsecase(adRepo, productRepo, merchantRepo, txnRepo, earningsRepo, gateway, uow)
	cartUsecase := usecases.NewCartUsecase(cartRepo, productRepo)
	ratingUsecase := usecases.NewRatingUsecase(ratingRepo, productRepo)
	marketerUsecase := usecases.NewMarketerUsecase(marketerRepo, earningsRepo, customerRepo, uow)
	statsUsecase := usecases.NewStatsUsecase(customerRepo, merchantRepo, marketRepo, productRepo, adRepo, txnRepo, earningsRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	customerHandler := handlers.NewCustomerHandler(customerUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	marketHandler := handlers.NewMarketHandler(marketUsecase)
	productHandler := handlers.NewProductHandler(productUsecase, cfg.Uploads)
	adHandler := handlers.NewAdHandler(adUsecase)
	cartHandler := handlers.NewCartHandler(cartUsecase)
	ratingHandler := handlers.NewRatingHandler(ratingUsecase)
	marketerHandler := handlers.NewMarketerHandler(marketerUsecase)
	statsHandler := handlers.NewStatsHandler(statsUsecase)

	// Background jobs
	expiryJob := jobs.NewAdExpiryJob(adRepo, adExpiryInterval)
	expiryJob.Start()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		customerHandler: customerHandler,
		merchantHandler: merchantHandler,
		marketHandler:   marketHandler,
		productHandler:  productHandler,
		adHandler:       adHandler,
		cartHandler:     cartHandler,
		ratingHandler:   ratingHandler,
		marketerHandler: marketerHandler,
		statsHandler:    statsHandler,
		customerAuth:    middleware.CustomerAuth(jwtService),
		merchantAuth:    middleware.MerchantAuth(jwtService),
		uploadsDir:      cfg.Uploads.Dir,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		expiryJob.Stop()
	}()

	logger.Info(context.Background(), "Server starting",
		zap.String("port", cfg.Server.Port))

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/quickgigs/wallet-service/internal/handlers"
	"github.com/quickgigs/wallet-service/internal/jwt"
	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/repositories"
	"github.com/quickgigs/wallet-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/quickgigs/wallet-service/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title quickgigs wallet API
// @version 1.0.0
// @description Microservice for wallet balances, escrow and the money-movement ledger
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, JWT, escrow and
// webhook configuration.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	pgLockTimeout  time.Duration

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	walletCacheExp    time.Duration

	kafkaBroker string
	kafkaTopic  string

	jwtSecretKey string
	jwtExp       time.Duration

	platformWalletID uuid.UUID
	amountMin        decimal.Decimal
	amountMax        decimal.Decimal

	webhookSecret string
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "wallet")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	lockTimeoutMs, err := getEnvInt("PG_LOCK_TIMEOUT_MS", "3000")
	if err != nil {
		return
	}
	cfg.pgLockTimeout = time.Duration(lockTimeoutMs) * time.Millisecond

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	cacheExpSecond, err := getEnvInt("WALLET_CACHE_EXP_SECOND", "30")
	if err != nil {
		return
	}
	cfg.walletCacheExp = time.Duration(cacheExpSecond) * time.Second

	// Kafka config
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := getEnvInt("JWT_EXP_SECOND", "3600")
	if err != nil {
		return
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	// Escrow config
	if cfg.platformWalletID, err = uuid.Parse(getEnv("PLATFORM_WALLET_ID", "00000000-0000-0000-0000-000000000001")); err != nil {
		return
	}
	if cfg.amountMin, err = decimal.NewFromString(getEnv("AMOUNT_MIN", "10.00")); err != nil {
		return
	}
	if cfg.amountMax, err = decimal.NewFromString(getEnv("AMOUNT_MAX", "10000.00")); err != nil {
		return
	}

	// Payment gateway webhook config
	cfg.webhookSecret = getEnv("WEBHOOK_SECRET", "whsec_dev")

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for wallet event relay
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.kafkaBroker),
		Topic:    cfg.kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.jwtSecretKey, cfg.jwtExp)

	// Initialize repositories
	uow := repositories.NewTxRunner(db, cfg.pgLockTimeout)
	walletReader := repositories.NewWalletReaderRepository(db)
	walletWriter := repositories.NewWalletWriterRepository(db)
	txnReader := repositories.NewTransactionReaderRepository(db)
	txnWriter := repositories.NewTransactionWriterRepository(db)
	eventWriter := repositories.NewEventWriterRepository(db)
	eventReader := repositories.NewEventReaderRepository(db)
	jobWriter := repositories.NewJobWriterRepository(db)
	jobReader := repositories.NewJobReaderRepository(db)
	walletCache := repositories.NewWalletCacheRepository(rdb, cfg.walletCacheExp)

	// Initialize services
	amountPolicy := services.AmountPolicy{Min: cfg.amountMin, Max: cfg.amountMax}
	walletService := services.NewWalletService(
		uow, walletReader, walletWriter,
		txnReader, txnWriter,
		eventWriter, eventReader,
		walletCache, kafkaWriter,
		services.NoopAuditSink{}, amountPolicy,
	)
	escrowService := services.NewEscrowService(
		uow, walletService, walletReader, txnReader,
		jobWriter, jobReader,
		cfg.platformWalletID, amountPolicy,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/webhooks/payment", handlers.NewPaymentWebhookHandler(walletService, cfg.webhookSecret))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Get("/wallet", handlers.NewGetWalletHandler(walletService))
		r.Post("/wallet/deposit", handlers.NewInitiateDepositHandler(walletService))
		r.Post("/wallet/withdraw", handlers.NewInitiateWithdrawHandler(walletService))
		r.Get("/wallet/transactions", handlers.NewTransactionHistoryHandler(walletService))
		r.Get("/wallet/transactions/pending", handlers.NewPendingTransactionsHandler(walletService))
		r.Post("/wallet/transactions/{transaction_id}/confirm", handlers.NewConfirmTransactionHandler(walletService, txnReader))
		r.Post("/wallet/transactions/{transaction_id}/cancel", handlers.NewCancelWithdrawHandler(walletService, txnReader))
		r.Get("/wallet/events", handlers.NewEventHistoryHandler(walletService))

		r.Post("/jobs", handlers.NewPostJobHandler(escrowService))
		r.Post("/jobs/{job_id}/complete", handlers.NewCompleteJobHandler(escrowService, jobReader))
		r.Post("/jobs/{job_id}/cancel", handlers.NewCancelJobHandler(escrowService, jobReader))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

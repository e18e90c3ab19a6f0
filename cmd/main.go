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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/recipes/internal/handlers"

	"github.com/sbilibin2017/recipes/internal/jwt"
	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/repositories"
	"github.com/sbilibin2017/recipes/internal/services"
	"github.com/sbilibin2017/recipes/internal/views"

	"github.com/sbilibin2017/recipes/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/recipes/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost, appPort, logLevel string

	pgHost                         string
	pgPort                         int
	pgUser, pgPassword, pgDB       string
	pgMaxOpenConns, pgMaxIdleConns int

	redisHost                        string
	redisPort, redisDB               int
	redisPassword                    string
	redisPoolSize, redisMinIdleConns int
	redisExpSecond                   int

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int
}

// @title recipes admin API
// @version 1.0.0
// @description Authoring API of the recipe catalog: authors, categories, recipes and publication
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, logging, and JWT configuration.
// Variables already set in the environment win over the file.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "recipes")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "300"); err != nil {
		return
	}

	// Kafka config, events are disabled without brokers
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "recipes.events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

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
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

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
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
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

	// Kafka writer for recipe events
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.kafkaBrokers...),
			Topic:        cfg.kafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS is empty, recipe events are disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	authorReadRepo := repositories.NewAuthorReadRepository(db)
	authorWriteRepo := repositories.NewAuthorWriteRepository(db, txGetter)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db, txGetter)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db, txGetter)
	recipeCacheRepo := repositories.NewRecipeCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)

	// Initialize services
	catalogService := services.NewCatalogService(recipeReadRepo, recipeCacheRepo)
	authService := services.NewAuthService(authorReadRepo, authorWriteRepo, tokens)
	recipeService := services.NewRecipeService(categoryWriteRepo, recipeWriteRepo, recipeReadRepo, recipeCacheRepo, kafkaWriter)

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public pages
	r.Get("/", handlers.NewHomeHandler(catalogService, renderer))
	r.Get("/category/{category_id}", handlers.NewCategoryHandler(catalogService, renderer))
	r.Get("/recipe/{id}", handlers.NewRecipeHandler(catalogService, renderer))
	r.NotFound(handlers.NewNotFoundHandler(renderer))

	// Admin API
	txMiddleware := middlewares.TxMiddleware(db)
	r.Route("/api/v1", func(r chi.Router) {
		r.With(txMiddleware).Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.With(txMiddleware).Post("/categories", handlers.NewCreateCategoryHandler(recipeService))
			r.With(txMiddleware).Post("/recipes", handlers.NewCreateRecipeHandler(recipeService))
			// Autocommit so the cache is evicted after the change is visible.
			r.Post("/recipes/{id}/publish", handlers.NewPublishHandler(recipeService))
			r.Post("/recipes/{id}/unpublish", handlers.NewUnpublishHandler(recipeService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sushe-online/sushe-server/internal/facades"
	"github.com/sushe-online/sushe-server/internal/handlers"
	"github.com/sushe-online/sushe-server/internal/jwt"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/middlewares"
	"github.com/sushe-online/sushe-server/internal/migrations"
	"github.com/sushe-online/sushe-server/internal/repositories"
	"github.com/sushe-online/sushe-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title sushe-server API
// @version 1.0.0
// @description Service for curating ranked album lists with catalogue search and duplicate merging
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		spotifyClientID, spotifyClientSecret, lastFMAPIKey,
		jwtSecret, jwtExpSecond,
		extensionTokenTTLHour,
		corsOrigins,
		cacheTTLSecond, searchLimit, releaseLimit, releaseRefreshHour,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		spotifyClientID, spotifyClientSecret, lastFMAPIKey,
		jwtSecret, jwtExpSecond,
		extensionTokenTTLHour,
		corsOrigins,
		cacheTTLSecond, searchLimit, releaseLimit, releaseRefreshHour,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, catalogue, logging, and auth
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	spotifyClientID, spotifyClientSecret, lastFMAPIKey string,
	jwtSecretKey string, jwtExpSecond int,
	extensionTokenTTLHour int,
	corsOrigins string,
	cacheTTLSecond, searchLimit, releaseLimit, releaseRefreshHour int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "sushe")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, optional: without brokers activity events are skipped
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "sushe-list-events")

	// Catalogue config
	spotifyClientID = getEnv("SPOTIFY_CLIENT_ID", "")
	spotifyClientSecret = getEnv("SPOTIFY_CLIENT_SECRET", "")
	lastFMAPIKey = getEnv("LASTFM_API_KEY", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Extension token config
	if extensionTokenTTLHour, err = strconv.Atoi(getEnv("EXTENSION_TOKEN_TTL_HOUR", "720")); err != nil {
		return
	}

	// CORS config
	corsOrigins = getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,chrome-extension://*")

	// Cache and catalogue limits
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "900")); err != nil {
		return
	}
	if searchLimit, err = strconv.Atoi(getEnv("SEARCH_LIMIT", "20")); err != nil {
		return
	}
	if releaseLimit, err = strconv.Atoi(getEnv("RELEASE_LIMIT", "40")); err != nil {
		return
	}
	if releaseRefreshHour, err = strconv.Atoi(getEnv("RELEASE_REFRESH_HOUR", "24")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, catalogue facades,
// and HTTP server. It applies migrations, sets up routes and middleware,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBrokers, kafkaTopic string,
	spotifyClientID, spotifyClientSecret, lastFMAPIKey string,
	jwtSecretKey string, jwtExpSecond int,
	extensionTokenTTLHour int,
	corsOrigins string,
	cacheTTLSecond, searchLimit, releaseLimit, releaseRefreshHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	if err := migrations.Run(ctx, db); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for activity events, optional
	var eventWriter services.KafkaWriter
	if kafkaBrokers != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
	} else {
		logger.Log.Warn("Kafka brokers not configured, activity events disabled")
	}

	// Catalogue facades
	spotifyFacade := facades.NewSpotifyFacade(ctx, spotifyClientID, spotifyClientSecret)
	lastFMFacade := facades.NewLastFMFacade(lastFMAPIKey)

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	albumReadRepo := repositories.NewAlbumReadRepository(db)
	albumWriteRepo := repositories.NewAlbumWriteRepository(db, txGetter)
	listReadRepo := repositories.NewListReadRepository(db)
	listWriteRepo := repositories.NewListWriteRepository(db, txGetter)
	trackPickReadRepo := repositories.NewTrackPickReadRepository(db)
	trackPickWriteRepo := repositories.NewTrackPickWriteRepository(db, txGetter)
	extTokenReadRepo := repositories.NewExtensionTokenReadRepository(db)
	extTokenWriteRepo := repositories.NewExtensionTokenWriteRepository(db)
	releaseReadRepo := repositories.NewReleaseReadRepository(db)
	releaseWriteRepo := repositories.NewReleaseWriteRepository(db)
	cacheRepo := repositories.NewSearchCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	albumService := services.NewAlbumService(albumReadRepo, albumWriteRepo)
	listService := services.NewListService(listReadRepo, listWriteRepo, eventWriter)
	trackPickService := services.NewTrackPickService(trackPickReadRepo, trackPickWriteRepo, albumReadRepo)
	extTokenService := services.NewExtensionTokenService(extTokenReadRepo, extTokenWriteRepo, time.Duration(extensionTokenTTLHour)*time.Hour)
	duplicateService := services.NewDuplicateService(albumReadRepo, albumReadRepo, albumWriteRepo, eventWriter)
	searchService := services.NewSearchService(cacheRepo, spotifyFacade, lastFMFacade, searchLimit)
	releaseService := services.NewReleaseService(releaseReadRepo, releaseWriteRepo, cacheRepo, spotifyFacade, releaseLimit)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	listsGetHandler := handlers.NewListsGetHandler(listService)
	listCreateHandler := handlers.NewListCreateHandler(listService)
	listGetHandler := handlers.NewListGetHandler(listService)
	listUpdateHandler := handlers.NewListUpdateHandler(listService)
	listDeleteHandler := handlers.NewListDeleteHandler(listService)
	listAddAlbumHandler := handlers.NewListAddAlbumHandler(albumService, listService)
	listRemoveAlbumHandler := handlers.NewListRemoveAlbumHandler(listService)
	listReorderHandler := handlers.NewListReorderHandler(listService)
	trackPickSetHandler := handlers.NewTrackPickSetHandler(trackPickService)
	trackPickClearHandler := handlers.NewTrackPickClearHandler(trackPickService)
	trackPicksGetHandler := handlers.NewTrackPicksGetHandler(trackPickService)
	extTokenIssueHandler := handlers.NewExtensionTokenIssueHandler(extTokenService)
	extTokensGetHandler := handlers.NewExtensionTokensGetHandler(extTokenService)
	extTokenRevokeHandler := handlers.NewExtensionTokenRevokeHandler(extTokenService)
	extAlbumSubmitHandler := handlers.NewExtensionAlbumSubmitHandler(albumService, listService)
	searchHandler := handlers.NewSearchHandler(searchService)
	releasesHandler := handlers.NewReleasesHandler(releaseService)
	scanDuplicatesHandler := handlers.NewScanDuplicatesHandler(duplicateService)
	mergeAlbumsHandler := handlers.NewMergeAlbumsHandler(duplicateService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := middlewares.AuthMiddleware(jwtService)
	adminMiddleware := middlewares.AdminMiddleware()
	extensionAuthMiddleware := middlewares.ExtensionAuthMiddleware(extTokenService)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/lists", listsGetHandler)
			r.Post("/lists", listCreateHandler)
			r.Get("/lists/{listID}", listGetHandler)
			r.Put("/lists/{listID}", listUpdateHandler)
			r.Delete("/lists/{listID}", listDeleteHandler)
			r.Post("/lists/{listID}/albums", listAddAlbumHandler)
			r.Delete("/lists/{listID}/albums/{itemID}", listRemoveAlbumHandler)
			r.With(txMiddleware).Put("/lists/{listID}/reorder", listReorderHandler)

			r.Get("/track-picks", trackPicksGetHandler)
			r.Put("/albums/{albumID}/track-pick", trackPickSetHandler)
			r.Delete("/albums/{albumID}/track-pick", trackPickClearHandler)

			r.Post("/extension/tokens", extTokenIssueHandler)
			r.Get("/extension/tokens", extTokensGetHandler)
			r.Delete("/extension/tokens/{tokenID}", extTokenRevokeHandler)

			r.Get("/search/albums", searchHandler)
			r.Get("/releases", releasesHandler)
		})

		// Extension routes authenticated with extension tokens
		r.Group(func(r chi.Router) {
			r.Use(extensionAuthMiddleware)
			r.Post("/extension/albums", extAlbumSubmitHandler)
		})
	})

	// Admin routes
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(adminMiddleware)
		r.Get("/scan-duplicates", scanDuplicatesHandler)
		r.With(txMiddleware).Post("/merge-albums", mergeAlbumsHandler)
	})

	r.Get("/health", healthHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Weekly releases refresh loop
	go releaseService.RunRefreshLoop(ctxShutdown, time.Duration(releaseRefreshHour)*time.Hour)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

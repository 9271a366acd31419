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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/antonkh/thingboard/internal/handlers"
	"github.com/antonkh/thingboard/internal/jwt"
	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/middlewares"
	"github.com/antonkh/thingboard/internal/migrations"
	"github.com/antonkh/thingboard/internal/render"
	"github.com/antonkh/thingboard/internal/repositories"
	"github.com/antonkh/thingboard/internal/services"
	"github.com/antonkh/thingboard/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionSecretKey, sessionTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionSecretKey, sessionTTLSecond,
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
// application, database, Redis, and session configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionSecretKey string, sessionTTLSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "thingboard")
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

	// Session config
	sessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionSecretKey string, sessionTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Run migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize session store
	sessionTTL := time.Duration(sessionTTLSecond) * time.Second
	tokens := jwt.New(sessionSecretKey, sessionTTL)
	sessionStore := sessions.NewStore(rdb, tokens, sessionTTL)

	// Initialize renderer
	renderer, err := render.New()
	if err != nil {
		logger.Log.Fatal("failed to parse templates:", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	thingReadRepo := repositories.NewThingReadRepository(db)
	thingWriteRepo := repositories.NewThingWriteRepository(db)
	teamReadRepo := repositories.NewTeamReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	thingService := services.NewThingService(thingReadRepo, thingWriteRepo)
	teamService := services.NewTeamService(teamReadRepo)

	// Initialize handlers
	teamListHandler := handlers.NewTeamListHandler(teamService, sessionStore, renderer)
	teamImageHandler := handlers.NewTeamImageHandler(teamService, renderer)
	aboutHandler := handlers.NewAboutHandler(sessionStore, renderer)
	thingListHandler := handlers.NewThingListHandler(thingService, sessionStore, renderer)
	thingDetailHandler := handlers.NewThingDetailHandler(thingService, sessionStore, renderer)
	addThingHandler := handlers.NewAddThingHandler(thingService, sessionStore, renderer)
	deleteThingHandler := handlers.NewDeleteThingHandler(thingService, sessionStore, renderer)
	registerFormHandler := handlers.NewRegisterFormHandler(sessionStore, renderer)
	loginFormHandler := handlers.NewLoginFormHandler(sessionStore, renderer)
	addUserHandler := handlers.NewAddUserHandler(authService, sessionStore, renderer)
	loginUserHandler := handlers.NewLoginUserHandler(authService, sessionStore, renderer)
	logoutHandler := handlers.NewLogoutHandler(sessionStore)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", teamListHandler)
	r.Get("/team-image/{code}", teamImageHandler)
	r.Get("/about/", aboutHandler)
	r.Get("/things/", thingListHandler)
	r.Get("/thing/{id}", thingDetailHandler)
	r.Get("/register", registerFormHandler)
	r.Get("/signup/", registerFormHandler)
	r.Get("/login", loginFormHandler)
	r.Post("/add-user", addUserHandler)
	r.Post("/login-user", loginUserHandler)
	r.Get("/logout", logoutHandler)

	// Protected routes behind the session gate
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(sessionStore))
		r.Post("/add", addThingHandler)
		r.Get("/delete/{id}", deleteThingHandler)
	})

	// Unknown routes get the rendered 404 page
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderer.NotFound(w, render.Data{})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

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

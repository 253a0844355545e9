package internal

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal/config"
	"github.com/lk16/checkers/internal/middleware"
	"github.com/lk16/checkers/internal/play"
	"github.com/lk16/checkers/internal/repository"
	"github.com/lk16/checkers/internal/routes"
	"github.com/lk16/checkers/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultBodyLimit    = 64 * 1024
)

// SetupApp loads the configuration, connects to the configured services and builds the app.
func SetupApp() (*fiber.App, *config.ServerConfig) {
	cfg := config.LoadServerConfig()

	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	return BuildApp(cfg, NewPlayService(services)), cfg
}

// NewPlayService picks the session store and archive backed by the available services.
func NewPlayService(s *services.Services) *play.Service {
	var sessions repository.SessionStore = repository.NewMemorySessionStore()
	if s.Redis != nil {
		sessions = repository.NewRedisSessionStoreFromServices(s)
	} else {
		slog.Warn("No Redis configured, games are kept in memory")
	}

	var archive repository.Archive = repository.NoopArchive{}
	if s.Postgres != nil {
		archive = repository.NewPostgresArchiveFromServices(s)
	} else {
		slog.Warn("No Postgres configured, finished games are not archived")
	}

	return play.NewService(sessions, archive)
}

// BuildApp creates the Fiber app serving the given play service.
func BuildApp(cfg *config.ServerConfig, service *play.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup the game service and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("play", service)
		c.Locals("config", cfg)
		return c.Next()
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logging())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	routes.SetupRoutes(app)

	return app
}

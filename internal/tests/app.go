package tests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal"
	"github.com/lk16/checkers/internal/config"
	"github.com/lk16/checkers/internal/play"
	"github.com/lk16/checkers/internal/repository"
)

const (
	TestToken    = "test-token"
	TestUser     = "test-user"
	TestPassword = "test-password"
)

// NewTestConfig returns a config that needs no external services.
func NewTestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        "127.0.0.1",
		ServerPort:        "0",
		BasicAuthUsername: TestUser,
		BasicAuthPassword: TestPassword,
		Token:             TestToken,
		CORSOrigins:       "*",
	}
}

// NewTestApp builds an app backed by an in-memory session store and the given archive.
func NewTestApp(archive repository.Archive) *fiber.App {
	if archive == nil {
		archive = repository.NoopArchive{}
	}
	service := play.NewService(repository.NewMemorySessionStore(), archive)
	return internal.BuildApp(NewTestConfig(), service)
}

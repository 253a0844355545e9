package main

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/lk16/checkers/internal"
	"github.com/lk16/checkers/internal/config"
)

func main() {
	// Values from a local .env file never override the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Error loading .env file", "error", err)
	}

	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}

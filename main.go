package main

import (
	"github.com/joho/godotenv"

	"github.com/lucasvieira/booklist/internal/config"
	"github.com/lucasvieira/booklist/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Load .env if present; real environment variables take precedence.
	_ = godotenv.Load()

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}

package http

import (
	"github.com/lucasvieira/booklist/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore BookStore
	Database  *database.Database

	// Cross-origin access
	AllowedOrigins []string

	// Application info
	Version string
}

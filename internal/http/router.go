package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		}))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookStore)

	// Health endpoint
	router.GET("/health", health.Status)

	// Books endpoints
	booksGroup := router.Group("/books")
	{
		booksGroup.GET("", booksController.List)
		booksGroup.GET("/:id", booksController.Get)
		booksGroup.POST("", booksController.Create)
		booksGroup.PUT("/:id", booksController.Update)
		booksGroup.PATCH("/:id", booksController.PartialUpdate)
		booksGroup.DELETE("/:id", booksController.Delete)
	}

	return router
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasvieira/booklist/internal/database"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

// Status reports whether the API and its database are reachable.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	if h.db != nil {
		sqlDB, err := h.db.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database is not reachable",
				Version: h.version,
			})
			return
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: "Book catalog API is up and running",
		Version: h.version,
	})
}

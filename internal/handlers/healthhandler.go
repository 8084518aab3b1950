package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"jobportal/internal/database"
)

// HealthCheck is the GET / liveness endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Job Portal API is running"})
}

type DiagnosticsHandler struct {
	DB *database.Mongo
}

func NewDiagnosticsHandler(db *database.Mongo) *DiagnosticsHandler {
	return &DiagnosticsHandler{DB: db}
}

// Diagnostics is the GET /test endpoint. It reports storage configuration
// and connectivity state and never returns a non-200: every internal
// failure is rendered as a descriptive status string in the payload.
func (h *DiagnosticsHandler) Diagnostics(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.DB.Configured() {
		response["connection_status"] = "Connected"
		names, err := h.DB.Collections(c.Request.Context())
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// SubmitApplication is the POST /applications endpoint. The referenced job
// must exist: a missing job is a 404, a malformed job_id a 400, and in
// either case no application is written.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	id, err := h.ApplicationService.Submit(c.Request.Context(), req)
	if err != nil {
		storageError(c, err, "Job not found", "Invalid job id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListApplications is the GET /applications endpoint, optionally filtered
// to one job by exact job_id, default limit 100.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var query dtos.ApplicationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	apps, err := h.ApplicationService.List(c.Request.Context(), query)
	if err != nil {
		storageError(c, err, "Application not found", "Invalid application id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": apps})
}

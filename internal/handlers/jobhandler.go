package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// ListJobs is the GET /jobs endpoint: optional q/location/tag filters over
// active jobs, default limit 50.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dtos.JobSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	jobs, err := h.JobService.Search(c.Request.Context(), query)
	if err != nil {
		storageError(c, err, "Job not found", "Invalid job id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": jobs})
}

// CreateJob is the POST /jobs endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	id, err := h.JobService.Create(c.Request.Context(), req)
	if err != nil {
		storageError(c, err, "Job not found", "Invalid job id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetJob is the GET /jobs/:id endpoint: 404 for a well-formed but absent
// id, 400 for a malformed one.
func (h *JobHandler) GetJob(c *gin.Context) {
	doc, err := h.JobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "Job not found", "Invalid job id")
		return
	}
	c.JSON(http.StatusOK, doc)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(s *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: s}
}

// CreateCompany is the POST /companies endpoint.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	id, err := h.CompanyService.Create(c.Request.Context(), req)
	if err != nil {
		storageError(c, err, "Company not found", "Invalid company id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListCompanies is the GET /companies endpoint: no filter, default limit 100.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	companies, err := h.CompanyService.List(c.Request.Context(), limit)
	if err != nil {
		storageError(c, err, "Company not found", "Invalid company id")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": companies})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/services"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		CompanyService: companies,
	}
}

// Create is the POST /add_company endpoint
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.CompanyService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, company)
}

// List is the GET /get_companies endpoint
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.CompanyService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list companies: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Get is the GET /companies/:id endpoint
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	company, err := h.CompanyService.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// Update is the PUT /companies/:id endpoint (full replace)
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.CompanyService.Update(id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete is the DELETE /companies/:id endpoint
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.CompanyService.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete company: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"detail": "Company " + strconv.FormatUint(uint64(id), 10) + " deleted",
	})
}

// parseID reads the numeric :id path param, writing the 400 itself on
// malformed input.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

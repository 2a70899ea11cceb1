package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/services"
	"gorm.io/gorm"
)

type JobPostingHandler struct {
	PostingService     *services.JobPostingService
	DescriptionService *services.DescriptionService
}

func NewJobPostingHandler(postings *services.JobPostingService, descriptions *services.DescriptionService) *JobPostingHandler {
	return &JobPostingHandler{
		PostingService:     postings,
		DescriptionService: descriptions,
	}
}

// Create is the POST /job-postings endpoint. Enum values are rejected by
// binding before any row is written.
func (h *JobPostingHandler) Create(c *gin.Context) {
	var req dtos.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	posting, err := h.PostingService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job posting: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, posting)
}

// ListRaw is the GET /get_job_postings endpoint: a raw row dump, each row
// rendered as a string.
func (h *JobPostingHandler) ListRaw(c *gin.Context) {
	rows, err := h.PostingService.ListRaw()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list job postings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get is the GET /job-postings/:id endpoint
func (h *JobPostingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	posting, err := h.PostingService.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job posting: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Update is the PUT /job-postings/:id endpoint (full replace)
func (h *JobPostingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	posting, err := h.PostingService.Update(id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job posting: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, posting)
}

// Delete is the DELETE /job-postings/:id endpoint
func (h *JobPostingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.PostingService.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job posting: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"detail": "Job posting " + strconv.FormatUint(uint64(id), 10) + " deleted",
	})
}

// GenerateDescription is the POST /job-postings/:id/description endpoint.
// The body's stream flag selects between the synchronous mode, which
// persists the description, and the streaming mode, which does not.
func (h *JobPostingHandler) GenerateDescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid required_tools: " + err.Error()})
		return
	}

	if req.Stream {
		h.streamDescription(c, id, &req)
		return
	}

	resp, err := h.DescriptionService.Generate(c.Request.Context(), id, req.RequiredTools, req.Structured)
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobPostingHandler) streamDescription(c *gin.Context, id uint, req *dtos.GenerateDescriptionRequest) {
	wrote := false
	err := h.DescriptionService.GenerateStream(c.Request.Context(), id, req.RequiredTools, req.Structured, func(chunk []byte) error {
		if !wrote {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Status(http.StatusOK)
			wrote = true
		}
		if _, err := c.Writer.Write(chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if !wrote {
			writeGenerationError(c, err)
			return
		}
		// Headers already sent; the truncated body is all we can signal.
		log.Printf("Stream aborted for job posting %d: %v", id, err)
	}
}

func writeGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobPostingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
	case errors.Is(err, services.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Associated company not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Description generation failed: " + err.Error()})
	}
}

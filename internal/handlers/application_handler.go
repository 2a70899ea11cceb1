package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/services"
)

type ApplicationHandler struct {
	Store *services.ApplicationStore
}

func NewApplicationHandler(store *services.ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{
		Store: store,
	}
}

// Submit is the POST /applications endpoint. Duplicate candidate ids are
// accepted; the store keeps both.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.Store.Submit(models.Application{
		CandidateID: req.CandidateID,
		Name:        req.Name,
		Email:       req.Email,
		JobID:       req.JobID,
		CompanyName: req.CompanyName,
	})
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Application submitted for " + req.Name,
	})
}

// List is the GET /applications/ endpoint with conjunctive filters.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps := h.Store.List(c.Query("company_name"), c.Query("candidate_email"))
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "Applications fetched successfully",
		"applications": apps,
	})
}

// Get is the GET /applications/:candidate_id endpoint. It returns the
// first-submitted record for the id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	candidateID := c.Param("candidate_id")
	app, found := h.Store.Get(candidateID)
	if !found {
		writeApplicationNotFound(c, candidateID)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Replace is the PUT /applications/:candidate_id endpoint.
func (h *ApplicationHandler) Replace(c *gin.Context) {
	candidateID := c.Param("candidate_id")
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if !h.Store.Replace(candidateID, models.Application{
		Name:        req.Name,
		Email:       req.Email,
		JobID:       req.JobID,
		CompanyName: req.CompanyName,
	}) {
		writeApplicationNotFound(c, candidateID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Application for %s successfully updated", candidateID),
	})
}

// Patch is the PATCH /applications/:candidate_id endpoint; only email
// and job_id can be patched.
func (h *ApplicationHandler) Patch(c *gin.Context) {
	candidateID := c.Param("candidate_id")
	var req dtos.ApplicationPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	updated, found := h.Store.Patch(candidateID, req.Email, req.JobID)
	if !found {
		writeApplicationNotFound(c, candidateID)
		return
	}
	if len(updated) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "info",
			"message": "No fields were updated.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"message": fmt.Sprintf("Application for %s successfully updated. Updated fields: %s",
			candidateID, strings.Join(updated, ", ")),
	})
}

// Delete is the DELETE /applications/:candidate_id endpoint.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	candidateID := c.Param("candidate_id")
	if !h.Store.Delete(candidateID) {
		writeApplicationNotFound(c, candidateID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Application for %s successfully deleted", candidateID),
	})
}

func writeApplicationNotFound(c *gin.Context, candidateID string) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Application not found for candidate ID: " + candidateID,
	})
}

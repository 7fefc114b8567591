package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"heart-risk-service/internal/adapters/primary/http/dto"
	"heart-risk-service/internal/core/domain"
)

func (h *Handler) CreateAssessment(c *gin.Context) {
	var req dto.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := dto.FieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment input", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := h.assessmentSvc.Assess(c.Request.Context(), req.ToAssessmentInput())
	if err != nil {
		log.WithError(err).Error("create assessment failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssessmentResponse(assessment))
}

func (h *Handler) ListFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListFeaturesResponse(domain.Features()))
}

func (h *Handler) GetModel(c *gin.Context) {
	if !h.assessmentSvc.Ready() {
		mapDomainError(c, domain.ErrModelUnavailable)
		return
	}
	c.JSON(http.StatusOK, h.assessmentSvc.Model())
}

// Health reports whether a model provider is loaded.
func (h *Handler) Health(c *gin.Context) {
	if !h.assessmentSvc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": domain.ErrModelUnavailable.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": h.assessmentSvc.Model().Name})
}

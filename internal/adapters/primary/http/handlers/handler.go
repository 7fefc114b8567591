package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"heart-risk-service/internal/adapters/primary/http/dto"
	"heart-risk-service/internal/core/services"
)

type Handler struct {
	assessmentSvc *services.AssessmentService
}

var registerValidations sync.Once

func New(assessmentSvc *services.AssessmentService) *Handler {
	registerValidations.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn("gin validator engine is not go-playground/validator, feature bounds are not enforced at bind time")
			return
		}
		if err := dto.RegisterValidations(v); err != nil {
			log.WithError(err).Error("register feature validation failed")
		}
	})

	return &Handler{assessmentSvc: assessmentSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Assessments
	r.POST("/assessments", h.CreateAssessment)

	// Metadata
	r.GET("/features", h.ListFeatures)
	r.GET("/model", h.GetModel)
}

// RegisterPages mounts the HTML form. The router must have the templates
// from the web package installed.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.ShowForm)
	r.POST("/assess", h.SubmitForm)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"heart-risk-service/internal/adapters/primary/http/dto"
	"heart-risk-service/internal/adapters/primary/http/web"
	"heart-risk-service/internal/core/domain"
)

func (h *Handler) ShowForm(c *gin.Context) {
	page := web.NewPage(h.assessmentSvc.Model(), nil, nil)
	if !h.assessmentSvc.Ready() {
		page.FormError = "The prediction model is not available. Predictions are disabled."
	}
	c.HTML(http.StatusOK, web.PageTemplate, page)
}

func (h *Handler) SubmitForm(c *gin.Context) {
	model := h.assessmentSvc.Model()

	posted := postedValues(c)
	if blank := dto.BlankFields(posted); blank != nil {
		c.HTML(http.StatusBadRequest, web.PageTemplate, web.NewPage(model, posted, blank))
		return
	}

	var req dto.AssessmentRequest
	if err := c.ShouldBind(&req); err != nil {
		fields := dto.FieldErrors(err)
		page := web.NewPage(model, posted, fields)
		if fields == nil {
			page.FormError = "Every field needs a numeric value."
		}
		c.HTML(http.StatusBadRequest, web.PageTemplate, page)
		return
	}

	input := req.ToAssessmentInput()
	page := web.NewPage(model, web.InputValues(input), nil)

	assessment, err := h.assessmentSvc.Assess(c.Request.Context(), input)
	if err != nil {
		log.WithError(err).Error("form assessment failed")
		status, msg := errorStatus(err)
		page.FormError = "Error making prediction: " + msg
		c.HTML(status, web.PageTemplate, page)
		return
	}

	resp := dto.ToAssessmentResponse(assessment)
	page.Result = &resp
	c.HTML(http.StatusOK, web.PageTemplate, page)
}

func postedValues(c *gin.Context) map[string]string {
	values := make(map[string]string, domain.FeatureCount)
	for _, name := range domain.FeatureNames() {
		if v, ok := c.GetPostForm(name); ok {
			values[name] = v
		}
	}
	return values
}

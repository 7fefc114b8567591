package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"heart-risk-service/internal/core/domain"
	"heart-risk-service/internal/core/ports/output"
	"heart-risk-service/internal/metrics"
)

type AssessmentService struct {
	classifier ports.Classifier
	model      domain.ModelInfo
}

// NewAssessmentService wires a loaded classifier into the service. A nil
// classifier yields a service that refuses every assessment.
func NewAssessmentService(classifier ports.Classifier, model domain.ModelInfo) *AssessmentService {
	return &AssessmentService{classifier: classifier, model: model}
}

func (s *AssessmentService) Ready() bool {
	return s.classifier != nil
}

func (s *AssessmentService) Model() domain.ModelInfo {
	return s.model
}

// Assess scores one input. The input must already be range checked.
func (s *AssessmentService) Assess(ctx context.Context, input domain.AssessmentInput) (*domain.Assessment, error) {
	if s.classifier == nil {
		metrics.RecordFailure("model_unavailable")
		return nil, domain.ErrModelUnavailable
	}

	vector := domain.Assemble(input)

	start := time.Now()
	label, err := s.classifier.Predict(ctx, vector)
	if err != nil {
		metrics.RecordFailure(failureReason(err))
		return nil, fmt.Errorf("predict: %w", err)
	}
	proba, err := s.classifier.PredictProba(ctx, vector)
	if err != nil {
		metrics.RecordFailure(failureReason(err))
		return nil, fmt.Errorf("predict proba: %w", err)
	}
	metrics.ObserveInference(s.model.Kind, time.Since(start))

	if label < 0 || label >= len(proba) {
		metrics.RecordFailure("contract_violation")
		return nil, fmt.Errorf("%w: label %d has no probability in %v", domain.ErrContractViolation, label, proba)
	}

	verdict, err := domain.Interpret(label, proba[label])
	if err != nil {
		metrics.RecordFailure(failureReason(err))
		return nil, err
	}

	assessment := &domain.Assessment{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Input:     input,
		Vector:    vector,
		Verdict:   verdict,
		Model:     s.model,
	}

	metrics.RecordAssessment(string(verdict.Level))
	log.WithFields(log.Fields{
		"assessment_id": assessment.ID,
		"risk_level":    verdict.Level,
		"confidence":    verdict.Confidence,
		"model":         s.model.Name,
	}).Debug("assessment completed")

	return assessment, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrModelUnavailable):
		return "model_unavailable"
	case errors.Is(err, domain.ErrContractViolation):
		return "contract_violation"
	default:
		return "internal"
	}
}

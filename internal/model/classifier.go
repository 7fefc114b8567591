package model

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"heart-risk-service/internal/core/domain"
	"heart-risk-service/internal/core/ports/output"
)

type scorer interface {
	probabilities(x []float64) ([]float64, error)
}

// Classifier evaluates a decoded artifact in process.
type Classifier struct {
	scorer scorer
}

var _ ports.Classifier = (*Classifier)(nil)

// Build turns a parsed artifact into an immutable classifier.
func Build(a *Artifact) (*Classifier, error) {
	var (
		s   scorer
		err error
	)
	switch a.Kind {
	case KindLogisticRegression:
		s, err = newLogisticRegression(a.Logistic)
	case KindDecisionTree:
		s, err = newDecisionTree(a.Tree)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedModelKind, a.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrModelArtifact, a.Kind, err)
	}
	return &Classifier{scorer: s}, nil
}

// Load fetches, validates and builds the artifact behind src.
func Load(ctx context.Context, src ports.ArtifactSource) (*Classifier, domain.ModelInfo, error) {
	start := time.Now()

	payload, err := src.Fetch(ctx)
	if err != nil {
		return nil, domain.ModelInfo{}, fmt.Errorf("fetch model artifact from %s: %w", src.Describe(), err)
	}

	artifact, err := Parse(payload)
	if err != nil {
		return nil, domain.ModelInfo{}, fmt.Errorf("parse model artifact from %s: %w", src.Describe(), err)
	}

	clf, err := Build(artifact)
	if err != nil {
		return nil, domain.ModelInfo{}, err
	}

	info := artifact.Info(src.Describe())
	log.WithFields(log.Fields{
		"name":       info.Name,
		"version":    info.Version,
		"kind":       info.Kind,
		"source":     info.Source,
		"latency_ms": time.Since(start).Milliseconds(),
	}).Info("model artifact loaded")

	return clf, info, nil
}

func (c *Classifier) PredictProba(_ context.Context, vector domain.FeatureVector) ([]float64, error) {
	if len(vector) != domain.FeatureCount {
		return nil, fmt.Errorf("%w: vector has %d columns, model expects %d",
			domain.ErrContractViolation, len(vector), domain.FeatureCount)
	}
	return c.scorer.probabilities(vector)
}

func (c *Classifier) Predict(ctx context.Context, vector domain.FeatureVector) (int, error) {
	proba, err := c.PredictProba(ctx, vector)
	if err != nil {
		return 0, err
	}
	return argmax(proba), nil
}

// argmax returns the first index holding the maximum, so ties resolve to
// the lower label.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

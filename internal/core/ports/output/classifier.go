package ports

import (
	"context"

	"heart-risk-service/internal/core/domain"
)

// Classifier is a loaded binary model. Implementations are immutable after
// construction and safe for concurrent use.
type Classifier interface {
	// Predict returns the class label for the vector.
	Predict(ctx context.Context, vector domain.FeatureVector) (int, error)
	// PredictProba returns class probabilities indexed by label.
	PredictProba(ctx context.Context, vector domain.FeatureVector) ([]float64, error)
}

// ArtifactSource yields the raw bytes of a serialized model.
type ArtifactSource interface {
	Describe() string
	Fetch(ctx context.Context) ([]byte, error)
}

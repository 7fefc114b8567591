package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"heart-risk-service/internal/core/domain"
)

// MockClassifier is a mock of ports.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(ctx context.Context, vector domain.FeatureVector) (int, error) {
	args := m.Called(ctx, vector)
	return args.Int(0), args.Error(1)
}

func (m *MockClassifier) PredictProba(ctx context.Context, vector domain.FeatureVector) ([]float64, error) {
	args := m.Called(ctx, vector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

// MockArtifactSource is a mock of ports.ArtifactSource.
type MockArtifactSource struct {
	mock.Mock
}

func (m *MockArtifactSource) Describe() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockArtifactSource) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

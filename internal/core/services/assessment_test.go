package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heart-risk-service/internal/core/domain"
	"heart-risk-service/internal/testutil"
)

func sampleInput() domain.AssessmentInput {
	return domain.AssessmentInput{
		Age: 50, Sex: 1, ChestPain: 2, RestingBP: 120, RestingECG: 1, MaxHeartRate: 150,
		ExerciseAngina: 0, STDepression: 1.0, STSlope: 1, MajorVessels: 0, Thalassemia: 2,
	}
}

var sampleVector = domain.FeatureVector{50, 1, 2, 120, 1, 150, 0, 1.0, 1, 0, 2}

func TestAssessmentService_Assess_HighRisk(t *testing.T) {
	clf := new(testutil.MockClassifier)
	svc := NewAssessmentService(clf, domain.ModelInfo{Name: "heart", Kind: "logistic_regression"})

	clf.On("Predict", mock.Anything, sampleVector).Return(1, nil)
	clf.On("PredictProba", mock.Anything, sampleVector).Return([]float64{0.1729, 0.8271}, nil)

	a, err := svc.Assess(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, domain.RiskHigh, a.Verdict.Level)
	assert.Equal(t, "82.7%", a.Verdict.Confidence)
	assert.Equal(t, sampleVector, a.Vector)
	assert.Equal(t, "heart", a.Model.Name)
	assert.NotEmpty(t, a.ID)
	clf.AssertExpectations(t)
}

func TestAssessmentService_Assess_UsesScoreOfPredictedLabel(t *testing.T) {
	clf := new(testutil.MockClassifier)
	svc := NewAssessmentService(clf, domain.ModelInfo{})

	clf.On("Predict", mock.Anything, sampleVector).Return(0, nil)
	clf.On("PredictProba", mock.Anything, sampleVector).Return([]float64{0.9, 0.1}, nil)

	a, err := svc.Assess(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, domain.RiskLow, a.Verdict.Level)
	assert.Equal(t, "90.0%", a.Verdict.Confidence)
}

func TestAssessmentService_Assess_NoClassifier(t *testing.T) {
	svc := NewAssessmentService(nil, domain.ModelInfo{})

	a, err := svc.Assess(context.Background(), sampleInput())
	assert.Nil(t, a)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	assert.False(t, svc.Ready())
}

func TestAssessmentService_Assess_ProviderFailure(t *testing.T) {
	clf := new(testutil.MockClassifier)
	svc := NewAssessmentService(clf, domain.ModelInfo{})

	clf.On("Predict", mock.Anything, sampleVector).Return(0, domain.ErrModelUnavailable)

	a, err := svc.Assess(context.Background(), sampleInput())
	assert.Nil(t, a)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	clf.AssertNotCalled(t, "PredictProba", mock.Anything, mock.Anything)
}

func TestAssessmentService_Assess_ProbaFailure(t *testing.T) {
	clf := new(testutil.MockClassifier)
	svc := NewAssessmentService(clf, domain.ModelInfo{})

	boom := errors.New("boom")
	clf.On("Predict", mock.Anything, sampleVector).Return(1, nil)
	clf.On("PredictProba", mock.Anything, sampleVector).Return(nil, boom)

	_, err := svc.Assess(context.Background(), sampleInput())
	assert.ErrorIs(t, err, boom)
}

func TestAssessmentService_Assess_LabelWithoutProbability(t *testing.T) {
	clf := new(testutil.MockClassifier)
	svc := NewAssessmentService(clf, domain.ModelInfo{})

	clf.On("Predict", mock.Anything, sampleVector).Return(2, nil)
	clf.On("PredictProba", mock.Anything, sampleVector).Return([]float64{0.5, 0.5}, nil)

	_, err := svc.Assess(context.Background(), sampleInput())
	assert.ErrorIs(t, err, domain.ErrContractViolation)
}

func TestAssessmentService_Assess_ScoreOutOfRange(t *testing.T) {
	clf := new(testutil.MockClassifier)
	svc := NewAssessmentService(clf, domain.ModelInfo{})

	clf.On("Predict", mock.Anything, sampleVector).Return(1, nil)
	clf.On("PredictProba", mock.Anything, sampleVector).Return([]float64{-0.2, 1.2}, nil)

	_, err := svc.Assess(context.Background(), sampleInput())
	assert.ErrorIs(t, err, domain.ErrContractViolation)
}

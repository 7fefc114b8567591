package dto

import (
	"time"

	"github.com/google/uuid"

	"heart-risk-service/internal/core/domain"
)

// AssessmentRequest is bound from both the HTML form and the JSON API.
// Bounds come from the feature table through the "feature" validation tag.
type AssessmentRequest struct {
	Age            *int     `form:"age" json:"age" binding:"required,feature=age"`
	Sex            *int     `form:"sex" json:"sex" binding:"required,feature=sex"`
	ChestPain      *int     `form:"cp" json:"cp" binding:"required,feature=cp"`
	RestingBP      *int     `form:"trestbps" json:"trestbps" binding:"required,feature=trestbps"`
	RestingECG     *int     `form:"restecg" json:"restecg" binding:"required,feature=restecg"`
	MaxHeartRate   *int     `form:"thalach" json:"thalach" binding:"required,feature=thalach"`
	ExerciseAngina *int     `form:"exang" json:"exang" binding:"required,feature=exang"`
	STDepression   *float64 `form:"oldpeak" json:"oldpeak" binding:"required,feature=oldpeak"`
	STSlope        *int     `form:"slope" json:"slope" binding:"required,feature=slope"`
	MajorVessels   *int     `form:"ca" json:"ca" binding:"required,feature=ca"`
	Thalassemia    *int     `form:"thal" json:"thal" binding:"required,feature=thal"`
}

// ToAssessmentInput must only be called after a successful bind.
func (r *AssessmentRequest) ToAssessmentInput() domain.AssessmentInput {
	return domain.AssessmentInput{
		Age:            *r.Age,
		Sex:            *r.Sex,
		ChestPain:      *r.ChestPain,
		RestingBP:      *r.RestingBP,
		RestingECG:     *r.RestingECG,
		MaxHeartRate:   *r.MaxHeartRate,
		ExerciseAngina: *r.ExerciseAngina,
		STDepression:   *r.STDepression,
		STSlope:        *r.STSlope,
		MajorVessels:   *r.MajorVessels,
		Thalassemia:    *r.Thalassemia,
	}
}

type AssessmentResponse struct {
	ID         uuid.UUID           `json:"id"`
	CreatedAt  string              `json:"created_at"`
	RiskLevel  string              `json:"risk_level"`
	Label      int                 `json:"label"`
	Score      float64             `json:"score"`
	Confidence string              `json:"confidence"`
	Headline   string              `json:"headline"`
	Advice     string              `json:"advice"`
	Disclaimer string              `json:"disclaimer"`
	Vector     []float64           `json:"vector"`
	Summary    []domain.SummaryRow `json:"summary"`
	Model      domain.ModelInfo    `json:"model"`
}

func ToAssessmentResponse(a *domain.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		RiskLevel:  string(a.Verdict.Level),
		Label:      a.Verdict.Label,
		Score:      a.Verdict.Score,
		Confidence: a.Verdict.Confidence,
		Headline:   a.Verdict.Headline(),
		Advice:     a.Verdict.Advice(),
		Disclaimer: domain.Disclaimer,
		Vector:     a.Vector,
		Summary:    a.Summary(),
		Model:      a.Model,
	}
}

type FeatureResponse struct {
	Position int `json:"position"`
	domain.Feature
}

type ListFeaturesResponse struct {
	Items []FeatureResponse `json:"items"`
	Total int               `json:"total"`
}

func ToListFeaturesResponse(features []domain.Feature) ListFeaturesResponse {
	items := make([]FeatureResponse, 0, len(features))
	for i, f := range features {
		items = append(items, FeatureResponse{Position: i, Feature: f})
	}
	return ListFeaturesResponse{Items: items, Total: len(items)}
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AssessmentInput is one submitted clinical record. Field declaration order
// carries no meaning; vector positions come from the feature table.
type AssessmentInput struct {
	Age            int     `json:"age"`
	Sex            int     `json:"sex"`
	ChestPain      int     `json:"cp"`
	RestingBP      int     `json:"trestbps"`
	RestingECG     int     `json:"restecg"`
	MaxHeartRate   int     `json:"thalach"`
	ExerciseAngina int     `json:"exang"`
	STDepression   float64 `json:"oldpeak"`
	STSlope        int     `json:"slope"`
	MajorVessels   int     `json:"ca"`
	Thalassemia    int     `json:"thal"`
}

// DefaultAssessmentInput returns the record prefilled with the form defaults.
func DefaultAssessmentInput() AssessmentInput {
	return AssessmentInput{
		Age:          int(featureTable[0].Default),
		RestingBP:    int(featureTable[3].Default),
		MaxHeartRate: int(featureTable[5].Default),
		STDepression: featureTable[7].Default,
	}
}

// Validate checks every field against its column range. Input layers call
// it; Assemble never does.
func (in AssessmentInput) Validate() error {
	var errs []error
	for _, f := range featureTable {
		if err := f.Check(f.Value(in)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type FeatureVector []float64

// Assemble maps the record onto the model's column order.
func Assemble(in AssessmentInput) FeatureVector {
	vector := make(FeatureVector, FeatureCount)
	for i, f := range featureTable {
		vector[i] = f.Value(in)
	}
	return vector
}

type SummaryRow struct {
	Feature string `json:"feature"`
	Value   string `json:"value"`
}

// Summarize builds the echo table shown back to the user.
func Summarize(in AssessmentInput) []SummaryRow {
	rows := make([]SummaryRow, 0, FeatureCount)
	for _, f := range featureTable {
		rows = append(rows, SummaryRow{Feature: f.Summary, Value: f.Echo(f.Value(in))})
	}
	return rows
}

type Assessment struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Input     AssessmentInput
	Vector    FeatureVector
	Verdict   Verdict
	Model     ModelInfo
}

func (a *Assessment) Summary() []SummaryRow {
	return Summarize(a.Input)
}

// ModelInfo describes the loaded model provider.
type ModelInfo struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Kind     string   `json:"kind"`
	Source   string   `json:"source"`
	Features []string `json:"features"`
}

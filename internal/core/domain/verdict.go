package domain

import (
	"fmt"
	"math"
)

type RiskLevel string

const (
	RiskLow  RiskLevel = "low"
	RiskHigh RiskLevel = "high"
)

const (
	LabelNoDisease = 0
	LabelDisease   = 1
)

const Disclaimer = "This prediction is for informational purposes only and should not replace professional medical advice."

type Verdict struct {
	Level      RiskLevel
	Label      int
	Score      float64
	Confidence string
}

// Interpret maps a model label and the score of that label to a Verdict.
func Interpret(label int, score float64) (Verdict, error) {
	if math.IsNaN(score) || score < 0 || score > 1 {
		return Verdict{}, fmt.Errorf("%w: score %v outside [0,1]", ErrContractViolation, score)
	}

	var level RiskLevel
	switch label {
	case LabelNoDisease:
		level = RiskLow
	case LabelDisease:
		level = RiskHigh
	default:
		return Verdict{}, fmt.Errorf("%w: unknown label %d", ErrContractViolation, label)
	}

	return Verdict{
		Level:      level,
		Label:      label,
		Score:      score,
		Confidence: FormatConfidence(score),
	}, nil
}

// FormatConfidence renders a [0,1] score as a percentage with one decimal.
func FormatConfidence(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

func (v Verdict) Headline() string {
	if v.Level == RiskHigh {
		return "High Risk - Heart Disease Detected"
	}
	return "Low Risk - No Heart Disease Detected"
}

func (v Verdict) Advice() string {
	if v.Level == RiskHigh {
		return "The patient shows high risk indicators for heart disease. Please consult a cardiologist."
	}
	return "The patient shows low risk indicators for heart disease."
}

package model

import (
	"errors"
	"fmt"
	"math"

	"heart-risk-service/internal/core/domain"
)

type LogisticParams struct {
	Coefficients []float64     `json:"coefficients"`
	Intercept    float64       `json:"intercept"`
	Scaler       *ScalerParams `json:"scaler,omitempty"`
}

// ScalerParams standardizes each column as (x - mean) / scale before the
// linear term.
type ScalerParams struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type logisticRegression struct {
	coefficients []float64
	intercept    float64
	mean         []float64
	scale        []float64
}

func newLogisticRegression(p *LogisticParams) (*logisticRegression, error) {
	if p == nil {
		return nil, errors.New("missing logistic parameters")
	}
	if len(p.Coefficients) != domain.FeatureCount {
		return nil, fmt.Errorf("%d coefficients, want %d", len(p.Coefficients), domain.FeatureCount)
	}

	m := &logisticRegression{
		coefficients: append([]float64(nil), p.Coefficients...),
		intercept:    p.Intercept,
	}
	if p.Scaler != nil {
		if len(p.Scaler.Mean) != domain.FeatureCount || len(p.Scaler.Scale) != domain.FeatureCount {
			return nil, fmt.Errorf("scaler needs %d means and scales", domain.FeatureCount)
		}
		for i, s := range p.Scaler.Scale {
			if s == 0 {
				return nil, fmt.Errorf("scaler scale for column %d is zero", i)
			}
		}
		m.mean = append([]float64(nil), p.Scaler.Mean...)
		m.scale = append([]float64(nil), p.Scaler.Scale...)
	}
	return m, nil
}

func (m *logisticRegression) probabilities(x []float64) ([]float64, error) {
	z := m.intercept
	for i, v := range x {
		if m.scale != nil {
			v = (v - m.mean[i]) / m.scale[i]
		}
		z += m.coefficients[i] * v
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_LabelDecidesLevel(t *testing.T) {
	for _, score := range []float64{0, 0.01, 0.5, 0.8271, 1} {
		low, err := Interpret(0, score)
		require.NoError(t, err)
		assert.Equal(t, RiskLow, low.Level, "score=%v", score)

		high, err := Interpret(1, score)
		require.NoError(t, err)
		assert.Equal(t, RiskHigh, high.Level, "score=%v", score)
	}
}

func TestInterpret_Confidence(t *testing.T) {
	v, err := Interpret(1, 0.8271)
	require.NoError(t, err)

	assert.Equal(t, "82.7%", v.Confidence)
	assert.Equal(t, 0.8271, v.Score)
	assert.Equal(t, "High Risk - Heart Disease Detected", v.Headline())
	assert.Contains(t, v.Advice(), "consult a cardiologist")
}

func TestInterpret_LowRiskText(t *testing.T) {
	v, err := Interpret(0, 1)
	require.NoError(t, err)

	assert.Equal(t, "100.0%", v.Confidence)
	assert.Equal(t, "Low Risk - No Heart Disease Detected", v.Headline())
}

func TestInterpret_ContractViolation(t *testing.T) {
	_, err := Interpret(2, 0.5)
	assert.ErrorIs(t, err, ErrContractViolation)

	_, err = Interpret(0, 1.5)
	assert.ErrorIs(t, err, ErrContractViolation)

	_, err = Interpret(1, -0.1)
	assert.ErrorIs(t, err, ErrContractViolation)
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "0.0%", FormatConfidence(0))
	assert.Equal(t, "50.0%", FormatConfidence(0.5))
	assert.Equal(t, "99.9%", FormatConfidence(0.999))
}

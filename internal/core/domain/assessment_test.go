package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() AssessmentInput {
	return AssessmentInput{
		Age:            50,
		Sex:            1,
		ChestPain:      2,
		RestingBP:      120,
		RestingECG:     1,
		MaxHeartRate:   150,
		ExerciseAngina: 0,
		STDepression:   1.0,
		STSlope:        1,
		MajorVessels:   0,
		Thalassemia:    2,
	}
}

func TestFeatureNames_Order(t *testing.T) {
	assert.Equal(t, []string{
		"age", "sex", "cp", "trestbps", "restecg", "thalach",
		"exang", "oldpeak", "slope", "ca", "thal",
	}, FeatureNames())
}

func TestAssemble_ColumnOrder(t *testing.T) {
	vector := Assemble(sampleInput())

	require.Len(t, vector, FeatureCount)
	assert.Equal(t, FeatureVector{50, 1, 2, 120, 1, 150, 0, 1.0, 1, 0, 2}, vector)
}

func TestAssemble_EachFieldLandsInItsColumn(t *testing.T) {
	in := AssessmentInput{
		Age: 1, Sex: 2, ChestPain: 3, RestingBP: 4, RestingECG: 5, MaxHeartRate: 6,
		ExerciseAngina: 7, STDepression: 8.5, STSlope: 9, MajorVessels: 10, Thalassemia: 11,
	}

	assert.Equal(t, FeatureVector{1, 2, 3, 4, 5, 6, 7, 8.5, 9, 10, 11}, Assemble(in))
}

func TestAssemble_Deterministic(t *testing.T) {
	in := sampleInput()
	first := Assemble(in)
	second := Assemble(in)

	assert.Equal(t, first, second)

	first[0] = 99
	assert.Equal(t, float64(50), Assemble(in)[0])
}

func TestValidate_AgeBoundaries(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{age: 0, wantErr: true},
		{age: 1},
		{age: 120},
		{age: 121, wantErr: true},
	}

	for _, tt := range tests {
		in := sampleInput()
		in.Age = tt.age
		err := in.Validate()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrFieldOutOfRange, "age=%d", tt.age)
		} else {
			assert.NoError(t, err, "age=%d", tt.age)
		}
	}
}

func TestValidate_CategoricalAndFloat(t *testing.T) {
	in := sampleInput()
	in.MajorVessels = 5
	assert.ErrorIs(t, in.Validate(), ErrFieldOutOfRange)

	in = sampleInput()
	in.STDepression = 10.1
	assert.ErrorIs(t, in.Validate(), ErrFieldOutOfRange)

	in = sampleInput()
	in.STDepression = 0
	assert.NoError(t, in.Validate())
}

func TestValidate_ReportsEveryField(t *testing.T) {
	in := sampleInput()
	in.Age = 0
	in.RestingBP = 300

	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age must be between 1 and 120")
	assert.Contains(t, err.Error(), "trestbps must be between 80 and 200")
}

func TestDefaultAssessmentInput_IsValid(t *testing.T) {
	in := DefaultAssessmentInput()

	assert.NoError(t, in.Validate())
	assert.Equal(t, FeatureVector{50, 0, 0, 120, 0, 150, 0, 1.0, 0, 0, 0}, Assemble(in))
}

func TestSummarize(t *testing.T) {
	rows := Summarize(sampleInput())

	require.Len(t, rows, FeatureCount)
	assert.Equal(t, SummaryRow{Feature: "Age", Value: "50"}, rows[0])
	assert.Equal(t, SummaryRow{Feature: "Sex", Value: "Male"}, rows[1])
	assert.Equal(t, SummaryRow{Feature: "Exercise Angina", Value: "0"}, rows[6])
	assert.Equal(t, SummaryRow{Feature: "ST Depression", Value: "1.0"}, rows[7])
	assert.Equal(t, SummaryRow{Feature: "Thalassemia", Value: "2"}, rows[10])
}

func TestLookupFeature(t *testing.T) {
	f, ok := LookupFeature("thalach")
	require.True(t, ok)
	assert.Equal(t, float64(60), f.Min)
	assert.Equal(t, float64(220), f.Max)

	_, ok = LookupFeature("chol")
	assert.False(t, ok)
}

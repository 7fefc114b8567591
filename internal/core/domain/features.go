package domain

import (
	"fmt"
	"math"
	"strconv"
)

type FeatureKind string

const (
	FeatureInteger     FeatureKind = "integer"
	FeatureFloat       FeatureKind = "float"
	FeatureCategorical FeatureKind = "categorical"
)

// Form groups, in display order.
const (
	GroupBasic    = "Basic Information"
	GroupClinical = "Clinical Measurements"
	GroupTests    = "Additional Tests"
)

// FeatureCount is the length of every FeatureVector.
const FeatureCount = 11

type Option struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

// Feature is one row of the authoritative column table. Its position in
// the table is its position in the FeatureVector.
type Feature struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Summary string      `json:"summary"`
	Group   string      `json:"group"`
	Kind    FeatureKind `json:"kind"`
	Min     float64     `json:"min"`
	Max     float64     `json:"max"`
	Step    float64     `json:"step"`
	Default float64     `json:"default"`
	Unit    string      `json:"unit,omitempty"`
	Help    string      `json:"help"`
	Options []Option    `json:"options,omitempty"`

	// EchoOption renders the option label instead of the raw code in the
	// input summary.
	EchoOption bool `json:"-"`

	value func(AssessmentInput) float64
}

var featureTable = [FeatureCount]Feature{
	{
		Name: "age", Label: "Age", Summary: "Age", Group: GroupBasic,
		Kind: FeatureInteger, Min: 1, Max: 120, Step: 1, Default: 50, Unit: "years",
		Help:  "Patient's age in years",
		value: func(in AssessmentInput) float64 { return float64(in.Age) },
	},
	{
		Name: "sex", Label: "Sex", Summary: "Sex", Group: GroupBasic,
		Kind: FeatureCategorical, Min: 0, Max: 1, Step: 1, Default: 0,
		Help:       "0: Female, 1: Male",
		Options:    []Option{{0, "Female"}, {1, "Male"}},
		EchoOption: true,
		value:      func(in AssessmentInput) float64 { return float64(in.Sex) },
	},
	{
		Name: "cp", Label: "Chest Pain Type (cp)", Summary: "Chest Pain Type", Group: GroupBasic,
		Kind: FeatureCategorical, Min: 0, Max: 3, Step: 1, Default: 0,
		Help:    "0: Typical angina, 1: Atypical angina, 2: Non-anginal pain, 3: Asymptomatic",
		Options: []Option{{0, "Typical angina"}, {1, "Atypical angina"}, {2, "Non-anginal pain"}, {3, "Asymptomatic"}},
		value:   func(in AssessmentInput) float64 { return float64(in.ChestPain) },
	},
	{
		Name: "trestbps", Label: "Resting Blood Pressure (trestbps)", Summary: "Resting BP", Group: GroupBasic,
		Kind: FeatureInteger, Min: 80, Max: 200, Step: 1, Default: 120, Unit: "mm Hg",
		Help:  "Resting blood pressure in mm Hg",
		value: func(in AssessmentInput) float64 { return float64(in.RestingBP) },
	},
	{
		Name: "restecg", Label: "Resting ECG (restecg)", Summary: "Resting ECG", Group: GroupTests,
		Kind: FeatureCategorical, Min: 0, Max: 2, Step: 1, Default: 0,
		Help:    "0: Normal, 1: ST-T wave abnormality, 2: Left ventricular hypertrophy",
		Options: []Option{{0, "Normal"}, {1, "ST-T wave abnormality"}, {2, "Left ventricular hypertrophy"}},
		value:   func(in AssessmentInput) float64 { return float64(in.RestingECG) },
	},
	{
		Name: "thalach", Label: "Max Heart Rate (thalach)", Summary: "Max Heart Rate", Group: GroupClinical,
		Kind: FeatureInteger, Min: 60, Max: 220, Step: 1, Default: 150, Unit: "bpm",
		Help:  "Maximum heart rate achieved",
		value: func(in AssessmentInput) float64 { return float64(in.MaxHeartRate) },
	},
	{
		Name: "exang", Label: "Exercise Induced Angina (exang)", Summary: "Exercise Angina", Group: GroupTests,
		Kind: FeatureCategorical, Min: 0, Max: 1, Step: 1, Default: 0,
		Help:    "Exercise induced angina (0: No, 1: Yes)",
		Options: []Option{{0, "No"}, {1, "Yes"}},
		value:   func(in AssessmentInput) float64 { return float64(in.ExerciseAngina) },
	},
	{
		Name: "oldpeak", Label: "ST Depression (oldpeak)", Summary: "ST Depression", Group: GroupClinical,
		Kind: FeatureFloat, Min: 0, Max: 10, Step: 0.1, Default: 1.0,
		Help:  "ST depression induced by exercise relative to rest",
		value: func(in AssessmentInput) float64 { return in.STDepression },
	},
	{
		Name: "slope", Label: "ST Slope (slope)", Summary: "ST Slope", Group: GroupClinical,
		Kind: FeatureCategorical, Min: 0, Max: 2, Step: 1, Default: 0,
		Help:    "0: Upsloping, 1: Flat, 2: Downsloping",
		Options: []Option{{0, "Upsloping"}, {1, "Flat"}, {2, "Downsloping"}},
		value:   func(in AssessmentInput) float64 { return float64(in.STSlope) },
	},
	{
		Name: "ca", Label: "Number of Major Vessels (ca)", Summary: "Major Vessels (ca)", Group: GroupClinical,
		Kind: FeatureCategorical, Min: 0, Max: 4, Step: 1, Default: 0,
		Help:    "Number of major vessels colored by fluoroscopy",
		Options: []Option{{0, "0"}, {1, "1"}, {2, "2"}, {3, "3"}, {4, "4"}},
		value:   func(in AssessmentInput) float64 { return float64(in.MajorVessels) },
	},
	{
		Name: "thal", Label: "Thalassemia (thal)", Summary: "Thalassemia", Group: GroupTests,
		Kind: FeatureCategorical, Min: 0, Max: 3, Step: 1, Default: 0,
		Help:    "0: Normal, 1: Fixed defect, 2: Reversible defect, 3: Unknown",
		Options: []Option{{0, "Normal"}, {1, "Fixed defect"}, {2, "Reversible defect"}, {3, "Unknown"}},
		value:   func(in AssessmentInput) float64 { return float64(in.Thalassemia) },
	},
}

// Features returns the column table in vector order.
func Features() []Feature {
	out := make([]Feature, FeatureCount)
	copy(out, featureTable[:])
	return out
}

// FeatureNames returns the column names in vector order.
func FeatureNames() []string {
	names := make([]string, FeatureCount)
	for i, f := range featureTable {
		names[i] = f.Name
	}
	return names
}

// LookupFeature finds a column by name.
func LookupFeature(name string) (Feature, bool) {
	for _, f := range featureTable {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Value extracts this column from an input record.
func (f Feature) Value(in AssessmentInput) float64 {
	return f.value(in)
}

// Check reports whether v is an acceptable value for the column.
func (f Feature) Check(v float64) error {
	if math.IsNaN(v) || v < f.Min || v > f.Max {
		return fmt.Errorf("%w: %s must be between %s and %s", ErrFieldOutOfRange, f.Name, FormatNumber(f.Min), FormatNumber(f.Max))
	}
	if f.Kind != FeatureFloat && v != math.Trunc(v) {
		return fmt.Errorf("%w: %s must be a whole number", ErrFieldOutOfRange, f.Name)
	}
	if len(f.Options) > 0 {
		for _, o := range f.Options {
			if float64(o.Code) == v {
				return nil
			}
		}
		return fmt.Errorf("%w: %s has no option %s", ErrFieldOutOfRange, f.Name, FormatNumber(v))
	}
	return nil
}

// Echo formats v the way the input summary shows it.
func (f Feature) Echo(v float64) string {
	if f.EchoOption {
		for _, o := range f.Options {
			if float64(o.Code) == v {
				return o.Label
			}
		}
	}
	if f.Kind == FeatureFloat {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return FormatNumber(v)
}

func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Package model decodes serialized classifier artifacts and evaluates them.
//
// An artifact is a JSON document validated against schema.json. It declares
// the column order it was trained on; decoding fails unless that order is
// exactly the assessment feature table, so a model trained on a different
// encoding can never be fed a mismatched vector.
package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"heart-risk-service/internal/core/domain"
)

type Kind string

const (
	KindLogisticRegression Kind = "logistic_regression"
	KindDecisionTree       Kind = "decision_tree"
)

type Artifact struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Kind         Kind            `json:"kind"`
	FeatureNames []string        `json:"feature_names"`
	Classes      []int           `json:"classes"`
	Logistic     *LogisticParams `json:"logistic,omitempty"`
	Tree         *TreeParams     `json:"tree,omitempty"`
}

//go:embed schema.json
var schemaJSON []byte

var artifactSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Parse validates and decodes an artifact document.
func Parse(payload []byte) (*Artifact, error) {
	schema, err := artifactSchema()
	if err != nil {
		return nil, fmt.Errorf("compile artifact schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelArtifact, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrModelArtifact, strings.Join(errs, "; "))
	}

	var a Artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrModelArtifact, err)
	}

	if want := domain.FeatureNames(); !slices.Equal(a.FeatureNames, want) {
		return nil, fmt.Errorf("%w: %w: artifact has %v, want %v",
			domain.ErrModelArtifact, domain.ErrFeatureOrderMismatch, a.FeatureNames, want)
	}
	if !slices.Equal(a.Classes, []int{domain.LabelNoDisease, domain.LabelDisease}) {
		return nil, fmt.Errorf("%w: classes must be [0 1], got %v", domain.ErrModelArtifact, a.Classes)
	}

	return &a, nil
}

// Info describes the artifact for logs and the model endpoint.
func (a *Artifact) Info(source string) domain.ModelInfo {
	return domain.ModelInfo{
		Name:     a.Name,
		Version:  a.Version,
		Kind:     string(a.Kind),
		Source:   source,
		Features: slices.Clone(a.FeatureNames),
	}
}

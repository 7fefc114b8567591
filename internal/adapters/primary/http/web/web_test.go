package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heart-risk-service/internal/core/domain"
)

func TestNewPage_Defaults(t *testing.T) {
	p := NewPage(domain.ModelInfo{}, nil, nil)

	require.Len(t, p.Groups, 3)
	assert.Equal(t, domain.GroupBasic, p.Groups[0].Title)

	var names []string
	total := 0
	for _, g := range p.Groups {
		total += len(g.Fields)
		for _, f := range g.Fields {
			names = append(names, f.Name)
		}
	}
	assert.Equal(t, domain.FeatureCount, total)
	assert.ElementsMatch(t, domain.FeatureNames(), names)

	age := p.Groups[0].Fields[0]
	assert.Equal(t, "age", age.Name)
	assert.Equal(t, "50", age.Value)

	oldpeak := p.Groups[1].Fields[1]
	assert.Equal(t, "oldpeak", oldpeak.Name)
	assert.Equal(t, "1.0", oldpeak.Value)

	sex := p.Groups[0].Fields[1]
	require.Len(t, sex.Choices, 2)
	assert.True(t, sex.Choices[0].Selected)
	assert.False(t, sex.Choices[1].Selected)
}

func TestNewPage_ValuesAndErrors(t *testing.T) {
	values := InputValues(domain.AssessmentInput{Age: 63, Sex: 1, STDepression: 2.3})
	values["age"] = "0"

	p := NewPage(domain.ModelInfo{}, values, map[string]string{"age": "Age must be between 1 and 120"})

	age := p.Groups[0].Fields[0]
	assert.Equal(t, "0", age.Value)
	assert.Equal(t, "Age must be between 1 and 120", age.Error)
	assert.True(t, p.Groups[0].Fields[1].Choices[1].Selected)
	assert.Equal(t, "2.3", p.Groups[1].Fields[1].Value)
}

func TestLoad_Renders(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	page := NewPage(domain.ModelInfo{Name: "heart-disease-predictor", Kind: "logistic_regression"}, nil, nil)
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, page))

	html := buf.String()
	assert.Contains(t, html, "Basic Information")
	assert.Contains(t, html, "Clinical Measurements")
	assert.Contains(t, html, "Additional Tests")
	assert.Contains(t, html, `name="oldpeak"`)
	assert.Contains(t, html, "UCI Heart Disease")
	assert.NotContains(t, html, "Input Summary")
}

// Package web holds the HTML templates and view models of the assessment page.
package web

import (
	"embed"
	"html/template"
	"strconv"

	"heart-risk-service/internal/adapters/primary/http/dto"
	"heart-risk-service/internal/core/domain"
)

const PageTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

func Load() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*.html")
}

type Page struct {
	Groups     []Group
	FormError  string
	Result     *dto.AssessmentResponse
	Model      domain.ModelInfo
	Features   []domain.Feature
	Disclaimer string
}

type Group struct {
	Title  string
	Fields []Field
}

type Field struct {
	domain.Feature
	Value   string
	Error   string
	Choices []Choice
}

type Choice struct {
	Code     int
	Label    string
	Selected bool
}

// NewPage lays the form out in the group order of the page. Missing values
// fall back to the feature defaults.
func NewPage(model domain.ModelInfo, values, errs map[string]string) *Page {
	p := &Page{
		Model:      model,
		Features:   domain.Features(),
		Disclaimer: domain.Disclaimer,
	}

	for _, title := range []string{domain.GroupBasic, domain.GroupClinical, domain.GroupTests} {
		p.Groups = append(p.Groups, Group{Title: title, Fields: fieldsIn(title, values, errs)})
	}
	return p
}

// InputValues renders a bound input back into form values.
func InputValues(in domain.AssessmentInput) map[string]string {
	values := make(map[string]string, domain.FeatureCount)
	for _, f := range domain.Features() {
		values[f.Name] = formValue(f, f.Value(in))
	}
	return values
}

func fieldsIn(group string, values, errs map[string]string) []Field {
	var out []Field
	for _, name := range groupOrder[group] {
		f, _ := domain.LookupFeature(name)

		value, ok := values[name]
		if !ok {
			value = formValue(f, f.Default)
		}

		field := Field{Feature: f, Value: value, Error: errs[name]}
		for _, o := range f.Options {
			field.Choices = append(field.Choices, Choice{
				Code:     o.Code,
				Label:    o.Label,
				Selected: strconv.Itoa(o.Code) == value,
			})
		}
		out = append(out, field)
	}
	return out
}

// Display order differs from vector order.
var groupOrder = map[string][]string{
	domain.GroupBasic:    {"age", "sex", "cp", "trestbps"},
	domain.GroupClinical: {"thalach", "oldpeak", "slope", "ca"},
	domain.GroupTests:    {"exang", "restecg", "thal"},
}

func formValue(f domain.Feature, v float64) string {
	if f.Kind == domain.FeatureFloat {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return domain.FormatNumber(v)
}

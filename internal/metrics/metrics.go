package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartrisk_assessments_total",
			Help: "Total number of completed risk assessments",
		},
		[]string{"risk_level"},
	)

	AssessmentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartrisk_assessment_failures_total",
			Help: "Total number of assessments that produced no verdict",
		},
		[]string{"reason"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "heartrisk_model_inference_duration_seconds",
			Help:    "Duration of model provider calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"kind"},
	)

	ModelInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "heartrisk_model_info",
			Help: "Loaded model provider, value is always 1",
		},
		[]string{"name", "version", "kind", "source"},
	)
)

func RecordAssessment(level string) {
	AssessmentsTotal.WithLabelValues(level).Inc()
}

func RecordFailure(reason string) {
	AssessmentFailures.WithLabelValues(reason).Inc()
}

func ObserveInference(kind string, d time.Duration) {
	InferenceDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func SetModelInfo(name, version, kind, source string) {
	ModelInfo.Reset()
	ModelInfo.WithLabelValues(name, version, kind, source).Set(1)
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StageAssembly  = "assembly"
	StageInference = "inference"
	StagePanic     = "panic"
)

var (
	PredictionsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "churn_api",
			Name:      "predictions_total",
			Help:      "Churn predictions returned, by decision",
		},
		[]string{"result"},
	)

	// PredictionFailures counts predictions answered with the degraded default.
	PredictionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "churn_api",
			Name:      "prediction_failures_total",
			Help:      "Predictions that failed and were answered with the default result, by stage",
		},
		[]string{"stage"},
	)

	InferenceLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "churn_api",
			Name:      "inference_duration_seconds",
			Help:      "Time spent assembling the row and scoring it",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	ChurnProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "churn_api",
			Name:      "churn_probability",
			Help:      "Distribution of successfully predicted churn probabilities",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 9),
		},
	)
)

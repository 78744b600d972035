package views

import "github.com/nimeshabuddhika/churn-prediction-api/pkg"

// PredictionResult is the response of POST /predict/churn.
type PredictionResult struct {
	Probability float64 `json:"probability" example:"0.7109"`
	Result      int     `json:"result" example:"1"`
}

// NewPredictionResult derives the binary decision from probability; it is the only
// way the service builds a result.
func NewPredictionResult(probability float64) PredictionResult {
	result := 0
	if probability >= pkg.ChurnThreshold {
		result = 1
	}
	return PredictionResult{Probability: probability, Result: result}
}

// DegradedResult is returned when a prediction could not be computed.
func DegradedResult() PredictionResult {
	return NewPredictionResult(0)
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to the Customer Churn Prediction API"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Model   string `json:"model" example:"best_GB_model"`
	Version string `json:"version" example:"2024.11.1"`
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/mlmodel"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/observability"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/views"
	"go.uber.org/zap"
)

type PredictionService interface {
	// Predict never fails: any error is logged, counted and answered with views.DegradedResult.
	Predict(ctx context.Context, traceID string, record views.CustomerRecord) views.PredictionResult
}

type PredictionServiceImpl struct {
	logger *zap.Logger
	model  mlmodel.Classifier
}

func NewPredictionService(logger *zap.Logger, model mlmodel.Classifier) PredictionService {
	return &PredictionServiceImpl{
		logger: logger,
		model:  model,
	}
}

func (s *PredictionServiceImpl) Predict(ctx context.Context, traceID string, record views.CustomerRecord) (result views.PredictionResult) {
	start := time.Now()
	defer func() {
		observability.InferenceLatency.Observe(time.Since(start).Seconds())
	}()
	defer func() {
		if r := recover(); r != nil {
			s.fail(traceID, observability.StagePanic, fmt.Errorf("panic during prediction: %v", r))
			result = views.DegradedResult()
		}
	}()

	probability, err := s.model.PredictProba(AssembleRow(record))
	if err != nil {
		s.fail(traceID, failureStage(err), err)
		return views.DegradedResult()
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		s.fail(traceID, observability.StageInference, fmt.Errorf("%w: %v", mlmodel.ErrBadProbability, probability))
		return views.DegradedResult()
	}

	result = views.NewPredictionResult(probability)
	observability.PredictionsServed.WithLabelValues(fmt.Sprint(result.Result)).Inc()
	observability.ChurnProbability.Observe(probability)
	s.logger.Debug("churn predicted",
		zap.String(pkg.TraceId, traceID),
		zap.Float64("probability", result.Probability),
		zap.Int("result", result.Result),
	)
	return result
}

// fail records a prediction that will be answered with the degraded default.
func (s *PredictionServiceImpl) fail(traceID, stage string, err error) {
	observability.PredictionFailures.WithLabelValues(stage).Inc()
	s.logger.Error("churn prediction failed; returning default result",
		zap.String(pkg.TraceId, traceID),
		zap.String("stage", stage),
		zap.Error(err),
	)
}

func failureStage(err error) string {
	var rowErr *mlmodel.RowError
	if errors.As(err, &rowErr) {
		return observability.StageAssembly
	}
	return observability.StageInference
}

// Columns is the feature order of the training set.
var Columns = []string{
	"gender", "SeniorCitizen", "Partner", "Dependents", "tenure",
	"PhoneService", "MultipleLines", "InternetService", "OnlineSecurity",
	"OnlineBackup", "DeviceProtection", "TechSupport", "StreamingTV",
	"StreamingMovies", "Contract", "PaperlessBilling", "PaymentMethod",
	"MonthlyCharges", "TotalCharges",
}

// AssembleRow lays a customer record out as the single tabular row the model was trained on.
func AssembleRow(record views.CustomerRecord) mlmodel.Row {
	return mlmodel.Row{
		{Name: "gender", Value: record.Gender},
		{Name: "SeniorCitizen", Value: record.SeniorCitizen},
		{Name: "Partner", Value: record.Partner},
		{Name: "Dependents", Value: record.Dependents},
		{Name: "tenure", Value: record.Tenure},
		{Name: "PhoneService", Value: record.PhoneService},
		{Name: "MultipleLines", Value: record.MultipleLines},
		{Name: "InternetService", Value: record.InternetService},
		{Name: "OnlineSecurity", Value: record.OnlineSecurity},
		{Name: "OnlineBackup", Value: record.OnlineBackup},
		{Name: "DeviceProtection", Value: record.DeviceProtection},
		{Name: "TechSupport", Value: record.TechSupport},
		{Name: "StreamingTV", Value: record.StreamingTV},
		{Name: "StreamingMovies", Value: record.StreamingMovies},
		{Name: "Contract", Value: record.Contract},
		{Name: "PaperlessBilling", Value: record.PaperlessBilling},
		{Name: "PaymentMethod", Value: record.PaymentMethod},
		{Name: "MonthlyCharges", Value: record.MonthlyCharges},
		{Name: "TotalCharges", Value: record.TotalCharges},
	}
}

package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg/mlmodel"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/observability"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/services"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/views"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) PredictProba(row mlmodel.Row) (float64, error) {
	args := m.Called(row)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockClassifier) Info() mlmodel.Info {
	return mlmodel.Info{Name: "mock"}
}

func sampleRecord() views.CustomerRecord {
	return views.CustomerRecord{
		Gender: "Female", SeniorCitizen: 1, Partner: "No", Dependents: "No", Tenure: 3,
		PhoneService: "Yes", MultipleLines: "Yes", InternetService: "Fiber optic",
		OnlineSecurity: "No", OnlineBackup: "No", DeviceProtection: "No", TechSupport: "No",
		StreamingTV: "Yes", StreamingMovies: "Yes", Contract: "Month-to-month",
		PaperlessBilling: "Yes", PaymentMethod: "Electronic check",
		MonthlyCharges: 99.65, TotalCharges: 298.95,
	}
}

func TestPredict_Success(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		want        views.PredictionResult
	}{
		{name: "churner", probability: 0.7109, want: views.PredictionResult{Probability: 0.7109, Result: 1}},
		{name: "at threshold", probability: 0.5, want: views.PredictionResult{Probability: 0.5, Result: 1}},
		{name: "loyal", probability: 0.12, want: views.PredictionResult{Probability: 0.12, Result: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := new(mockClassifier)
			model.On("PredictProba", services.AssembleRow(sampleRecord())).Return(tt.probability, nil).Once()
			svc := services.NewPredictionService(zap.NewNop(), model)

			got := svc.Predict(context.Background(), "trace", sampleRecord())

			assert.Equal(t, tt.want, got)
			model.AssertExpectations(t)
		})
	}
}

func TestPredict_FailuresDegrade(t *testing.T) {
	rowErr := &mlmodel.RowError{Column: "Contract", Err: mlmodel.ErrUnknownCategory, Detail: `"Three year"`}

	tests := []struct {
		name        string
		probability float64
		err         error
		stage       string
	}{
		{name: "unknown category", err: rowErr, stage: observability.StageAssembly},
		{name: "model error", err: errors.New("inference exploded"), stage: observability.StageInference},
		{name: "probability above one", probability: 1.5, stage: observability.StageInference},
		{name: "nan probability", probability: math.NaN(), stage: observability.StageInference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(observability.PredictionFailures.WithLabelValues(tt.stage))
			model := new(mockClassifier)
			model.On("PredictProba", mock.Anything).Return(tt.probability, tt.err)
			svc := services.NewPredictionService(zap.NewNop(), model)

			got := svc.Predict(context.Background(), "trace", sampleRecord())

			assert.Equal(t, views.PredictionResult{Probability: 0, Result: 0}, got)
			after := testutil.ToFloat64(observability.PredictionFailures.WithLabelValues(tt.stage))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestPredict_PanicDegrades(t *testing.T) {
	before := testutil.ToFloat64(observability.PredictionFailures.WithLabelValues(observability.StagePanic))
	model := new(mockClassifier)
	model.On("PredictProba", mock.Anything).Run(func(mock.Arguments) {
		panic("index out of range")
	}).Return(0.0, nil)
	svc := services.NewPredictionService(zap.NewNop(), model)

	got := svc.Predict(context.Background(), "trace", sampleRecord())

	assert.Equal(t, views.DegradedResult(), got)
	assert.Equal(t, before+1, testutil.ToFloat64(observability.PredictionFailures.WithLabelValues(observability.StagePanic)))
}

func TestAssembleRow_FollowsTrainingColumns(t *testing.T) {
	row := services.AssembleRow(sampleRecord())

	require.Len(t, row, len(services.Columns))
	assert.Equal(t, services.Columns, row.Names())
	assert.Equal(t, "Female", row[0].Value)
	assert.Equal(t, 1, row[1].Value)
	assert.Equal(t, 3, row[4].Value)
	assert.Equal(t, 298.95, row[18].Value)
}

func TestPredict_RealModel(t *testing.T) {
	model, err := mlmodel.Load("../../ml_models/best_gb_model.json")
	require.NoError(t, err)
	svc := services.NewPredictionService(zap.NewNop(), model)

	first := svc.Predict(context.Background(), "trace", sampleRecord())
	second := svc.Predict(context.Background(), "trace", sampleRecord())

	assert.Equal(t, first, second)
	assert.Greater(t, first.Probability, 0.0)
	assert.Less(t, first.Probability, 1.0)
	assert.Equal(t, first.Probability >= 0.5, first.Result == 1)
}

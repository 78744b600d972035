package handlers_test

import (
	"net/http"
	"testing"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestGetRoot(t *testing.T) {
	r := newRouter(new(mockPredictionService))

	w := testutils.Serve(t, r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Customer Churn Prediction API"}`, w.Body.String())
}

func TestGetHealth(t *testing.T) {
	r := newRouter(new(mockPredictionService))

	w := testutils.Serve(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","model":"best_GB_model","version":"2024.11.1"}`, w.Body.String())
}

func TestGetModel(t *testing.T) {
	r := newRouter(new(mockPredictionService))

	w := testutils.Serve(t, r, http.MethodGet, "/model", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"best_GB_model"`)
}

func TestUnknownRoute(t *testing.T) {
	r := newRouter(new(mockPredictionService))

	w := testutils.Serve(t, r, http.MethodGet, "/predict/fraud", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	out, err := testutils.DecodeError(w.Body)
	assert.NoError(t, err)
	assert.Equal(t, pkg.ErrRecordNotFoundCode.Code, out.Code)
	assert.NotEmpty(t, out.TraceID)
}

func TestPredictChurn_GetIsNotRouted(t *testing.T) {
	r := newRouter(new(mockPredictionService))

	w := testutils.Serve(t, r, http.MethodGet, "/predict/churn", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

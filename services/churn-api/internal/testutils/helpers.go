package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/views"
)

// FrontendPayload is the body the web form sends for a month-to-month fibre customer.
func FrontendPayload() map[string]interface{} {
	return map[string]interface{}{
		"gender":           "Female",
		"SeniorCitizen":    0,
		"Partner":          "Yes",
		"Dependents":       "No",
		"tenure":           1,
		"PhoneService":     "No",
		"MultipleLines":    "No phone service",
		"InternetService":  "Fiber optic",
		"OnlineSecurity":   "No",
		"OnlineBackup":     "Yes",
		"DeviceProtection": "No",
		"TechSupport":      "No",
		"StreamingTV":      "No",
		"StreamingMovies":  "No",
		"Contract":         "Month-to-month",
		"PaperlessBilling": "Yes",
		"PaymentMethod":    "Electronic check",
		"MonthlyCharges":   29.85,
		"TotalCharges":     29.85,
	}
}

// Serve runs one request through h and returns the recorded response.
// A string payload is sent verbatim; anything else is JSON encoded.
func Serve(t *testing.T, h http.Handler, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		b, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func PostRequest(t *testing.T, url string, payload interface{}) (*http.Response, error) {
	b, _ := json.Marshal(payload)
	t.Logf("Request POST %s", url)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if resp != nil {
		t.Logf("Response POST %s: Status %d", url, resp.StatusCode)
		t.Cleanup(func() {
			_ = resp.Body.Close()
		})
	}
	return resp, err
}

func GetTraceId(resp *http.Response) string {
	return resp.Header.Get(pkg.HeaderTraceId)
}

func DecodePrediction(r io.Reader) (views.PredictionResult, error) {
	var out views.PredictionResult
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

func DecodeError(r io.Reader) (pkg.ErrorResponse, error) {
	var out pkg.ErrorResponse
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// ServeRequest runs a prepared request through h.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

package utils_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sampleConfig struct {
	Port      string `mapstructure:"PORT" validate:"required,numeric"`
	ModelPath string `mapstructure:"MODEL_PATH" validate:"required"`
}

func TestFormatConfigErrors_UsesEnvKeys(t *testing.T) {
	cfg := sampleConfig{Port: "abc"}
	err := validator.New().Struct(cfg)
	require.Error(t, err)

	formatted := utils.FormatConfigErrors(zap.NewNop(), err, &cfg)

	var appErr pkg.AppError
	require.ErrorAs(t, formatted, &appErr)
	assert.Equal(t, pkg.ErrConfigCode, appErr.Code)
	assert.Contains(t, appErr.Message, `PORT fails "numeric"`)
	assert.Contains(t, appErr.Message, `MODEL_PATH fails "required"`)
}

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "trace-9", r.Header.Get(pkg.HeaderTraceId))
		var in map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"probability":0.25,"result":0}`))
	}))
	defer srv.Close()

	var out struct {
		Probability float64 `json:"probability"`
		Result      int     `json:"result"`
	}
	client := utils.NewHTTPClient(utils.WithClientTimeout(time.Second))
	status, err := utils.PostJSON(context.Background(), client, srv.URL, "trace-9", map[string]any{"tenure": 1}, &out)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0.25, out.Probability)
}

func TestPostJSON_UndecodableReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	var out map[string]any
	status, err := utils.PostJSON(context.Background(), utils.NewHTTPClient(), srv.URL, "", map[string]any{}, &out)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
}

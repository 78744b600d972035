// Command inspect prints the metadata of a churn model artifact and scores a single
// customer record with it, optionally comparing the score with a running API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/mlmodel"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/utils"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/app"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/services"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/views"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

type report struct {
	Model        mlmodel.Info            `json:"model"`
	Local        *views.PredictionResult `json:"local,omitempty"`
	Remote       *views.PredictionResult `json:"remote,omitempty"`
	RemoteStatus int                     `json:"remoteStatus,omitempty"`
	RemoteError  json.RawMessage         `json:"remoteError,omitempty"`
	Fields       []pkg.FieldError        `json:"detail,omitempty"`
}

func main() {
	pkg.InitLogger()
	logger := pkg.Logger

	code := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run executes one inspection and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) int {
	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	modelPath := flags.StringP("model", "m", "./services/churn-api/ml_models/best_gb_model.json", "model artifact to load")
	recordPath := flags.StringP("record", "r", "", `customer record JSON file, "-" for stdin`)
	endpoint := flags.StringP("endpoint", "e", "", "base URL of a running churn API to compare against")
	timeout := flags.DurationP("timeout", "t", 0, "remote request timeout")
	if err := flags.Parse(args); err != nil {
		logger.Error("invalid flags", zap.Error(err))
		return exitFailure
	}

	model, err := app.LoadModel(logger, *modelPath)
	if err != nil {
		logger.Error("failed to load model", zap.Error(err))
		return exitFailure
	}
	out := report{Model: model.Info()}

	if *recordPath == "" {
		return writeReport(stdout, out, exitOK)
	}

	raw, err := readSource(*recordPath, stdin)
	if err != nil {
		logger.Error("failed to read record", zap.String("record", *recordPath), zap.Error(err))
		return exitFailure
	}
	req, fields := decodeRecord(raw)
	if len(fields) > 0 {
		out.Fields = fields
		return writeReport(stdout, out, exitInvalid)
	}

	traceID := uuid.New().String()
	local := services.NewPredictionService(logger, model).Predict(ctx, traceID, req.ToRecord())
	out.Local = &local

	if *endpoint != "" {
		compareRemote(ctx, logger, &out, *endpoint, *timeout, traceID, req)
	}
	return writeReport(stdout, out, exitOK)
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// decodeRecord binds raw the way the API does and returns the same field details on failure.
func decodeRecord(raw []byte) (*views.CustomerRequest, []pkg.FieldError) {
	pkg.UseJSONFieldNames()
	var req views.CustomerRequest
	err := json.NewDecoder(bytes.NewReader(raw)).Decode(&req)
	if err == nil {
		err = binding.Validator.ValidateStruct(&req)
	}
	if err != nil {
		return nil, pkg.BindingDetails(&req, err)
	}
	return &req, nil
}

// compareRemote posts the record to the API. Only a 200 reply is read as a prediction;
// anything else is kept verbatim.
func compareRemote(ctx context.Context, logger *zap.Logger, out *report, endpoint string, timeout time.Duration, traceID string, req *views.CustomerRequest) {
	url := strings.TrimRight(endpoint, "/") + "/predict/churn"
	client := utils.NewHTTPClient(utils.WithClientTimeout(timeout))

	var reply json.RawMessage
	status, err := utils.PostJSON(ctx, client, url, traceID, req, &reply)
	out.RemoteStatus = status
	if err != nil {
		logger.Error("remote prediction failed", zap.String("url", url), zap.Int("status", status), zap.Error(err))
		return
	}
	if status != http.StatusOK {
		out.RemoteError = reply
		return
	}
	var remote views.PredictionResult
	if err = json.Unmarshal(reply, &remote); err != nil {
		logger.Error("unexpected remote reply", zap.String("url", url), zap.Error(err))
		out.RemoteError = reply
		return
	}
	out.Remote = &remote
}

func writeReport(w io.Writer, out report, code int) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		return exitFailure
	}
	return code
}

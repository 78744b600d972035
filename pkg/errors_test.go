package pkg_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sample struct {
	Gender *string `json:"gender" validate:"required"`
	Senior *int    `json:"SeniorCitizen" validate:"required,oneof=0 1"`
}

func jsonNameValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

func TestValidationDetails_ValidatorErrors(t *testing.T) {
	two := 2
	err := jsonNameValidator().Struct(sample{Senior: &two})
	require.Error(t, err)

	details := pkg.ValidationDetails(err)
	require.Len(t, details, 2)
	assert.Equal(t, pkg.FieldError{Loc: []string{"body", "gender"}, Msg: "field required", Type: pkg.FieldErrMissing}, details[0])
	assert.Equal(t, []string{"body", "SeniorCitizen"}, details[1].Loc)
	assert.Equal(t, pkg.FieldErrValue, details[1].Type)
	assert.Contains(t, details[1].Msg, "0 1")
}

func TestValidationDetails_DecodeErrors(t *testing.T) {
	var typed struct {
		Tenure *int `json:"tenure"`
	}
	typeErr := json.Unmarshal([]byte(`{"tenure":"twelve"}`), &typed)
	syntaxErr := json.Unmarshal([]byte(`{"tenure":`), &typed)

	tests := []struct {
		name    string
		err     error
		loc     []string
		errType string
		msg     string
	}{
		{name: "type mismatch", err: typeErr, loc: []string{"body", "tenure"}, errType: pkg.FieldErrType, msg: "value is not a valid integer"},
		{name: "empty body", err: io.EOF, loc: []string{"body"}, errType: pkg.FieldErrMissing, msg: "field required"},
		{name: "truncated json", err: io.ErrUnexpectedEOF, loc: []string{"body"}, errType: pkg.FieldErrJSONInvalid},
		{name: "syntax", err: syntaxErr, loc: []string{"body"}, errType: pkg.FieldErrJSONInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := pkg.ValidationDetails(tt.err)
			require.Len(t, details, 1)
			assert.Equal(t, tt.loc, details[0].Loc)
			assert.Equal(t, tt.errType, details[0].Type)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, details[0].Msg)
			}
		})
	}
	assert.Nil(t, pkg.ValidationDetails(nil))
}

func TestToValidationResponse(t *testing.T) {
	resp := pkg.ToValidationResponse("trace-1", io.EOF)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, pkg.ErrValidationCode.Code, resp.Code)
	assert.Equal(t, "trace-1", resp.TraceID)
	assert.Len(t, resp.Fields, 1)
}

func TestToErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	appErr := pkg.NewAppError(pkg.ErrModelArtifactCode, "failed to load model", errors.New("boom"))
	resp := pkg.ToErrorResponse(logger, "trace-2", appErr)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, pkg.ErrModelArtifactCode.Code, resp.Code)
	assert.Equal(t, "failed to load model", resp.Message)
	assert.Equal(t, "trace-2", resp.TraceID)

	resp = pkg.ToErrorResponse(logger, "trace-3", errors.New("unexpected"))
	assert.Equal(t, pkg.ErrServerCode.Code, resp.Code)
	assert.Equal(t, pkg.ErrServerCode.Message, resp.Message)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := pkg.NewAppError(pkg.ErrConfigCode, "invalid config", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid config: root cause", err.Error())
}

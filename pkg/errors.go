package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var ExposeErrorDetails = false

func init() {
	if gin.DebugMode == gin.Mode() || gin.TestMode == gin.Mode() {
		ExposeErrorDetails = true
	}
}

// Reusable errors
var (
	ErrTraceIDMiss = errors.New("trace id is empty")
)

// ErrorCode defines a standardized error code
type ErrorCode struct {
	Code    string
	Status  int
	Message string // default message
}

var (
	// Generic app
	ErrValidationCode     = ErrorCode{Code: "APP_VALIDATION_FAILED", Status: http.StatusUnprocessableEntity, Message: "request validation failed"}
	ErrServerCode         = ErrorCode{Code: "APP_INTERNAL", Status: http.StatusInternalServerError, Message: "internal server error"}
	ErrRecordNotFoundCode = ErrorCode{Code: "APP_NOT_FOUND", Status: http.StatusNotFound, Message: "resource not found"}

	// Model artifact
	ErrModelArtifactCode = ErrorCode{Code: "MODEL_ARTIFACT_INVALID", Status: http.StatusInternalServerError, Message: "model artifact could not be loaded"}
	ErrConfigCode        = ErrorCode{Code: "APP_CONFIG_INVALID", Status: http.StatusInternalServerError, Message: "invalid configuration"}
)

type AppError struct {
	Code    ErrorCode
	Message string // public-facing message
	Cause   error  // internal cause (wrapped)
}

func (e AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}
func (e AppError) Unwrap() error { return e.Cause }

func NewAppError(code ErrorCode, msg string, cause error) error {
	return AppError{Code: code, Message: msg, Cause: cause}
}

// FieldError describes one invalid request field. The shape (loc/msg/type) is the one
// existing API clients already parse.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

const (
	FieldErrMissing     = "missing"
	FieldErrType        = "type_error"
	FieldErrValue       = "value_error"
	FieldErrJSONInvalid = "json_invalid"
)

// ErrorResponse defines the standardized error response format
type ErrorResponse struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	TraceID string       `json:"traceId,omitempty"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"detail,omitempty"`
}

// ToErrorResponse converts an error into an ErrorResponse, logging details and optionally exposing error messages.
// If the error is not an AppError, it is converted to a generic 500 error.
func ToErrorResponse(logger *zap.Logger, traceID string, err error) ErrorResponse {
	var appErr AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{
			Status:  appErr.Code.Status,
			Code:    appErr.Code.Code,
			Message: appErr.Message,
			TraceID: traceID,
		}
		logger.Error("application error", zap.String(TraceId, traceID), zap.Error(err))
		if ExposeErrorDetails {
			resp.Details = err.Error()
		}
		return resp
	}
	// Unknown error : 500
	resp := ErrorResponse{
		Status:  ErrServerCode.Status,
		Code:    ErrServerCode.Code,
		Message: ErrServerCode.Message,
		TraceID: traceID,
	}
	logger.Error("application error", zap.String(TraceId, traceID), zap.Error(err))
	if ExposeErrorDetails {
		resp.Details = err.Error()
	}
	return resp
}

// ToValidationResponse builds the 422 response for a request body that failed decoding or binding.
func ToValidationResponse(traceID string, err error) ErrorResponse {
	return ErrorResponse{
		Status:  ErrValidationCode.Status,
		Code:    ErrValidationCode.Code,
		Message: ErrValidationCode.Message,
		TraceID: traceID,
		Fields:  ValidationDetails(err),
	}
}

// ValidationDetails flattens decoding and validator errors into per-field entries.
func ValidationDetails(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fieldErrorFromValidator(fe))
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return []FieldError{{Loc: []string{"body"}, Msg: "request body must be a JSON object", Type: FieldErrType}}
		}
		return []FieldError{{
			Loc:  []string{"body", field},
			Msg:  "value is not a valid " + describeKind(typeErr.Type),
			Type: FieldErrType,
		}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Loc: []string{"body"}, Msg: "field required", Type: FieldErrMissing}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []FieldError{{Loc: []string{"body"}, Msg: "JSON decode error: " + err.Error(), Type: FieldErrJSONInvalid}}
	}

	return []FieldError{{Loc: []string{"body"}, Msg: err.Error(), Type: FieldErrJSONInvalid}}
}

func fieldErrorFromValidator(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "field required", Type: FieldErrMissing}
	case "oneof":
		return FieldError{Loc: loc, Msg: fmt.Sprintf("value must be one of [%s]", fe.Param()), Type: FieldErrValue}
	case "min":
		return FieldError{Loc: loc, Msg: "value must be at least " + fe.Param(), Type: FieldErrValue}
	case "max":
		return FieldError{Loc: loc, Msg: "value must be at most " + fe.Param(), Type: FieldErrValue}
	default:
		return FieldError{Loc: loc, Msg: fmt.Sprintf("value failed %q validation", fe.Tag()), Type: FieldErrValue}
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return strings.ToLower(t.Kind().String())
	}
}

package pkg

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var jsonNamesOnce sync.Once

// UseJSONFieldNames makes gin's validator report fields by their JSON name, so
// validation errors point at the keys the client actually sent.
func UseJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindingDetails lists every problem with a failed JSON bind of obj. A mistyped field stops
// binding before validation runs, so missing fields are validated separately and appended.
func BindingDetails(obj any, err error) []FieldError {
	details := ValidationDetails(err)
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return details
	}
	vErr := binding.Validator.ValidateStruct(obj)
	if vErr == nil {
		return details
	}
	for _, fe := range ValidationDetails(vErr) {
		// the mistyped field is left nil and would be reported twice
		if fe.Loc[len(fe.Loc)-1] == typeErr.Field {
			continue
		}
		details = append(details, fe)
	}
	return details
}

package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes gin's validator report fields by their JSON names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

var tagMessages = map[string]string{
	"required": "is required",
	"oneof":    "is not an accepted value",
	"min":      "is too small",
	"max":      "is too large",
	"gtfield":  "must be after the start",
}

// bindingErrors converts a binding failure into per-field messages. ok is
// false when err is not a validation failure (malformed JSON, wrong types).
func bindingErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, known := tagMessages[fe.Tag()]
		if !known {
			msg = "is invalid"
		}
		fields[fe.Field()] = fe.Field() + " " + msg
	}
	return fields, true
}

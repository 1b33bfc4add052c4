// Package validation wraps a shared go-playground validator and reports
// failures as a field to message map keyed by JSON names.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Register adds a custom validation tag to the shared validator.
func Register(tag string, fn validator.Func) error {
	return instance().RegisterValidation(tag, fn)
}

// Struct validates v and returns nil when it passes. Messages come from
// the optional messages map keyed by "field.tag" or "field", falling back
// to a generic text.
func Struct(v any, messages map[string]string) map[string]string {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else if msg, ok := messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = "geçersiz değer (" + fe.Tag() + ")"
		}
	}
	return out
}

// First returns one message from errs in a stable order, or "".
func First(errs map[string]string, order ...string) string {
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}

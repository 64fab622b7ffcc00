package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"url":      "{field} must be a valid URL",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"datetime": "{field} must match the format {param}",
}

// Bounds read differently for text, lists and numbers.
var boundMessages = map[reflect.Kind]map[string]string{
	reflect.String: {
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	},
	reflect.Slice: {
		"max": "{field} must contain at most {param} items",
		"min": "{field} must contain at least {param} items",
	},
}

var numberBounds = map[string]string{
	"max": "{field} must be less than or equal to {param}",
	"min": "{field} must be greater than or equal to {param}",
}

// fieldName keeps the JSON path below the request struct, e.g. favorite_sports[2].
func fieldName(fe val.FieldError) string {
	namespace := fe.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}

	return fe.Field()
}

func describe(fe val.FieldError) string {
	template, ok := messages[fe.Tag()]
	if !ok {
		if byKind, found := boundMessages[fe.Kind()]; found {
			template, ok = byKind[fe.Tag()]
		} else {
			template, ok = numberBounds[fe.Tag()]
		}
	}

	if !ok {
		return ""
	}

	return strings.NewReplacer("{field}", fieldName(fe), "{param}", fe.Param()).Replace(template)
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fe := range valErrors {
		if msg := describe(fe); msg != "" {
			return msg
		}
	}

	return valErrors.Error()
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// paramsValidate checks validate struct tags on command parameters.
// Field names in reported errors are the json tag names, which are
// also the MCP argument names.
var paramsValidate *validator.Validate

func init() {
	paramsValidate = validator.New(validator.WithRequiredStructEnabled())
	paramsValidate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateParams checks the validate tags on params (a pointer to a
// struct) and returns a [Validation] error naming every violated
// field. Returns nil when params is nil or all constraints hold.
func ValidateParams(params any) error {
	if params == nil {
		return nil
	}
	err := paramsValidate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return Internal("validating parameters: %w", err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, describeFieldError(fieldError))
	}
	return Validation("invalid parameters: %s", strings.Join(messages, "; "))
}

// describeFieldError renders one constraint violation.
func describeFieldError(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s (got %v)", field, fieldError.Param(), fieldError.Value())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s (got %v)", field, fieldError.Param(), fieldError.Value())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s (got %v)", field, fieldError.Param(), fieldError.Value())
	default:
		return fmt.Sprintf("%s failed %q constraint", field, fieldError.Tag())
	}
}

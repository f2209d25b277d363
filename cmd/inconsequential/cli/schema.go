// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Schema is the subset of JSON Schema used for MCP tool inputSchema
// and outputSchema.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Default     any                `json:"default,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Format      string             `json:"format,omitempty"`

	// Minimum is the inclusive lower bound for numeric properties,
	// from the minimum struct tag.
	Minimum *float64 `json:"minimum,omitempty"`

	// AdditionalProperties is false on input schemas so clients
	// reject unknown argument names before calling.
	AdditionalProperties *bool `json:"additionalProperties,omitempty"`
}

// ParamsSchema generates the input JSON Schema for a parameter struct.
// Property names come from json tags (fields without one, or tagged
// "-", are skipped), descriptions from desc, defaults from default,
// and lower bounds from minimum. A field is required when tagged
// required:"true" and has no default.
func ParamsSchema(params any) (*Schema, error) {
	structType := reflect.TypeOf(params)
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, Internal("params must be a struct or pointer to struct, got %T", params)
	}

	schema, err := buildObjectSchema(structType)
	if err != nil {
		return nil, err
	}
	closed := false
	schema.AdditionalProperties = &closed
	return schema, nil
}

// OutputSchema generates the JSON Schema for a command's output type.
// output is typically a pointer to the zero value of that type.
func OutputSchema(output any) (*Schema, error) {
	typ := reflect.TypeOf(output)
	if typ == nil {
		return nil, Internal("output type is nil")
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return schemaForType(typ)
}

func buildObjectSchema(structType reflect.Type) (*Schema, error) {
	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}

	for i := range structType.NumField() {
		field := structType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, err := buildObjectSchema(field.Type)
			if err != nil {
				return nil, Internal("embedded %s: %w", field.Name, err)
			}
			for name, property := range embedded.Properties {
				schema.Properties[name] = property
			}
			schema.Required = append(schema.Required, embedded.Required...)
			continue
		}
		if !field.IsExported() {
			continue
		}

		propertyName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if propertyName == "" || propertyName == "-" {
			continue
		}

		property, err := fieldSchema(field)
		if err != nil {
			return nil, Internal("field %s: %w", field.Name, err)
		}
		schema.Properties[propertyName] = property

		if field.Tag.Get("required") == "true" && field.Tag.Get("default") == "" {
			schema.Required = append(schema.Required, propertyName)
		}
	}

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}
	return schema, nil
}

// fieldSchema builds the schema for one struct field, overlaying the
// desc, default, and minimum tags on the type's schema.
func fieldSchema(field reflect.StructField) (*Schema, error) {
	schema, err := schemaForType(field.Type)
	if err != nil {
		return nil, err
	}
	schema.Description = field.Tag.Get("desc")

	if defaultString := field.Tag.Get("default"); defaultString != "" {
		value, err := parseSchemaDefault(field.Type, defaultString)
		if err != nil {
			return nil, Internal("default: %w", err)
		}
		schema.Default = value
	}

	if minimumString := field.Tag.Get("minimum"); minimumString != "" {
		minimum, err := strconv.ParseFloat(minimumString, 64)
		if err != nil {
			return nil, Internal("minimum: %w", err)
		}
		schema.Minimum = &minimum
	}
	return schema, nil
}

// parseSchemaDefault converts a default tag to the Go value that
// marshals to the right JSON type.
func parseSchemaDefault(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Bool:
		return strconv.ParseBool(value)
	case reflect.Int, reflect.Int64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float64:
		return strconv.ParseFloat(value, 64)
	default:
		return nil, Internal("unsupported default type %s", fieldType)
	}
}

var timeType = reflect.TypeOf(time.Time{})

// schemaForType maps a Go type to its JSON Schema, following pointers
// and recursing into structs and slices.
func schemaForType(typ reflect.Type) (*Schema, error) {
	if typ == timeType {
		return &Schema{Type: "string", Format: "date-time"}, nil
	}

	switch typ.Kind() {
	case reflect.Ptr:
		return schemaForType(typ.Elem())
	case reflect.Struct:
		return buildObjectSchema(typ)
	case reflect.Slice, reflect.Array:
		items, err := schemaForType(typ.Elem())
		if err != nil {
			return nil, Internal("array element: %w", err)
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.String:
		return &Schema{Type: "string"}, nil
	case reflect.Bool:
		return &Schema{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}, nil
	default:
		return nil, Internal("unsupported type %s", typ)
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"
	"os"
	"reflect"
)

// JSONOutput is an embeddable struct that adds a --json flag to a
// command's parameter struct, plus [JSONOutput.EmitJSON] for
// conditional JSON output.
//
//	type historyParams struct {
//	    cli.JSONOutput
//	    Limit int `json:"limit" flag:"limit" desc:"number of entries"`
//	}
//
//	// In Run:
//	if done, err := params.EmitJSON(thoughts); done {
//	    return err
//	}
type JSONOutput struct {
	OutputJSON bool `json:"-" flag:"json" desc:"output as JSON"`
}

// EmitJSON writes result as indented JSON to stdout if --json is set.
// Returns (false, nil) when --json is not set and the caller should
// render text instead. Nil slices are written as [].
func (j *JSONOutput) EmitJSON(result any) (bool, error) {
	if !j.OutputJSON {
		return false, nil
	}
	return true, WriteJSON(normalizeNilSlice(result))
}

// JSONOutputter is implemented by params structs that support JSON
// output. The MCP server uses it to force JSON when invoking commands
// as tools.
type JSONOutputter interface {
	SetJSONOutput(bool)
}

// SetJSONOutput enables or disables JSON output mode.
func (j *JSONOutput) SetJSONOutput(enabled bool) {
	j.OutputJSON = enabled
}

// WriteJSON writes value as indented JSON to stdout.
func WriteJSON(value any) error {
	return EncodeJSON(os.Stdout, value)
}

// EncodeJSON writes value as indented JSON to w.
func EncodeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return Internal("encoding JSON output: %w", err)
	}
	return nil
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice. Other values are returned unchanged.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}

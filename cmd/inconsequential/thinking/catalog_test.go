// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package thinking

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/catalog"
)

func TestCatalogList_JSON(t *testing.T) {
	command := CatalogCommand(newTestEngine(t))

	output, err := captureStdout(t, func() error {
		return command.Execute([]string{"list", "--json"})
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var result catalogListResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, output)
	}

	var names []string
	for _, action := range result.Actions {
		names = append(names, action.Name)
	}
	want := []string{
		"/plan:create",
		"/analyse:project:analyse",
		"/analyse:project:crit",
		"/task:execute:minima",
		"/task:suggest:targeted",
		"/style:layout:fix",
		"/style:style:unify",
		"/git:pull-request",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
	}
	for _, action := range result.Actions {
		if len(action.Keywords) == 0 || action.UseWhen == "" {
			t.Errorf("action %s missing keywords or use_when: %+v", action.Name, action)
		}
	}
}

func TestCatalogList_Text(t *testing.T) {
	command := CatalogCommand(newTestEngine(t))

	output, err := captureStdout(t, func() error {
		return command.Execute([]string{"list"})
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"/plan:create", "/git:pull-request", "Use when:", "Keywords:"} {
		if !strings.Contains(output, want) {
			t.Errorf("catalog text missing %q", want)
		}
	}
}

func TestCatalog_RequiresSubcommand(t *testing.T) {
	command := CatalogCommand(newTestEngine(t))
	_, err := captureStdout(t, func() error { return command.Execute(nil) })
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("Execute(nil) = %v, want subcommand required", err)
	}
}

func TestCatalogShow(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional", []string{"show", "/style:layout:fix", "--json"}},
		{"flag", []string{"show", "--name", "/style:layout:fix", "--json"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			command := CatalogCommand(newTestEngine(t))
			output, err := captureStdout(t, func() error { return command.Execute(test.args) })
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}

			var action catalog.Action
			if err := json.Unmarshal([]byte(output), &action); err != nil {
				t.Fatalf("unmarshal: %v\n%s", err, output)
			}
			want, _ := catalog.Default().Find("/style:layout:fix")
			if diff := cmp.Diff(want, action); diff != "" {
				t.Errorf("action mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogShow_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
		contains string
	}{
		{"unknown name", []string{"show", "/plan:destroy"}, cli.CategoryNotFound, `unknown command "/plan:destroy"`},
		{"no name", []string{"show"}, cli.CategoryValidation, "command name is required"},
		{"two names", []string{"show", "/plan:create", "/git:pull-request"}, cli.CategoryValidation, "unexpected argument: /git:pull-request"},
		{"flag and positional", []string{"show", "--name", "/plan:create", "/git:pull-request"}, cli.CategoryValidation, "unexpected argument"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			command := CatalogCommand(newTestEngine(t))
			_, err := captureStdout(t, func() error { return command.Execute(test.args) })

			var toolErr *cli.ToolError
			if !errors.As(err, &toolErr) || toolErr.Category != test.category {
				t.Fatalf("error = %v, want %s ToolError", err, test.category)
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("error %q should contain %q", err, test.contains)
			}
		})
	}
}

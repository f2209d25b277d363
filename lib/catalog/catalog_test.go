// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	catalog := Default()

	wantNames := []string{
		"/plan:create",
		"/analyse:project:analyse",
		"/analyse:project:crit",
		"/task:execute:minima",
		"/task:suggest:targeted",
		"/style:layout:fix",
		"/style:style:unify",
		"/git:pull-request",
	}
	if diff := cmp.Diff(wantNames, catalog.Names()); diff != "" {
		t.Fatalf("Default().Names() mismatch (-want +got):\n%s", diff)
	}
	if catalog.Len() != len(wantNames) {
		t.Errorf("Len() = %d, want %d", catalog.Len(), len(wantNames))
	}
	if Default() != catalog {
		t.Error("Default() returned a different instance on the second call")
	}

	for _, action := range catalog.Actions() {
		if action.Description == "" || action.UseWhen == "" {
			t.Errorf("action %q has empty description or use_when", action.Name)
		}
	}
}

func TestFind(t *testing.T) {
	catalog := Default()

	action, ok := catalog.Find("/style:layout:fix")
	if !ok {
		t.Fatal("Find(/style:layout:fix) not found")
	}
	want := Action{
		Name:        "/style:layout:fix",
		Description: "Fix layout problems whilst considering knock-on effects",
		UseWhen:     "When UI layout is broken or components are misaligned",
		Keywords:    []string{"layout", "ui", "style", "css", "alignment", "positioning", "display", "fix", "visual"},
	}
	if diff := cmp.Diff(want, action); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}

	if _, ok := catalog.Find("/does:not:exist"); ok {
		t.Error("Find(/does:not:exist) reported found")
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	input := []Action{
		{Name: "/one", Description: "d", UseWhen: "u", Keywords: []string{"alpha", "beta"}},
	}
	catalog, err := New(input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutating the input after construction must not leak in.
	input[0].Keywords[0] = "mutated"
	input[0].Name = "/renamed"

	// Mutating returned copies must not leak in either.
	actions := catalog.Actions()
	actions[0].Keywords[1] = "mutated"
	found, _ := catalog.Find("/one")
	found.Keywords[0] = "mutated"

	got, ok := catalog.Find("/one")
	if !ok {
		t.Fatal("Find(/one) not found after mutating input")
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, got.Keywords); diff != "" {
		t.Errorf("keywords changed through a copy (-want +got):\n%s", diff)
	}
}

func TestEachPreservesOrder(t *testing.T) {
	var names []string
	Default().Each(func(action Action) {
		names = append(names, action.Name)
	})
	if diff := cmp.Diff(Default().Names(), names); diff != "" {
		t.Errorf("Each order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		wantErr []string
	}{
		{
			name:    "missing name",
			actions: []Action{{Keywords: []string{"x"}}},
			wantErr: []string{"action 0: name is required"},
		},
		{
			name: "duplicate name",
			actions: []Action{
				{Name: "/a", Keywords: []string{"x"}},
				{Name: "/a", Keywords: []string{"y"}},
			},
			wantErr: []string{`duplicate name "/a"`},
		},
		{
			name:    "no keywords",
			actions: []Action{{Name: "/a"}},
			wantErr: []string{"at least one keyword"},
		},
		{
			name:    "upper-case keyword",
			actions: []Action{{Name: "/a", Keywords: []string{"Layout"}}},
			wantErr: []string{`keyword "Layout"`},
		},
		{
			name:    "padded keyword",
			actions: []Action{{Name: "/a", Keywords: []string{" css"}}},
			wantErr: []string{`keyword " css"`},
		},
		{
			name: "all problems reported",
			actions: []Action{
				{Name: "", Keywords: []string{"x"}},
				{Name: "/b"},
			},
			wantErr: []string{"name is required", "at least one keyword"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.actions)
			if err == nil {
				t.Fatal("New succeeded, want error")
			}
			for _, want := range test.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not contain %q", err, want)
				}
			}
		})
	}
}

func TestNewEmpty(t *testing.T) {
	catalog, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
// comment
[
  {
    "name": "/deploy",
    "description": "Deploy the service",
    "use_when": "When a release is cut",
    "keywords": ["deploy", "release",], /* trailing comma */
  },
]`)

	catalog, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	action, ok := catalog.Find("/deploy")
	if !ok {
		t.Fatal("Find(/deploy) not found")
	}
	if diff := cmp.Diff([]string{"deploy", "release"}, action.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`{"name": "/not-an-array"}`)); err == nil || !strings.Contains(err.Error(), "parsing catalog") {
		t.Errorf("Parse(object) error = %v, want parsing error", err)
	}
	if _, err := Parse([]byte(`[{"name": "/a", "keywords": []}]`)); err == nil || !strings.Contains(err.Error(), "validating catalog") {
		t.Errorf("Parse(no keywords) error = %v, want validation error", err)
	}
}

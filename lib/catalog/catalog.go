// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
)

// Action is one recommendable slash command.
type Action struct {
	// Name is the command as the user types it (e.g., "/plan:create").
	// Unique within a catalog.
	Name string `json:"name"`

	// Description says what the command does.
	Description string `json:"description"`

	// UseWhen describes the situation the command is meant for.
	UseWhen string `json:"use_when"`

	// Keywords are the lower-case terms matched against a thought's
	// tokens. Order is irrelevant for matching.
	Keywords []string `json:"keywords"`
}

// clone returns a deep copy so callers cannot reach the catalog's
// keyword slices.
func (a Action) clone() Action {
	a.Keywords = append([]string(nil), a.Keywords...)
	return a
}

// Catalog is an immutable, ordered list of actions.
type Catalog struct {
	actions []Action
	byName  map[string]int
}

// New validates actions and returns a catalog holding a copy of them.
// Every action needs a non-empty unique name and at least one keyword;
// keywords must be non-empty, lower-case, and free of surrounding
// whitespace. All problems are reported together.
func New(actions []Action) (*Catalog, error) {
	catalog := &Catalog{
		actions: make([]Action, 0, len(actions)),
		byName:  make(map[string]int, len(actions)),
	}

	var errs []error
	for i, action := range actions {
		if action.Name == "" {
			errs = append(errs, fmt.Errorf("action %d: name is required", i))
			continue
		}
		if _, exists := catalog.byName[action.Name]; exists {
			errs = append(errs, fmt.Errorf("action %d: duplicate name %q", i, action.Name))
			continue
		}
		if len(action.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("action %q: at least one keyword is required", action.Name))
		}
		for _, keyword := range action.Keywords {
			if keyword == "" || keyword != strings.TrimSpace(keyword) || keyword != strings.ToLower(keyword) {
				errs = append(errs, fmt.Errorf("action %q: keyword %q must be non-empty, trimmed, and lower-case", action.Name, keyword))
			}
		}
		catalog.byName[action.Name] = len(catalog.actions)
		catalog.actions = append(catalog.actions, action.clone())
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return catalog, nil
}

// Parse strips JSONC comments and trailing commas from data, then
// decodes a JSON array of actions and validates it with [New].
func Parse(data []byte) (*Catalog, error) {
	var actions []Action
	if err := json.Unmarshal(jsonc.ToJSON(data), &actions); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	catalog, err := New(actions)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return catalog, nil
}

//go:embed commands.jsonc
var builtinData []byte

var builtin = sync.OnceValue(func() *Catalog {
	catalog, err := Parse(builtinData)
	if err != nil {
		// The embedded file is part of the source tree; a parse
		// failure is a build defect, not a runtime condition.
		panic(fmt.Sprintf("catalog: embedded commands.jsonc: %v", err))
	}
	return catalog
})

// Default returns the built-in catalog. The same instance is returned
// on every call.
func Default() *Catalog {
	return builtin()
}

// Len returns the number of actions.
func (c *Catalog) Len() int {
	return len(c.actions)
}

// Actions returns a copy of every action in declaration order.
func (c *Catalog) Actions() []Action {
	actions := make([]Action, len(c.actions))
	for i, action := range c.actions {
		actions[i] = action.clone()
	}
	return actions
}

// Find returns the action with the given name.
func (c *Catalog) Find(name string) (Action, bool) {
	index, ok := c.byName[name]
	if !ok {
		return Action{}, false
	}
	return c.actions[index].clone(), true
}

// Names returns every action name in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.actions))
	for i, action := range c.actions {
		names[i] = action.Name
	}
	return names
}

// Each calls fn for every action in declaration order. The keyword
// slice is shared with the catalog, not copied; fn must not modify it.
func (c *Catalog) Each(fn func(action Action)) {
	for _, action := range c.actions {
		fn(action)
	}
}

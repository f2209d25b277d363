// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/history"
	"github.com/bureau-foundation/inconsequential/lib/recommend"
)

func newResourceServer(engine *recommend.Engine) *Server {
	return NewServer(testRoot(engine), WithResources(
		NewCatalogResource(engine),
		NewHistoryResource(engine),
	))
}

func readMessage(id int, uri string) string {
	message, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "resources/read",
		"params":  map[string]string{"uri": uri},
	})
	if err != nil {
		panic(err)
	}
	return string(message)
}

func TestResources_Capability(t *testing.T) {
	replies := runSession(t, newResourceServer(newTestEngine()), initializeMessage)
	result := decodeResult[initializeResult](t, replies[0])
	if result.Capabilities.Resources == nil {
		t.Error("resources capability should be advertised when providers are registered")
	}
}

func TestResources_List(t *testing.T) {
	replies := runSession(t, newResourceServer(newTestEngine()),
		initializeMessage,
		`{"jsonrpc":"2.0","id":1,"method":"resources/list"}`,
	)
	result := decodeResult[resourcesListResult](t, replies[1])

	var uris []string
	for _, resource := range result.Resources {
		uris = append(uris, resource.URI)
		if resource.MIMEType != "application/json" {
			t.Errorf("%s mimeType = %q", resource.URI, resource.MIMEType)
		}
		if resource.Name == "" || resource.Description == "" {
			t.Errorf("%s should carry a name and description", resource.URI)
		}
	}
	if diff := cmp.Diff([]string{"thinking://catalog", "thinking://history"}, uris); diff != "" {
		t.Errorf("resource URIs mismatch (-want +got):\n%s", diff)
	}
}

func TestResources_ListWithoutProviders(t *testing.T) {
	replies := runSession(t, NewServer(testRoot(newTestEngine())),
		initializeMessage,
		`{"jsonrpc":"2.0","id":1,"method":"resources/list"}`,
	)
	result := decodeResult[resourcesListResult](t, replies[1])
	if result.Resources == nil || len(result.Resources) != 0 {
		t.Errorf("resources = %#v, want empty list", result.Resources)
	}
}

func TestResources_ReadCatalog(t *testing.T) {
	replies := runSession(t, newResourceServer(newTestEngine()), initializeMessage, readMessage(1, CatalogURI))
	result := decodeResult[resourcesReadResult](t, replies[1])
	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(result.Contents))
	}
	content := result.Contents[0]
	if content.URI != CatalogURI || content.MIMEType != "application/json" {
		t.Errorf("content header = %s %s", content.URI, content.MIMEType)
	}

	var actions []catalog.Action
	if err := json.Unmarshal([]byte(content.Text), &actions); err != nil {
		t.Fatalf("catalog text is not an action list: %v", err)
	}
	if diff := cmp.Diff(catalog.Default().Actions(), actions); diff != "" {
		t.Errorf("catalog resource mismatch (-want +got):\n%s", diff)
	}
}

func TestResources_ReadHistory(t *testing.T) {
	engine := newTestEngine()
	for i := 1; i <= 6; i++ {
		engine.Think(recommend.Input{Thought: "step", ThoughtNumber: i, TotalThoughts: 6})
	}

	replies := runSession(t, newResourceServer(engine), initializeMessage, readMessage(1, HistoryURI))
	result := decodeResult[resourcesReadResult](t, replies[1])

	var thoughts []history.Thought
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &thoughts); err != nil {
		t.Fatalf("history text is not a thought list: %v", err)
	}
	if len(thoughts) != 5 || thoughts[0].Number != 2 || thoughts[4].Number != 6 {
		t.Errorf("history resource = %+v, want thoughts 2..6", thoughts)
	}
}

func TestResources_ReadEmptyHistory(t *testing.T) {
	replies := runSession(t, newResourceServer(newTestEngine()), initializeMessage, readMessage(1, HistoryURI))
	result := decodeResult[resourcesReadResult](t, replies[1])
	if result.Contents[0].Text != "[]\n" {
		t.Errorf("empty history text = %q, want []", result.Contents[0].Text)
	}
}

func TestResources_ReadErrors(t *testing.T) {
	replies := runSession(t, newResourceServer(newTestEngine()),
		initializeMessage,
		readMessage(1, "thinking://nothing"),
		`{"jsonrpc":"2.0","id":2,"method":"resources/read","params":{}}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/read"}`,
		`{"jsonrpc":"2.0","id":4,"method":"resources/read","params":{"uri":7}}`,
	)
	expectError(t, replies[1], codeInvalidParams, "unknown resource: thinking://nothing")
	expectError(t, replies[2], codeInvalidParams, "uri is required")
	expectError(t, replies[3], codeInvalidParams, "uri is required")
	expectError(t, replies[4], codeInvalidParams, "invalid resources/read params")
}

func TestCatalogResource_ReadForeignURI(t *testing.T) {
	resource := NewCatalogResource(newTestEngine())
	if _, err := resource.Read(HistoryURI); err == nil {
		t.Error("catalog provider should reject the history URI")
	}
}

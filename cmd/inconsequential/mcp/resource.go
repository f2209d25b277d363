// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"strings"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/catalog"
	"github.com/bureau-foundation/inconsequential/lib/history"
)

// resourceScheme prefixes every resource URI this server publishes.
const resourceScheme = "thinking://"

// Resource URIs.
const (
	CatalogURI = resourceScheme + "catalog"
	HistoryURI = resourceScheme + "history"
)

const jsonMIMEType = "application/json"

// ResourceProvider is one class of MCP resources. The server routes
// resources/read to the first provider whose Handles returns true.
type ResourceProvider interface {
	// Handles returns true if this provider owns the URI.
	Handles(uri string) bool

	// List returns the concrete resources this provider publishes.
	List() []resourceDescription

	// Read returns the current content of a resource the provider
	// handles. Returns a [cli.ToolError] for unknown resources.
	Read(uri string) ([]resourceContent, error)
}

// CatalogSource supplies the action catalog.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

// HistorySource supplies the recent thought window.
type HistorySource interface {
	Recent() []history.Thought
}

// CatalogResource publishes the action catalog at thinking://catalog.
type CatalogResource struct {
	source CatalogSource
}

// NewCatalogResource returns a provider reading from source.
func NewCatalogResource(source CatalogSource) *CatalogResource {
	return &CatalogResource{source: source}
}

// Handles implements [ResourceProvider].
func (r *CatalogResource) Handles(uri string) bool {
	return uri == CatalogURI
}

// List implements [ResourceProvider].
func (r *CatalogResource) List() []resourceDescription {
	return []resourceDescription{{
		URI:         CatalogURI,
		Name:        "catalog",
		Title:       "Command catalog",
		Description: "Every slash command the engine can recommend, with the keywords it is matched on.",
		MIMEType:    jsonMIMEType,
	}}
}

// Read implements [ResourceProvider].
func (r *CatalogResource) Read(uri string) ([]resourceContent, error) {
	if !r.Handles(uri) {
		return nil, cli.NotFound("unknown resource: %s", uri)
	}
	return jsonContent(uri, r.source.Catalog().Actions())
}

// HistoryResource publishes the recent thought window at
// thinking://history.
type HistoryResource struct {
	source HistorySource
}

// NewHistoryResource returns a provider reading from source.
func NewHistoryResource(source HistorySource) *HistoryResource {
	return &HistoryResource{source: source}
}

// Handles implements [ResourceProvider].
func (r *HistoryResource) Handles(uri string) bool {
	return uri == HistoryURI
}

// List implements [ResourceProvider].
func (r *HistoryResource) List() []resourceDescription {
	return []resourceDescription{{
		URI:         HistoryURI,
		Name:        "history",
		Title:       "Recent thoughts",
		Description: "The most recent thoughts recorded in this session, oldest first.",
		MIMEType:    jsonMIMEType,
	}}
}

// Read implements [ResourceProvider].
func (r *HistoryResource) Read(uri string) ([]resourceContent, error) {
	if !r.Handles(uri) {
		return nil, cli.NotFound("unknown resource: %s", uri)
	}
	thoughts := r.source.Recent()
	if thoughts == nil {
		thoughts = []history.Thought{}
	}
	return jsonContent(uri, thoughts)
}

// jsonContent marshals value as the single indented-JSON content block
// of a resource.
func jsonContent(uri string, value any) ([]resourceContent, error) {
	var builder strings.Builder
	if err := cli.EncodeJSON(&builder, value); err != nil {
		return nil, err
	}
	return []resourceContent{{URI: uri, MIMEType: jsonMIMEType, Text: builder.String()}}, nil
}

var (
	_ ResourceProvider = (*CatalogResource)(nil)
	_ ResourceProvider = (*HistoryResource)(nil)
)

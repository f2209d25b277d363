// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bureau-foundation/inconsequential/cmd/inconsequential/cli"
	"github.com/bureau-foundation/inconsequential/lib/version"
)

// Server is an MCP server that exposes CLI commands as tools over
// JSON-RPC 2.0 on newline-delimited stdio.
type Server struct {
	tools       []tool
	toolsByName map[string]*tool
	resources   []ResourceProvider
	logger      *slog.Logger
	sessionInfo []any
	initialized bool
}

// ServerOption configures optional server behavior.
type ServerOption func(*Server)

// WithResources registers resource providers. resources/read is routed
// to the first provider whose Handles method accepts the URI.
func WithResources(providers ...ResourceProvider) ServerOption {
	return func(s *Server) {
		s.resources = append(s.resources, providers...)
	}
}

// WithLogger sets the server's logger. Every record is tagged with a
// per-process session ID. Without this option logs are discarded.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSessionInfo adds key-value pairs, in slog's alternating form, to
// the record logged when a session starts.
func WithSessionInfo(args ...any) ServerOption {
	return func(s *Server) {
		s.sessionInfo = append(s.sessionInfo, args...)
	}
}

// tool is a discovered CLI command exposed as an MCP tool.
type tool struct {
	name         string
	title        string
	description  string
	annotations  *toolAnnotations
	inputSchema  *cli.Schema
	outputSchema *cli.Schema
	command      *cli.Command
}

// NewServer creates an MCP server by walking the command tree and
// exposing every command with both Params and Run as a tool.
func NewServer(root *cli.Command, options ...ServerOption) *Server {
	s := &Server{}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.logger = s.logger.With("session", uuid.NewString())

	s.discoverTools(root, nil)

	s.toolsByName = make(map[string]*tool, len(s.tools))
	for i := range s.tools {
		s.toolsByName[s.tools[i].name] = &s.tools[i]
	}
	return s
}

// Serve runs the server on os.Stdin and os.Stdout.
func (s *Server) Serve() error {
	return s.Run(os.Stdin, os.Stdout)
}

// Run processes JSON-RPC 2.0 requests from input and writes responses
// to output until input reaches EOF. Each message occupies one line.
// Requests are handled one at a time, in arrival order.
func (s *Server) Run(input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	// Thoughts are caller-controlled text and can be long.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	encoder := json.NewEncoder(output)
	startArgs := []any{"tools", len(s.tools), "resources", len(s.resources)}
	s.logger.Info("mcp session started", append(startArgs, s.sessionInfo...)...)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("unparseable message", "error", err)
			if writeErr := writeError(encoder, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
				return cli.Internal("writing parse error response: %w", writeErr)
			}
			continue
		}

		if req.JSONRPC != "2.0" {
			if !req.isNotification() {
				if writeErr := writeError(encoder, req.ID, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
					return cli.Internal("writing version error response: %w", writeErr)
				}
			}
			continue
		}

		if req.isNotification() {
			s.logger.Debug("notification", "method", req.Method)
			continue
		}

		if err := s.dispatch(encoder, &req); err != nil {
			return cli.Internal("writing %s response: %w", req.Method, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return cli.Internal("reading requests: %w", err)
	}
	s.logger.Info("mcp session ended")
	return nil
}

// dispatch routes a JSON-RPC request to its handler.
func (s *Server) dispatch(encoder *json.Encoder, req *request) error {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(encoder, req)
	case "ping":
		return writeResult(encoder, req.ID, map[string]any{})
	}

	if !s.initialized {
		switch req.Method {
		case "tools/list", "tools/call", "resources/list", "resources/read":
			return writeError(encoder, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
	}

	switch req.Method {
	case "tools/list":
		return s.handleToolsList(encoder, req)
	case "tools/call":
		return s.handleToolsCall(encoder, req)
	case "resources/list":
		return s.handleResourcesList(encoder, req)
	case "resources/read":
		return s.handleResourcesRead(encoder, req)
	default:
		return writeError(encoder, req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	s.initialized = true
	s.logger.Info("client initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
		"requested_protocol", params.ProtocolVersion,
	)

	capabilities := serverCapabilities{Tools: &toolCapability{}}
	if len(s.resources) > 0 {
		capabilities.Resources = &resourceCapability{}
	}

	return writeResult(encoder, req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    capabilities,
		ServerInfo: serverInfo{
			Name:    serverName,
			Version: version.Short(),
		},
		Instructions: "Call inconsequential_thinking with each reasoning step to get ranked slash-command suggestions.",
	})
}

func (s *Server) handleToolsList(encoder *json.Encoder, req *request) error {
	descriptions := make([]toolDescription, 0, len(s.tools))
	for _, t := range s.tools {
		descriptions = append(descriptions, toolDescription{
			Name:         t.name,
			Title:        t.title,
			Description:  t.description,
			InputSchema:  t.inputSchema,
			OutputSchema: t.outputSchema,
			Annotations:  t.annotations,
		})
	}
	return writeResult(encoder, req.ID, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(encoder, req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(encoder, req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	t, ok := s.toolsByName[params.Name]
	if !ok {
		return writeError(encoder, req.ID, codeInvalidParams, "unknown tool: "+params.Name)
	}

	start := time.Now()
	output, runErr := s.executeTool(t, params.Arguments)
	result := buildToolResult(output, runErr)

	// Tools with an outputSchema must return structuredContent as
	// well as the text block.
	if t.outputSchema != nil && !result.IsError && output != "" {
		var structured any
		if parseErr := json.Unmarshal([]byte(output), &structured); parseErr != nil {
			result.IsError = true
			result.ErrorInfo = &errorInfo{Category: string(cli.CategoryInternal)}
			result.Content = append(result.Content, contentBlock{
				Type: "text",
				Text: fmt.Sprintf("output schema violation: command produced non-JSON output: %v", parseErr),
			})
		} else {
			result.StructuredContent = structured
		}
	}

	logArgs := []any{"tool", t.name, "duration", time.Since(start), "is_error", result.IsError}
	if result.ErrorInfo != nil {
		logArgs = append(logArgs, "category", result.ErrorInfo.Category, "error", runErr)
	}
	s.logger.Debug("tool call", logArgs...)

	return writeResult(encoder, req.ID, result)
}

func (s *Server) handleResourcesList(encoder *json.Encoder, req *request) error {
	descriptions := []resourceDescription{}
	for _, provider := range s.resources {
		descriptions = append(descriptions, provider.List()...)
	}
	return writeResult(encoder, req.ID, resourcesListResult{Resources: descriptions})
}

func (s *Server) handleResourcesRead(encoder *json.Encoder, req *request) error {
	var params resourcesReadParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return writeError(encoder, req.ID, codeInvalidParams, "invalid resources/read params: "+err.Error())
		}
	}
	if params.URI == "" {
		return writeError(encoder, req.ID, codeInvalidParams, "uri is required")
	}

	for _, provider := range s.resources {
		if !provider.Handles(params.URI) {
			continue
		}
		contents, err := provider.Read(params.URI)
		if err != nil {
			s.logger.Warn("resource read failed", "uri", params.URI, "error", err)
			code := codeInternalError
			var toolErr *cli.ToolError
			if errors.As(err, &toolErr) && toolErr.Category != cli.CategoryInternal {
				code = codeInvalidParams
			}
			return writeError(encoder, req.ID, code, err.Error())
		}
		return writeResult(encoder, req.ID, resourcesReadResult{Contents: contents})
	}
	return writeError(encoder, req.ID, codeInvalidParams, "unknown resource: "+params.URI)
}

// buildToolResult assembles a toolsCallResult from captured output
// and an optional run error.
func buildToolResult(output string, runErr error) toolsCallResult {
	result := toolsCallResult{}
	if output != "" {
		result.Content = append(result.Content, contentBlock{Type: "text", Text: output})
	}
	if runErr != nil {
		result.IsError = true
		result.Content = append(result.Content, contentBlock{Type: "text", Text: runErr.Error()})
		result.ErrorInfo = classifyError(runErr)
	}
	// MCP requires at least one content block.
	if len(result.Content) == 0 {
		result.Content = []contentBlock{{Type: "text", Text: ""}}
	}
	return result
}

// classifyError extracts the error category from a [cli.ToolError].
// Anything else is an internal error.
func classifyError(err error) *errorInfo {
	var toolErr *cli.ToolError
	if errors.As(err, &toolErr) {
		return &errorInfo{
			Category:  string(toolErr.Category),
			Retryable: toolErr.Retryable(),
		}
	}
	return &errorInfo{Category: string(cli.CategoryInternal), Retryable: false}
}

// executeTool runs a command as a tool and returns its captured
// stdout. Parameters are zeroed, defaults applied from flag tags, the
// JSON arguments checked against the input schema and overlaid, JSON
// output forced, and validate tags checked before Run.
func (s *Server) executeTool(t *tool, arguments json.RawMessage) (string, error) {
	// The params pointer is shared across calls; zero it so one call
	// cannot leak into the next.
	params := t.command.Params()
	reflect.ValueOf(params).Elem().SetZero()

	// pflag assigns defaults to the bound fields during registration.
	t.command.FlagSet()

	if len(arguments) > 0 && string(arguments) != "null" {
		if err := checkArguments(t.inputSchema, arguments); err != nil {
			return "", err
		}
		if err := json.Unmarshal(arguments, params); err != nil {
			return "", cli.Validation("invalid arguments: %w", err)
		}
	} else if len(t.inputSchema.Required) > 0 {
		return "", cli.Validation("missing required arguments: %s", strings.Join(t.inputSchema.Required, ", "))
	}

	enableJSONOutput(params)

	if err := cli.ValidateParams(params); err != nil {
		return "", err
	}
	return captureRun(t.command.Run)
}

// checkArguments enforces the input schema's object shape: every
// required property present and no properties the schema does not
// declare. Value types are checked by json.Unmarshal afterwards.
func checkArguments(schema *cli.Schema, arguments json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(arguments, &fields); err != nil {
		return cli.Validation("arguments must be a JSON object: %w", err)
	}

	var unknown []string
	for name := range fields {
		if _, ok := schema.Properties[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return cli.Validation("unknown arguments: %s", strings.Join(unknown, ", "))
	}

	var missing []string
	for _, name := range schema.Required {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return cli.Validation("missing required arguments: %s", strings.Join(missing, ", "))
	}
	return nil
}

// enableJSONOutput forces JSON output on params structs that embed
// [cli.JSONOutput].
func enableJSONOutput(params any) {
	if j, ok := params.(cli.JSONOutputter); ok {
		j.SetJSONOutput(true)
	}
}

// captureRun executes a Run function while capturing its stdout. A
// goroutine drains the pipe so a large output cannot fill the pipe
// buffer and deadlock.
func captureRun(run func([]string) error) (string, error) {
	reader, writer, err := os.Pipe()
	if err != nil {
		return "", cli.Internal("creating output pipe: %w", err)
	}

	saved := os.Stdout
	os.Stdout = writer

	type capturedOutput struct {
		data []byte
		err  error
	}
	done := make(chan capturedOutput, 1)
	go func() {
		data, readErr := io.ReadAll(reader)
		done <- capturedOutput{data, readErr}
	}()

	runErr := run(nil)

	// Restore stdout before closing the pipe so later writes reach
	// the real destination.
	os.Stdout = saved
	writer.Close()

	captured := <-done
	reader.Close()

	if captured.err != nil {
		return "", cli.Internal("reading captured output: %w", captured.err)
	}
	return string(captured.data), runErr
}

// discoverTools walks the command tree recursively, collecting
// commands that have both Params and Run.
func (s *Server) discoverTools(command *cli.Command, path []string) {
	// Fresh slice: sibling recursions must not share a backing array.
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name

	if command.Params != nil && command.Run != nil {
		toolName := strings.Join(current, "_")

		inputSchema, err := cli.ParamsSchema(command.Params())
		if err != nil {
			s.logger.Warn("skipping tool: input schema error", "tool", toolName, "error", err)
		} else {
			var outputSchema *cli.Schema
			if command.Output != nil {
				outSchema, outErr := cli.OutputSchema(command.Output())
				if outErr != nil {
					s.logger.Warn("output schema error", "tool", toolName, "error", outErr)
				} else {
					outputSchema = outSchema
				}
			}

			s.tools = append(s.tools, tool{
				name:         toolName,
				title:        command.Summary,
				description:  toolDescriptionText(command),
				annotations:  resolveAnnotations(command),
				inputSchema:  inputSchema,
				outputSchema: outputSchema,
				command:      command,
			})
		}
	}

	for _, sub := range command.Subcommands {
		s.discoverTools(sub, current)
	}
}

// toolDescriptionText prefers the detailed Description over Summary.
func toolDescriptionText(command *cli.Command) string {
	if command.Description != "" {
		return command.Description
	}
	return command.Summary
}

// resolveAnnotations translates a command's annotations into MCP
// hints. Returns nil when the command declares none.
func resolveAnnotations(command *cli.Command) *toolAnnotations {
	if command.Annotations == nil {
		return nil
	}
	return &toolAnnotations{
		ReadOnlyHint:    command.Annotations.ReadOnly,
		DestructiveHint: command.Annotations.Destructive,
		IdempotentHint:  command.Annotations.Idempotent,
		OpenWorldHint:   command.Annotations.OpenWorld,
	}
}

// writeResult sends a JSON-RPC 2.0 success response.
func writeResult(encoder *json.Encoder, id json.RawMessage, result any) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// writeError sends a JSON-RPC 2.0 error response.
func writeError(encoder *json.Encoder, id json.RawMessage, code int, message string) error {
	return encoder.Encode(response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
}

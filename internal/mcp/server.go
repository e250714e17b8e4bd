// Package mcp exposes the classification pipeline as MCP tools over stdio,
// so agent hosts can classify raw assistant payloads and render artifacts
// without linking foreman directly.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foreman/internal/assistant"
	"foreman/internal/classify"
	"foreman/internal/export"
	"foreman/internal/format"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultAskTimeout bounds one ask_assistant round trip.
var DefaultAskTimeout = 120 * time.Second

// Server wraps the MCP SDK server. The assistant client is optional: when
// nil, only the offline tools (classify, export) are registered.
type Server struct {
	MCPServer *sdkmcp.Server
	client    *assistant.Client
}

// NewServer creates an MCP server with the classification tools, and the
// ask_assistant tool when a client is configured.
func NewServer(client *assistant.Client) *Server {
	s := &Server{client: client}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "foreman", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "classify_response",
		Description: "Classify a raw assistant response (any envelope shape) into a canonical artifact. Returns the kind-tagged artifact JSON and how it was classified.",
	}, s.handleClassify)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "export_artifact",
		Description: "Render a kind-tagged artifact envelope as plain text or Markdown.",
	}, s.handleExport)

	if s.client != nil {
		sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
			Name:        "ask_assistant",
			Description: "Send a question to the troubleshooting backend and return the canonical artifact(s) for its answer.",
		}, s.handleAsk)
	}
}

type classifyInput struct {
	ResponseJSON string `json:"response_json" jsonschema:"raw assistant response body as a JSON string"`
}

type classifyOutput struct {
	Kind     string          `json:"kind"`
	Source   string          `json:"source"`
	Artifact json.RawMessage `json:"artifact"`
	Error    string          `json:"error,omitempty"`
}

func (s *Server) handleClassify(_ context.Context, _ *sdkmcp.CallToolRequest, input classifyInput) (*sdkmcp.CallToolResult, classifyOutput, error) {
	res, err := classify.Transform([]byte(input.ResponseJSON))
	if err != nil {
		// The upstream failure contract is a tool result, not a tool error:
		// the caller asked what this payload means, and this is the answer.
		return nil, classifyOutput{Error: err.Error()}, nil
	}

	encoded, err := export.Marshal(res.Artifact)
	if err != nil {
		return nil, classifyOutput{}, fmt.Errorf("encode artifact: %w", err)
	}
	return nil, classifyOutput{
		Kind:     string(res.Classification.Kind),
		Source:   string(res.Classification.Source),
		Artifact: encoded,
	}, nil
}

type exportInput struct {
	ArtifactJSON string `json:"artifact_json" jsonschema:"kind-tagged artifact envelope from classify_response"`
	Mode         string `json:"mode,omitempty" jsonschema:"output mode: ascii (default) or markdown"`
}

type exportOutput struct {
	Text string `json:"text"`
}

func (s *Server) handleExport(_ context.Context, _ *sdkmcp.CallToolRequest, input exportInput) (*sdkmcp.CallToolResult, exportOutput, error) {
	a, err := export.Unmarshal([]byte(input.ArtifactJSON))
	if err != nil {
		return nil, exportOutput{}, err
	}
	return nil, exportOutput{Text: export.Render(a, format.ParseMode(input.Mode))}, nil
}

type askInput struct {
	Message string `json:"message" jsonschema:"the question to send to the troubleshooting backend"`
}

type askOutput struct {
	Kind        string          `json:"kind"`
	Source      string          `json:"source"`
	Artifact    json.RawMessage `json:"artifact,omitempty"`
	UserMessage string          `json:"user_message,omitempty"`
}

func (s *Server) handleAsk(ctx context.Context, _ *sdkmcp.CallToolRequest, input askInput) (*sdkmcp.CallToolResult, askOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultAskTimeout)
	defer cancel()

	res, err := s.client.Ask(ctx, input.Message, "")
	if err != nil {
		var reqErr *assistant.RequestError
		if errors.As(err, &reqErr) {
			return nil, askOutput{UserMessage: reqErr.UserMessage()}, nil
		}
		return nil, askOutput{}, err
	}

	encoded, err := export.Marshal(res.Artifact)
	if err != nil {
		return nil, askOutput{}, fmt.Errorf("encode artifact: %w", err)
	}
	return nil, askOutput{
		Kind:     string(res.Classification.Kind),
		Source:   string(res.Classification.Source),
		Artifact: encoded,
	}, nil
}

// Package assist exposes the component catalog to coding assistants over the
// Model Context Protocol.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

const (
	serverName = "kinetic"

	// ComponentURIPrefix prefixes the resource URI of a component's starter code.
	ComponentURIPrefix = "kinetic://components/"
	componentTemplate  = ComponentURIPrefix + "{id}"
	snippetMIMEType    = "text/x-go"
)

// Server answers catalog lookups. Every operation is read-only.
type Server struct {
	catalog *catalog.Catalog
	log     *logger.Logger
	mcp     *server.MCPServer
}

// New builds a server over cat. A nil log discards output.
func New(cat *catalog.Catalog, log *logger.Logger, version string) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		catalog: cat,
		log:     log.WithComponent("assist"),
	}

	s.mcp = server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcptypes.NewTool("list_components",
		mcptypes.WithDescription("List kinetic terminal UI components, optionally within one category."),
		mcptypes.WithString("category",
			mcptypes.Description("Category to filter by: "+strings.Join(cat.Categories(), ", ")),
		),
	), s.handleList)

	s.mcp.AddTool(mcptypes.NewTool("get_component",
		mcptypes.WithDescription("Describe one component: what it does, how to install it and starter code."),
		mcptypes.WithString("id",
			mcptypes.Required(),
			mcptypes.Description("Component id, for example countdown"),
		),
	), s.handleGet)

	s.mcp.AddTool(mcptypes.NewTool("search_components",
		mcptypes.WithDescription("Fuzzy search components by id, name and tags."),
		mcptypes.WithString("query",
			mcptypes.Required(),
			mcptypes.Description("Search text"),
		),
	), s.handleSearch)

	s.mcp.AddResourceTemplate(mcptypes.NewResourceTemplate(componentTemplate, "Component starter code",
		mcptypes.WithTemplateDescription("Runnable Bubble Tea program using the component"),
		mcptypes.WithTemplateMIMEType(snippetMIMEType),
	), s.handleSnippet)

	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// Serve speaks the protocol over in/out until ctx is cancelled or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.WithFields(map[string]any{"components": s.catalog.Len()}).Info("assistant server listening on stdio")

	stdio := server.NewStdioServer(s.mcp)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve stdio: %w", err)
	}
	s.log.Info("assistant server stopped")
	return nil
}

type summary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Install  string   `json:"install"`
	Tags     []string `json:"tags,omitempty"`
	Score    *int     `json:"score,omitempty"`
}

func summarize(e catalog.Entry) summary {
	return summary{ID: e.ID, Name: e.Name, Category: e.Category, Install: e.InstallCommand(), Tags: e.Tags}
}

func (s *Server) handleList(_ context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	category := strings.TrimSpace(req.GetString("category", ""))
	s.log.WithFields(map[string]any{"tool": "list_components", "category": category}).Debug("tool call")

	entries := s.catalog.List()
	if category != "" {
		entries = s.catalog.ByCategory(category)
		if len(entries) == 0 {
			return mcptypes.NewToolResultError(fmt.Sprintf("unknown category %q; known categories: %s",
				category, strings.Join(s.catalog.Categories(), ", "))), nil
		}
	}

	out := make([]summary, len(entries))
	for i, e := range entries {
		out[i] = summarize(e)
	}
	return jsonResult(out)
}

func (s *Server) handleGet(_ context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcptypes.NewToolResultError(err.Error()), nil
	}
	s.log.WithFields(map[string]any{"tool": "get_component", "id": id}).Debug("tool call")

	entry, err := s.catalog.Get(id)
	if err != nil {
		return notFound(err)
	}
	snippet, err := s.catalog.Snippet(entry.ID)
	if err != nil {
		s.log.Error(err, "read starter code")
		return nil, err
	}

	var b strings.Builder
	b.WriteString(entry.Markdown())
	b.WriteString("\n## Starter code\n\n```go\n")
	b.WriteString(snippet)
	if !strings.HasSuffix(snippet, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	return mcptypes.NewToolResultText(b.String()), nil
}

func (s *Server) handleSearch(_ context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcptypes.NewToolResultError(err.Error()), nil
	}
	s.log.WithFields(map[string]any{"tool": "search_components", "query": query}).Debug("tool call")

	matches := s.catalog.Search(query)
	out := make([]summary, len(matches))
	for i, m := range matches {
		out[i] = summarize(m.Entry)
		score := m.Score
		out[i].Score = &score
	}
	return jsonResult(out)
}

func (s *Server) handleSnippet(_ context.Context, req mcptypes.ReadResourceRequest) ([]mcptypes.ResourceContents, error) {
	uri := req.Params.URI
	id, ok := ComponentID(uri)
	if !ok {
		return nil, kineticerrors.NewValidationError("uri", fmt.Sprintf("expected %s<id>, got %s", ComponentURIPrefix, uri), nil)
	}

	snippet, err := s.catalog.Snippet(id)
	if err != nil {
		return nil, err
	}
	return []mcptypes.ResourceContents{
		mcptypes.TextResourceContents{URI: uri, MIMEType: snippetMIMEType, Text: snippet},
	}, nil
}

// ComponentID extracts the component id from a kinetic://components/<id> URI.
func ComponentID(uri string) (string, bool) {
	id, ok := strings.CutPrefix(uri, ComponentURIPrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func notFound(err error) (*mcptypes.CallToolResult, error) {
	var nf *kineticerrors.NotFoundError
	if errors.As(err, &nf) {
		return mcptypes.NewToolResultError(err.Error()), nil
	}
	return nil, err
}

func jsonResult(v any) (*mcptypes.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcptypes.NewToolResultText(string(data)), nil
}

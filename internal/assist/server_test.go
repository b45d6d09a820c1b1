package assist

import (
	"context"
	"encoding/json"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(cat, nil, "test")
}

func toolRequest(name string, args map[string]any) mcptypes.CallToolRequest {
	var req mcptypes.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcptypes.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcptypes.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestListComponents(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleList(context.Background(), toolRequest("list_components", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got []summary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Len(t, got, s.catalog.Len())
	assert.Equal(t, "countdown", got[0].ID)
	assert.Equal(t, "go get github.com/alexisbeaulieu97/kinetic/pkg/widgets/countdown", got[0].Install)
}

func TestListComponentsByCategory(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleList(context.Background(), toolRequest("list_components", map[string]any{"category": "buttons"}))
	require.NoError(t, err)

	var got []summary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Equal(t, "buttons", c.Category)
	}
}

func TestListComponentsUnknownCategory(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleList(context.Background(), toolRequest("list_components", map[string]any{"category": "spaceships"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown category")
}

func TestGetComponent(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleGet(context.Background(), toolRequest("get_component", map[string]any{"id": "multi-phase-loader"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "go get github.com/alexisbeaulieu97/kinetic/pkg/widgets/loader")
	assert.Contains(t, text, "```go\npackage main")
}

func TestGetComponentUnknown(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleGet(context.Background(), toolRequest("get_component", map[string]any{"id": "nope"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "component not found: nope")
}

func TestGetComponentRequiresID(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleGet(context.Background(), toolRequest("get_component", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestSearchComponents(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	result, err := s.handleSearch(context.Background(), toolRequest("search_components", map[string]any{"query": "countdown"}))
	require.NoError(t, err)

	var got []summary
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "countdown", got[0].ID)
	require.NotNil(t, got[0].Score)
}

func TestReadSnippetResource(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	var req mcptypes.ReadResourceRequest
	req.Params.URI = "kinetic://components/dock"

	contents, err := s.handleSnippet(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcptypes.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "text/x-go", text.MIMEType)
	assert.Contains(t, text.Text, "pkg/widgets/dock")
}

func TestReadSnippetResourceUnknown(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	var req mcptypes.ReadResourceRequest
	req.Params.URI = "kinetic://components/missing"

	_, err := s.handleSnippet(context.Background(), req)
	var nf *kineticerrors.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestComponentID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri    string
		want   string
		wantOK bool
	}{
		{uri: "kinetic://components/countdown", want: "countdown", wantOK: true},
		{uri: "kinetic://components/", wantOK: false},
		{uri: "kinetic://components/a/b", wantOK: false},
		{uri: "file:///etc/passwd", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			t.Parallel()
			got, ok := ComponentID(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToolsListedOverProtocol(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	resp := s.MCP().HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	for _, name := range []string{"list_components", "get_component", "search_components"} {
		assert.Contains(t, string(data), name)
	}
}

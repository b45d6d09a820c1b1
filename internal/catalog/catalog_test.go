package catalog

import (
	"errors"
	"go/parser"
	"go/token"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

func TestDefaultCatalogLoads(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 14, c.Len())

	for _, e := range c.List() {
		snippet, err := c.Snippet(e.ID)
		require.NoError(t, err, e.ID)
		assert.Contains(t, snippet, e.ImportPath(), "%s starter code imports its package", e.ID)
	}
}

func TestSnippetsAreValidGo(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	for _, e := range c.List() {
		snippet, err := c.Snippet(e.ID)
		require.NoError(t, err)
		_, err = parser.ParseFile(token.NewFileSet(), e.SnippetFile(), snippet, parser.AllErrors)
		assert.NoError(t, err, e.ID)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	e, err := c.Get("countdown")
	require.NoError(t, err)
	assert.Equal(t, "Countdown Timer", e.Name)
	assert.Equal(t, "go get github.com/alexisbeaulieu97/kinetic/pkg/widgets/countdown", e.InstallCommand())

	_, err = c.Get(" Countdown ")
	require.NoError(t, err, "ids are matched case-insensitively")

	_, err = c.Get("missing")
	var nf *kineticerrors.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.Key)

	_, err = c.Snippet("missing")
	require.True(t, errors.As(err, &nf))
}

func TestCategories(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	cats := c.Categories()
	assert.Equal(t, "buttons", cats[0])
	assert.Contains(t, cats, "loaders")

	total := 0
	for _, cat := range cats {
		entries := c.ByCategory(cat)
		assert.NotEmpty(t, entries, cat)
		total += len(entries)
	}
	assert.Equal(t, c.Len(), total, "every entry belongs to exactly one category")
	assert.Len(t, c.ByCategory("LOADERS"), 3)
	assert.Empty(t, c.ByCategory("unknown"))
}

func TestSearch(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	matches := c.Search("cntdwn")
	require.NotEmpty(t, matches)
	assert.Equal(t, "countdown", matches[0].Entry.ID)

	matches = c.Search("bezier")
	require.NotEmpty(t, matches)
	assert.Equal(t, "animated-beam", matches[0].Entry.ID, "tags are searchable")

	assert.Len(t, c.Search("  "), c.Len())
	assert.Empty(t, c.Search("zzzzqqq"))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	e, err := c.Get("dock")
	require.NoError(t, err)

	md := e.Markdown()
	assert.True(t, strings.HasPrefix(md, "# Magnifying Dock\n"))
	assert.Contains(t, md, e.InstallCommand())
	assert.Contains(t, md, "kinetic add dock")
}

func testFS(yaml string, snippets ...string) fstest.MapFS {
	fsys := fstest.MapFS{"catalog.yaml": {Data: []byte(yaml)}}
	for _, id := range snippets {
		fsys["snippets/"+id+".go.txt"] = &fstest.MapFile{Data: []byte("package main\n")}
	}
	return fsys
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	entry := func(id, category string) string {
		return "  - id: " + id + "\n    name: N\n    category: " + category +
			"\n    package: widgets/x\n    description: D\n"
	}

	tests := []struct {
		name  string
		fsys  fstest.MapFS
		field string
	}{
		{"bad id", testFS("version: \"1\"\ncomponents:\n"+entry("Bad_ID", "buttons"), "Bad_ID"), "components[0].id"},
		{"unknown category", testFS("version: \"1\"\ncomponents:\n"+entry("ok", "gizmos"), "ok"), "components[0].category"},
		{"duplicate id", testFS("version: \"1\"\ncomponents:\n"+entry("ok", "buttons")+entry("ok", "forms"), "ok"), "components[1].id"},
		{"missing snippet", testFS("version: \"1\"\ncomponents:\n" + entry("ok", "buttons")), "components[0].id"},
		{"no components", testFS("version: \"1\"\ncomponents: []\n"), "components"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tt.fsys)
			var verr *kineticerrors.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(testFS("components: [\n"))
	var perr *kineticerrors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "catalog.yaml", perr.Path)
}

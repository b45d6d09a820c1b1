// Package catalog is the read-only index of kinetic components and their
// starter code.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

//go:embed catalog.yaml snippets/*.go.txt
var embedded embed.FS

const catalogFile = "catalog.yaml"

// Categories known to the catalog, in display order.
var knownCategories = []string{"buttons", "timers", "loaders", "forms", "navigation", "layout", "feedback", "decorative"}

var (
	componentIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)
	yamlLineRegex      = regexp.MustCompile(`line (\d+)`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return slices.Contains(knownCategories, fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Catalog is an immutable, validated component index.
type Catalog struct {
	entries  []Entry
	byID     map[string]int
	snippets fs.FS
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(embedded)
	})
	return defaultCat, defaultErr
}

// Load parses catalog.yaml from fsys and resolves snippets from its
// snippets directory.
func Load(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, catalogFile)
	if err != nil {
		return nil, kineticerrors.NewParseError(catalogFile, 0, err)
	}
	snippets, err := fs.Sub(fsys, "snippets")
	if err != nil {
		return nil, fmt.Errorf("open snippets: %w", err)
	}
	return Parse(data, snippets)
}

// Parse builds a catalog from a YAML document. Every entry must have a
// snippet named <id>.go.txt in snippets.
func Parse(data []byte, snippets fs.FS) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, kineticerrors.NewParseError(catalogFile, extractLine(err), err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return nil, convertValidationError(err)
	}

	c := &Catalog{
		entries:  doc.Components,
		byID:     make(map[string]int, len(doc.Components)),
		snippets: snippets,
	}
	for i, e := range c.entries {
		if _, dup := c.byID[e.ID]; dup {
			return nil, kineticerrors.NewValidationError(fmt.Sprintf("components[%d].id", i), fmt.Sprintf("duplicate component id %q", e.ID), nil)
		}
		c.byID[e.ID] = i
		if _, err := fs.Stat(snippets, snippetPath(e.ID)); err != nil {
			return nil, kineticerrors.NewValidationError(fmt.Sprintf("components[%d].id", i), fmt.Sprintf("no starter code for %q", e.ID), err)
		}
	}
	return c, nil
}

// List returns every entry in catalog order.
func (c *Catalog) List() []Entry {
	return slices.Clone(c.entries)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Entry{}, kineticerrors.NewNotFoundError("component", id)
	}
	return c.entries[i], nil
}

// Categories returns the categories in use, in display order.
func (c *Catalog) Categories() []string {
	used := make(map[string]bool, len(knownCategories))
	for _, e := range c.entries {
		used[e.Category] = true
	}
	out := make([]string, 0, len(used))
	for _, cat := range knownCategories {
		if used[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// ByCategory returns the entries in category, in catalog order.
func (c *Catalog) ByCategory(category string) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

// Snippet returns the starter code for id.
func (c *Catalog) Snippet(id string) (string, error) {
	e, err := c.Get(id)
	if err != nil {
		return "", err
	}
	data, err := fs.ReadFile(c.snippets, snippetPath(e.ID))
	if err != nil {
		return "", fmt.Errorf("read starter code for %s: %w", e.ID, err)
	}
	return string(data), nil
}

func snippetPath(id string) string {
	return id + ".go.txt"
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(strings.TrimPrefix(ve.Namespace(), "document."))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kineticerrors.NewValidationError(field, msg, err)
	}
	return kineticerrors.NewValidationError("catalog", err.Error(), err)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

package catalog

import (
	"fmt"
	"strings"
)

// ModulePath is the import path prefix of the widget packages.
const ModulePath = "github.com/alexisbeaulieu97/kinetic/pkg/"

// Entry describes one catalog component.
type Entry struct {
	ID          string   `yaml:"id" json:"id" validate:"required,component_id"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Category    string   `yaml:"category" json:"category" validate:"required,category"`
	Package     string   `yaml:"package" json:"package" validate:"required,startswith=widgets/"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Tags        []string `yaml:"tags" json:"tags,omitempty" validate:"dive,required"`
}

// ImportPath returns the Go import path of the widget package.
func (e Entry) ImportPath() string {
	return ModulePath + e.Package
}

// InstallCommand returns the command that adds the widget package to a module.
func (e Entry) InstallCommand() string {
	return "go get " + e.ImportPath()
}

// Markdown renders the entry as a short document.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "%s\n\n", e.Description)
	fmt.Fprintf(&b, "## Install\n\n    %s\n\n", e.InstallCommand())
	fmt.Fprintf(&b, "Starter code: `kinetic add %s`\n", e.ID)
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "\n**Category:** %s  \n**Tags:** %s\n", e.Category, strings.Join(e.Tags, ", "))
	}
	return b.String()
}

// SnippetFile is the file name kinetic add writes the starter code to.
func (e Entry) SnippetFile() string {
	return e.ID + ".go"
}

type document struct {
	Version    string  `yaml:"version" validate:"required"`
	Components []Entry `yaml:"components" validate:"required,min=1,dive"`
}

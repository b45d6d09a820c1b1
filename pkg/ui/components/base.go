package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui"
)

// StyleFunc applies a theme-aware transformation to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent carries the raw style and the appliers shared by every component.
// Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the raw style plus appliers against the theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends appliers without mutating slices shared with copies.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// RenderContext carries the theme and the width budget a component may use.
type RenderContext struct {
	Theme    Theme
	MaxWidth int
}

// DefaultContext returns a context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a copy of the context limited to width columns.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// ContextualRenderable is a component that can receive a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it understands contexts and falls back to View otherwise.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

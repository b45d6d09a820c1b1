package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for styled text.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers appends theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText creates subtitle text.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

// MutedText creates de-emphasised text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

// EmphasisText creates bold body text.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

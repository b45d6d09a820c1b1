package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui"
)

// Card is a bordered box with an optional title and footer.
type Card struct {
	BaseComponent
	title  string
	body   []ui.Renderable
	footer ui.Renderable
	border BorderVariant
	accent PaletteSlot
	width  int
}

// NewCard creates a rounded card around children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		body:          children,
		border:        BorderVariantRounded,
		accent:        PaletteNeutral,
	}
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card within ctx.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme).
		Border(BorderForVariant(ctx.Theme, c.border)).
		BorderForeground(c.accent(ctx.Theme.Palette).Base).
		Padding(0, 1)

	width := c.width
	if ctx.MaxWidth > 0 && (width == 0 || width > ctx.MaxWidth) {
		width = ctx.MaxWidth
	}
	inner := ctx
	if width > 0 {
		// border + horizontal padding
		style = style.Width(width - 2)
		inner = ctx.WithMaxWidth(width - 4)
	}

	rows := make([]string, 0, len(c.body)+3)
	if c.title != "" {
		rows = append(rows, TitleText(c.title).ViewWithContext(inner))
	}
	for _, child := range c.body {
		if view := Render(child, inner); view != "" {
			rows = append(rows, view)
		}
	}
	if c.footer != nil {
		rows = append(rows, Render(HorizontalDivider(), inner), Render(c.footer, inner))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets a footer rendered below a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithBorder selects the border variant.
func (c *Card) WithBorder(variant BorderVariant) *Card {
	c.border = variant
	return c
}

// WithAccent colours the border from slot.
func (c *Card) WithAccent(slot PaletteSlot) *Card {
	if slot != nil {
		c.accent = slot
	}
	return c
}

// WithWidth fixes the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers appends theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

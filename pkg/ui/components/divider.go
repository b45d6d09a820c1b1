package components

import "strings"

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// HorizontalDivider creates a divider that fills the context width.
func HorizontalDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), char: "─"}
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return HorizontalDivider().WithChar("╌")
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = 40
	}
	style := Foreground(PaletteNeutral)(d.ComputeStyle(ctx.Theme), ctx.Theme)
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

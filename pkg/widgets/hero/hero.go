// Package hero renders a landing page headline block.
package hero

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

// Action is a call-to-action button.
type Action struct {
	Label   string
	Variant components.ButtonVariant
}

// Hero is a declarative hero section.
type Hero struct {
	Eyebrow  string
	Title    string
	Subtitle string
	Actions  []Action
	Align    lipgloss.Position
}

// View renders the hero with the default theme.
func (h Hero) View() string {
	return h.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the hero within ctx.
func (h Hero) ViewWithContext(ctx components.RenderContext) string {
	rows := make([]ui.Renderable, 0, 4)
	if h.Eyebrow != "" {
		rows = append(rows, components.AccentBadge(h.Eyebrow))
	}
	if h.Title != "" {
		rows = append(rows, components.TitleText(h.Title))
	}
	if h.Subtitle != "" {
		rows = append(rows, components.MutedText(h.Subtitle))
	}
	if len(h.Actions) > 0 {
		buttons := components.HStack().WithGap(2)
		for i, action := range h.Actions {
			buttons.Add(components.NewButton(action.Label).WithVariant(action.Variant).WithFocused(i == 0))
		}
		rows = append(rows, buttons)
	}

	stack := components.VStack(rows...).WithGap(1).WithAlign(h.Align)
	view := components.Render(stack, ctx)
	if ctx.MaxWidth > 0 {
		return lipgloss.PlaceHorizontal(ctx.MaxWidth, h.Align, view)
	}
	return view
}

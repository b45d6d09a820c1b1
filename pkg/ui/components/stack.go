package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	s := VStack(children...)
	s.direction = DirectionHorizontal
	s.align = lipgloss.Top
	return s
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child with ctx and joins them.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.MaxWidth > 0 && len(s.children) > 0 {
		available := ctx.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx = ctx.WithMaxWidth(available / len(s.children))
		}
	}

	views := make([]string, 0, len(s.children)*2)
	for _, child := range s.children {
		view := Render(child, childCtx)
		if view == "" {
			continue
		}
		if len(views) > 0 && s.gap > 0 {
			if s.direction == DirectionHorizontal {
				views = append(views, strings.Repeat(" ", s.gap))
			} else {
				views = append(views, strings.Repeat("\n", s.gap-1))
			}
		}
		views = append(views, view)
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(s.align, views...)
	} else {
		content = lipgloss.JoinVertical(s.align, views...)
	}
	return s.ComputeStyle(ctx.Theme).Render(content)
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(pos lipgloss.Position) *Stack {
	s.align = pos
	return s
}

// WithAppliers appends theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

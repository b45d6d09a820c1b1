package components

// ButtonVariant selects the button colour scheme.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantGhost
	ButtonVariantDanger
)

// Button is a static call-to-action label. Interactive behaviour lives in the widgets.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	focused bool
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme).Padding(0, 2).Bold(true)

	switch b.variant {
	case ButtonVariantSecondary:
		style = Background(PaletteSecondary)(style, ctx.Theme)
	case ButtonVariantGhost:
		style = Foreground(PalettePrimary)(style, ctx.Theme).Underline(true)
	case ButtonVariantDanger:
		style = Background(PaletteDanger)(style, ctx.Theme)
	default:
		style = Background(PalettePrimary)(style, ctx.Theme)
	}

	if b.focused {
		style = style.Reverse(true)
	}
	return style.Render(b.label)
}

// WithVariant sets the variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFocused marks the button as focused.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithAppliers appends theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

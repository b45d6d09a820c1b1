package components

// Badge is a short inline label such as a discount or a category.
type Badge struct {
	BaseComponent
	text string
	slot PaletteSlot
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		slot:          PaletteNeutral,
	}
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.text == "" {
		return ""
	}
	style := Background(b.slot)(b.ComputeStyle(ctx.Theme), ctx.Theme).
		Bold(true).
		Padding(0, 1)
	return style.Render(b.text)
}

// WithSlot selects the badge colour.
func (b *Badge) WithSlot(slot PaletteSlot) *Badge {
	if slot != nil {
		b.slot = slot
	}
	return b
}

// WithAppliers appends theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// AccentBadge creates an accent-coloured badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteAccent)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteSuccess)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithSlot(PaletteDanger)
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group:
//
//   - Base: the fill or brand colour
//   - OnBase: text that reads well on Base
//   - Muted: a quieter variant of Base
//   - Contrast: an accent that pops against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components and widgets.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
	Accent    ColourSet
}

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyVariant is a typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// Theme is an immutable styling theme. Copy it to derive variations.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default adaptive theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#94a3b8", "#475569"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Accent: ColourSet{
			Base:     ac("#ec4899", "#f472b6"),
			OnBase:   ac("#fdf2f8", "#500724"),
			Muted:    ac("#db2777", "#be185d"),
			Contrast: ac("#fde047", "#fde047"),
		},
	}

	return Theme{
		Name:    "default",
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Typography: typographyFor(palette),
	}
}

// DarkTheme pins the surface colours to a dark background regardless of terminal detection.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Palette.Surface = ColourSet{
		Base:     ac("#0b1120", "#0b1120"),
		OnBase:   ac("#e5e7eb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#1f2937"),
		Contrast: ac("#60a5fa", "#60a5fa"),
	}
	theme.Typography = typographyFor(theme.Palette)
	return theme
}

// LightTheme pins the surface colours to a light background.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	theme.Palette.Surface = ColourSet{
		Base:     ac("#ffffff", "#ffffff"),
		OnBase:   ac("#0f172a", "#0f172a"),
		Muted:    ac("#e2e8f0", "#e2e8f0"),
		Contrast: ac("#2563eb", "#2563eb"),
	}
	theme.Typography = typographyFor(theme.Palette)
	return theme
}

// ThemeByName resolves a settings value to a theme.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "auto":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return DefaultTheme(), false
	}
}

func typographyFor(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Code: body.
			Foreground(p.Secondary.Base).
			Background(p.Surface.Muted).
			Padding(0, 1),
		Emphasis: body.Bold(true),
		Muted:    body.Foreground(p.Neutral.Muted),
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Body
	}
}

// BorderForVariant returns the theme border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return lipgloss.HiddenBorder()
	}
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic slots for use with Background and Foreground.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
)

// Background applies the slot colour with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies the slot colour as text colour only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour colours the border with the slot base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// PaddingY pads top and bottom by n rows.
func PaddingY(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingTop(n).PaddingBottom(n)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Bold makes the text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

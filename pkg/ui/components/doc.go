// Package components provides the static, theme-aware building blocks the
// animated widgets render with.
//
// # Overview
//
// Components are lipgloss styles wrapped in small builder types. Every
// component implements ui.Renderable; the ones that care about theme or width
// also implement ContextualRenderable and receive a RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.NewCard(components.TitleText("Flash sale")).ViewWithContext(ctx)
//
// # Style modifiers
//
// StyleFunc values read colours and borders from the theme at render time:
//
//	badge := components.NewBadge("-40%").WithAppliers(
//		components.Background(components.PaletteAccent),
//		components.PaddingX(1),
//	)
//
// Themes are value types. Copy one, change a slot and pass it through the
// context; nothing is global.
package components

package showcase

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/kinetic/internal/config"
	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/beam"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/burst"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/carousel"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/chat"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/countdown"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/dock"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/field"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/loader"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/navbar"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/progress"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/skeleton"
)

// Preview is a live widget mounted in the preview pane.
type Preview interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Preview, tea.Cmd)
	View() string
	// Action performs the widget's primary interaction.
	Action() tea.Cmd
	// Hint describes Action for the status bar. Empty when there is none.
	Hint() string
	// Capturing reports whether the preview wants raw key input.
	Capturing() bool
	// Stop cancels every pending timer so no callback runs after unmount.
	Stop()
}

// Factory builds previews from the catalog id and the user settings.
type Factory struct {
	settings config.Settings
	theme    components.Theme
	clock    motion.Clock
	width    int
}

// NewFactory returns a factory using settings. A nil clock uses the system clock.
func NewFactory(settings config.Settings, clock motion.Clock) Factory {
	theme, ok := components.ThemeByName(settings.Theme.Name)
	if !ok {
		theme = components.DefaultTheme()
	}
	return Factory{settings: settings, theme: theme, clock: clock.OrSystem(), width: 48}
}

// WithWidth returns a copy of f building previews for a pane width columns wide.
func (f Factory) WithWidth(width int) Factory {
	if width > 0 {
		f.width = width
	}
	return f
}

// Build returns the preview for id. Unknown ids get a placeholder.
func (f Factory) Build(id string) Preview {
	s := f.settings
	switch id {
	case "countdown":
		return &countdownPreview{
			model: countdown.New(f.clock().Add(45*time.Minute),
				countdown.WithClock(f.clock),
				countdown.WithInterval(s.Countdown.Interval),
				countdown.WithThreshold(s.Countdown.UrgentThreshold),
				countdown.WithLabel("Flash sale ends in"),
				countdown.WithDiscount("-40%"),
				countdown.WithTheme(f.theme),
			),
			clock: f.clock,
		}
	case "multi-phase-loader":
		return &loaderPreview{model: loader.New(
			loader.WithStageDelay(s.Loader.StageDelay),
			loader.WithSettleDelay(s.Loader.SettleDelay),
			loader.WithTheme(f.theme),
		)}
	case "favorite-button", "basket-button":
		variant, label := burst.Favorite, "Favorite"
		if id == "basket-button" {
			variant, label = burst.Basket, "Add to basket"
		}
		return &burstPreview{model: burst.New(
			burst.WithVariant(variant),
			burst.WithLabel(label),
			burst.WithCount(s.Burst.Particles),
			burst.WithWindow(s.Burst.Window),
			burst.WithJitter(s.Burst.Jitter, uint64(f.clock().UnixNano())),
			burst.WithTheme(f.theme),
		)}
	case "testimonial-carousel":
		return &carouselPreview{model: carousel.New(sampleSlides(),
			carousel.WithInterval(s.Carousel.Interval),
			carousel.WithPauseOnHover(s.Carousel.PauseOnHover),
			carousel.WithWidth(f.width),
			carousel.WithTheme(f.theme),
		)}
	case "dock":
		return &dockPreview{model: dock.New(sampleDockItems(),
			dock.WithMaxScale(s.Dock.MaxScale),
			dock.WithThreshold(s.Dock.Threshold),
			dock.WithTheme(f.theme),
		), pointer: -1}
	case "navbar":
		return &navbarPreview{model: navbar.New("kinetic", sampleLinks(),
			navbar.WithWidth(f.width),
			navbar.WithTheme(f.theme),
		)}
	case "hero":
		return staticPreview{render: func() string {
			return sampleHero().ViewWithContext(components.RenderContext{Theme: f.theme, MaxWidth: f.width})
		}}
	case "footer":
		return staticPreview{render: func() string {
			return sampleFooter().ViewWithContext(components.RenderContext{Theme: f.theme, MaxWidth: f.width})
		}}
	case "floating-label-field":
		return &fieldPreview{model: field.New("Email",
			field.WithWidth(min(f.width-4, 36)),
			field.WithValidator(validateEmail),
			field.WithTheme(f.theme),
		)}
	case "chat-bubbles":
		return &chatPreview{model: chat.New(sampleMessages(),
			chat.WithWidth(f.width),
			chat.WithTheme(f.theme),
		)}
	case "skeleton":
		return &skeletonPreview{model: skeleton.New([]int{f.width - 8, f.width - 16, f.width / 2},
			skeleton.WithTheme(f.theme),
		)}
	case "progress-bar":
		return &progressPreview{model: progress.New("Uploading", min(f.width-12, 40))}
	case "animated-beam":
		return &beamPreview{model: beam.New(beam.Point{X: 2, Y: 8}, beam.Point{X: float64(min(f.width-4, 40)), Y: 1},
			beam.WithTheme(f.theme),
		)}
	default:
		return staticPreview{render: func() string {
			return lipgloss.NewStyle().Foreground(f.theme.Palette.Neutral.Muted).Render("no preview for " + id)
		}}
	}
}

var emailValidator = validator.New()

func validateEmail(v string) error {
	if v == "" {
		return nil
	}
	if err := emailValidator.Var(v, "email"); err != nil {
		return errors.New("not a valid email address")
	}
	return nil
}

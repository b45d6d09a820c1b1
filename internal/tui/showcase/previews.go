package showcase

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/beam"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/burst"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/carousel"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/chat"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/countdown"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/dock"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/field"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/footer"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/hero"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/loader"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/navbar"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/progress"
	"github.com/alexisbeaulieu97/kinetic/pkg/widgets/skeleton"
)

type countdownPreview struct {
	model countdown.Model
	clock motion.Clock
	short bool
}

func (p *countdownPreview) Init() tea.Cmd { return p.model.Init() }

func (p *countdownPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *countdownPreview) View() string { return p.model.View() }

// Action alternates between a 10 second and a 45 minute target.
func (p *countdownPreview) Action() tea.Cmd {
	p.short = !p.short
	d := 45 * time.Minute
	if p.short {
		d = 10 * time.Second
	}
	return p.model.SetTarget(p.clock().Add(d))
}

func (p *countdownPreview) Hint() string {
	if p.short {
		return "reset to 45 minutes"
	}
	return "restart with 10 seconds left"
}

func (p *countdownPreview) Capturing() bool { return false }
func (p *countdownPreview) Stop() { p.model.Stop() }

type loaderPreview struct {
	model     loader.Model
	completed int
}

func (p *loaderPreview) Init() tea.Cmd { return p.model.Init() }

func (p *loaderPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if _, ok := msg.(loader.CompletedMsg); ok {
		p.completed++
	}
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *loaderPreview) View() string {
	status := "idle"
	if p.completed > 0 {
		status = "completed runs: " + strconv.Itoa(p.completed)
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.model.View(), "", status)
}

func (p *loaderPreview) Action() tea.Cmd { return p.model.SetLoading(!p.model.Loading()) }

func (p *loaderPreview) Hint() string {
	if p.model.Loading() {
		return "finish loading"
	}
	return "start loading"
}

func (p *loaderPreview) Capturing() bool { return false }
func (p *loaderPreview) Stop() { p.model.Stop() }

type burstPreview struct {
	model burst.Model
}

func (p *burstPreview) Init() tea.Cmd { return p.model.Init() }

func (p *burstPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *burstPreview) View() string { return p.model.View() }
func (p *burstPreview) Action() tea.Cmd { return p.model.Click() }
func (p *burstPreview) Hint() string { return "toggle" }
func (p *burstPreview) Capturing() bool { return false }
func (p *burstPreview) Stop() { p.model.Stop() }

type carouselPreview struct {
	model carousel.Model
}

func (p *carouselPreview) Init() tea.Cmd { return p.model.Init() }

func (p *carouselPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *carouselPreview) View() string { return p.model.View() }
func (p *carouselPreview) Action() tea.Cmd { return p.model.SetHovered(!p.model.Hovered()) }

func (p *carouselPreview) Hint() string {
	if p.model.Hovered() {
		return "stop hovering"
	}
	return "hover"
}

func (p *carouselPreview) Capturing() bool { return false }
func (p *carouselPreview) Stop() { p.model.Stop() }

// dockPreview walks a simulated pointer across the items.
type dockPreview struct {
	model   dock.Model
	pointer int
}

func (p *dockPreview) Init() tea.Cmd { return p.model.Init() }

func (p *dockPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *dockPreview) View() string { return p.model.View() }

func (p *dockPreview) Action() tea.Cmd {
	p.pointer++
	if p.pointer >= len(p.model.Scales()) {
		p.pointer = -1
		p.model.Leave()
		return nil
	}
	p.model.PointerAt(p.model.Centre(p.pointer))
	return nil
}

func (p *dockPreview) Hint() string { return "move pointer" }
func (p *dockPreview) Capturing() bool { return false }
func (p *dockPreview) Stop() {}

type navbarPreview struct {
	model    navbar.Model
	scrolled bool
}

func (p *navbarPreview) Init() tea.Cmd { return p.model.Init() }

func (p *navbarPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *navbarPreview) View() string { return p.model.View() }

// Action toggles the menu on narrow panes and the scroll state otherwise.
func (p *navbarPreview) Action() tea.Cmd {
	if p.model.Mobile() {
		p.model.ToggleMenu()
		return nil
	}
	p.scrolled = !p.scrolled
	offset := 0
	if p.scrolled {
		offset = 40
	}
	p.model.SetScroll(offset)
	p.model.ToggleDropdown(1)
	return nil
}

func (p *navbarPreview) Hint() string {
	if p.model.Mobile() {
		return "toggle menu"
	}
	return "scroll and open dropdown"
}

func (p *navbarPreview) Capturing() bool { return false }
func (p *navbarPreview) Stop() { p.model.Close() }

type fieldPreview struct {
	model field.Model
}

func (p *fieldPreview) Init() tea.Cmd { return p.model.Init() }

func (p *fieldPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		p.model.Blur()
		return p, nil
	}
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *fieldPreview) View() string { return p.model.View() }

func (p *fieldPreview) Action() tea.Cmd {
	if p.model.Focused() {
		p.model.Blur()
		return nil
	}
	return p.model.Focus()
}

func (p *fieldPreview) Hint() string {
	if p.model.Focused() {
		return "esc to leave the field"
	}
	return "focus the field"
}

func (p *fieldPreview) Capturing() bool { return p.model.Focused() }
func (p *fieldPreview) Stop() { p.model.Blur() }

type chatPreview struct {
	model   chat.Model
	replies int
}

func (p *chatPreview) Init() tea.Cmd { return p.model.Init() }

func (p *chatPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *chatPreview) View() string { return p.model.View() }

// Action starts the typing indicator, and on the next press delivers the reply.
func (p *chatPreview) Action() tea.Cmd {
	if !p.model.Typing() {
		return p.model.SetTyping(true, "Ada")
	}
	p.replies++
	p.model.Append(chat.Message{Side: chat.Incoming, Author: "Ada", Text: cannedReplies[p.replies%len(cannedReplies)]})
	return nil
}

func (p *chatPreview) Hint() string {
	if p.model.Typing() {
		return "deliver reply"
	}
	return "start typing"
}

func (p *chatPreview) Capturing() bool { return false }
func (p *chatPreview) Stop() { p.model.SetTyping(false, "") }

type skeletonPreview struct {
	model skeleton.Model
}

func (p *skeletonPreview) Init() tea.Cmd { return p.model.Init() }

func (p *skeletonPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *skeletonPreview) View() string { return p.model.View() }
func (p *skeletonPreview) Action() tea.Cmd { return nil }
func (p *skeletonPreview) Hint() string { return "" }
func (p *skeletonPreview) Capturing() bool { return false }
func (p *skeletonPreview) Stop() { p.model.Stop() }

type progressPreview struct {
	model progress.Model
	done  int
}

const progressSteps = 8

func (p *progressPreview) Init() tea.Cmd { return p.model.Init() }

func (p *progressPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *progressPreview) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, p.model.View(), progress.Counter(p.done, progressSteps))
}

func (p *progressPreview) Action() tea.Cmd {
	p.done = (p.done + 1) % (progressSteps + 1)
	return p.model.SetRatio(p.done, progressSteps)
}

func (p *progressPreview) Hint() string { return "advance" }
func (p *progressPreview) Capturing() bool { return false }
func (p *progressPreview) Stop() {}

type beamPreview struct {
	model beam.Model
}

func (p *beamPreview) Init() tea.Cmd { return p.model.Init() }

func (p *beamPreview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return p, cmd
}

func (p *beamPreview) View() string { return p.model.View() }
func (p *beamPreview) Action() tea.Cmd { return nil }
func (p *beamPreview) Hint() string { return "" }
func (p *beamPreview) Capturing() bool { return false }
func (p *beamPreview) Stop() { p.model.Stop() }

// staticPreview renders a declarative widget that has no state.
type staticPreview struct {
	render func() string
}

func (p staticPreview) Init() tea.Cmd { return nil }
func (p staticPreview) Update(tea.Msg) (Preview, tea.Cmd) { return p, nil }
func (p staticPreview) View() string { return p.render() }
func (p staticPreview) Action() tea.Cmd { return nil }
func (p staticPreview) Hint() string { return "" }
func (p staticPreview) Capturing() bool { return false }
func (p staticPreview) Stop() {}

var cannedReplies = []string{
	"Sounds good, ship it!",
	"Can you send me the diff?",
	"Looks great on my terminal.",
}

func sampleSlides() []carousel.Slide {
	return []carousel.Slide{
		{Quote: "The countdown doubled our weekend conversions.", Author: "Maya Chen", Role: "Growth lead"},
		{Quote: "Our CLI finally feels alive.", Author: "Tomás Ruiz", Role: "Staff engineer"},
		{Quote: "Dropped the loader in and it just worked.", Author: "Priya Nair", Role: "Indie hacker"},
	}
}

func sampleDockItems() []dock.Item {
	return []dock.Item{
		{Icon: "⌂", Label: "Home"},
		{Icon: "✉", Label: "Mail"},
		{Icon: "♫", Label: "Music"},
		{Icon: "⚙", Label: "Settings"},
		{Icon: "🗑", Label: "Trash"},
	}
}

func sampleLinks() []navbar.Link {
	return []navbar.Link{
		{Label: "Home", Href: "/"},
		{Label: "Products", Href: "/products", Children: []navbar.Link{
			{Label: "Widgets", Href: "/products/widgets"},
			{Label: "Themes", Href: "/products/themes"},
		}},
		{Label: "Pricing", Href: "/pricing"},
		{Label: "Docs", Href: "/docs"},
	}
}

func sampleHero() hero.Hero {
	return hero.Hero{
		Eyebrow:  "NEW",
		Title:    "Animated widgets for your terminal",
		Subtitle: "Drop-in Bubble Tea components with motion built in.",
		Actions: []hero.Action{
			{Label: "Get started", Variant: components.ButtonVariantPrimary},
			{Label: "Browse", Variant: components.ButtonVariantGhost},
		},
	}
}

func sampleFooter() footer.Footer {
	return footer.Footer{
		Brand:   "kinetic",
		Tagline: "Motion for the command line.",
		Columns: []footer.Column{
			{Title: "Product", Links: []string{"Widgets", "Themes", "Changelog"}},
			{Title: "Company", Links: []string{"About", "Blog"}},
		},
		Socials:   []string{"GitHub", "Mastodon"},
		Copyright: "© 2026 kinetic",
	}
}

func sampleMessages() []chat.Message {
	return []chat.Message{
		{Side: chat.Incoming, Author: "Ada", Text: "Did the new loader land?"},
		{Side: chat.Outgoing, Author: "You", Text: "Merged this morning."},
	}
}

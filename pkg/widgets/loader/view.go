package loader

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stage is one row of the rendered stage list.
type Stage struct {
	Phase  Phase
	Status StageStatus
}

// StageStatus is the display state of a stage row.
type StageStatus int

const (
	StagePending StageStatus = iota
	StageActive
	StageDone
)

var workingStages = []Phase{ReadingInput, Processing, Delivering}

// Stages returns the working stages with their display state.
func (m Model) Stages() []Stage {
	stages := make([]Stage, 0, len(workingStages))
	for _, p := range workingStages {
		status := StagePending
		switch {
		case m.phase == Complete || m.phase > p:
			status = StageDone
		case m.phase == p:
			status = StageActive
		}
		stages = append(stages, Stage{Phase: p, Status: status})
	}
	return stages
}

// View renders the stage list, or a one-line idle hint.
func (m Model) View() string {
	palette := m.theme.Palette
	muted := lipgloss.NewStyle().Foreground(palette.Neutral.Base)

	if m.phase == Idle {
		return muted.Render("○ idle")
	}

	lines := make([]string, 0, len(workingStages)+1)
	for _, stage := range m.Stages() {
		var mark string
		style := muted
		switch stage.Status {
		case StageDone:
			mark = "✓"
			style = lipgloss.NewStyle().Foreground(palette.Success.Base)
		case StageActive:
			mark = "●"
			style = lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base)
		default:
			mark = "○"
		}
		lines = append(lines, style.Render(mark+" "+stage.Phase.String()))
	}
	if m.phase == Complete {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(palette.Success.Base).Render("complete"))
	}
	return strings.Join(lines, "\n")
}

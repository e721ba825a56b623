package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains lipgloss styles for the browser
type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Empty   lipgloss.Style
	Spinner lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the default style set
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(b.styles.Title.Render("All Events"))
	sb.WriteString("\n\n")

	switch {
	case b.loading:
		sb.WriteString(b.spinner.View())
		sb.WriteString(b.styles.Muted.Render(" Loading events..."))
		sb.WriteString("\n")
	case len(b.list) == 0:
		sb.WriteString(b.styles.Empty.Render("No events found"))
		sb.WriteString("\n")
	default:
		sb.WriteString(b.table.View())
		sb.WriteString("\n")
	}

	if b.status != "" {
		sb.WriteString("\n")
		sb.WriteString(b.styles.Status.Render(b.status))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(b.styles.Help.Render("g going • m maybe • n not going • d delete • r refresh • q quit"))
	sb.WriteString("\n")

	return sb.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/iopaint-config/internal/form"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")).
			Padding(0, 2)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFE66D")).
				Bold(true)
)

// radioLimit is the largest catalog rendered as a full radio row; longer
// catalogs cycle through one value at a time.
const radioLimit = 4

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("IOPaint Configuration"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Config file: " + m.editor.Path()))
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n\n")

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewFields())

	// Footer
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewStatus() string {
	if m.saving {
		return m.spinner.View() + " " + subtitleStyle.Render("Saving configurations...")
	}
	if m.status == "" {
		return dimStyle.Render("ctrl+s saves configurations")
	}
	if isErrorStatus(m.status) {
		return errorStyle.Render(m.status)
	}
	if m.status == unsavedMessage {
		return warningStyle.Render(m.status)
	}
	return successStyle.Render(m.status)
}

func isErrorStatus(s string) bool {
	return strings.HasPrefix(s, "[Error]") || strings.HasPrefix(s, "Save configure file failed")
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, tab := range form.Tabs() {
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(tab.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(tab.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewFields() string {
	var b strings.Builder

	group := ""
	for i, w := range m.tabs[m.tab] {
		if w.field.Group != group {
			group = w.field.Group
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(groupStyle.Render(group))
			b.WriteString("\n")
		}

		focused := i == m.focus[m.tab]
		cursor := "  "
		label := w.field.Label
		if focused {
			cursor = "> "
			label = focusedLabelStyle.Render(label)
		}

		if w.field.Kind == form.KindBool {
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, checkbox(w.on), label))
		} else {
			b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, label, m.viewWidget(w)))
		}

		if w.field.Key == "input" && m.inputInfo != "" {
			b.WriteString(infoStyle.Render("    " + m.inputInfo))
			b.WriteString("\n")
		}
		if focused && w.field.Help != "" {
			b.WriteString(dimStyle.Render("    " + w.field.Help))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewWidget(w widget) string {
	switch w.field.Kind {
	case form.KindChoice:
		if len(w.choices) <= radioLimit {
			parts := make([]string, len(w.choices))
			for i, c := range w.choices {
				if i == w.index {
					parts[i] = "(•) " + c
				} else {
					parts[i] = dimStyle.Render("( ) " + c)
				}
			}
			return strings.Join(parts, "  ")
		}
		return fmt.Sprintf("‹ %s › %s", w.choices[w.index], dimStyle.Render(fmt.Sprintf("%d/%d", w.index+1, len(w.choices))))

	case form.KindRange:
		span := float64(w.field.Max - w.field.Min)
		pct := 0.0
		if span > 0 {
			pct = float64(w.value-w.field.Min) / span
		}
		return fmt.Sprintf("%s %d", m.slider.ViewAs(pct), w.value)

	default:
		return w.input.View()
	}
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// staticView wraps a pre-rendered string as a tea.Model so it can be
// composed with the overlay package.
type staticView struct {
	content string
}

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return v.content }

// View renders the entire UI
func (m Model) View() string {
	main := m.renderMain()

	if m.showDialog {
		dialog := overlay.New(
			staticView{content: m.renderDialog()},
			staticView{content: main},
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return dialog.View()
	}

	return main
}

// renderMain renders the window content: title, inputs, drop zone, status.
func (m Model) renderMain() string {
	title := titleStyle.Render("Elden Ring Param - Soul Mass Editor")
	sub := subtitleStyle.Render(
		"Targets: getSoul, bonusSoul_single, bonusSoul_multi\n" +
			"Formatting is preserved. Only integer digits in those cells are changed.\n" +
			"Zeros are ignored (left untouched).")

	multLabel := labelStyle.Render("Multiplier (0.00-10.00):")
	multRow := lipgloss.JoinHorizontal(lipgloss.Center, multLabel, " ", m.multInput.View())

	zone := dropZoneStyle
	if m.focused == PathField {
		zone = dropZoneActiveStyle
	}
	dropZone := zone.Render("Drag and Drop CSV Here\n\n" + m.pathInput.View())

	status := statusStyle.Render(m.statusMessage)
	help := helpStyle.Render("tab: switch field • enter: run • c: copy summary • ctrl+c: quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		sub,
		"",
		multRow,
		"",
		dropZone,
		status,
		help,
	)

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderDialog renders the result or error popup.
func (m Model) renderDialog() string {
	if m.lastErr != nil {
		body := fmt.Sprintf("Edit failed\n\n%v", m.lastErr)
		return dialogErrorStyle.Render(body + "\n\n" + helpStyle.Render("esc: dismiss"))
	}

	if m.lastResult == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("Done"))
	b.WriteString("\n\n")
	b.WriteString(m.summaryText())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c: copy • esc: dismiss"))
	return dialogStyle.Render(b.String())
}

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/cmd/runeforge/logger"
	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/pkg/param"
)

// rewriteDoneMsg carries a finished rewrite back into the update loop.
type rewriteDoneMsg struct {
	res *param.FileResult
}

// rewriteErrMsg carries a failed rewrite back into the update loop.
type rewriteErrMsg struct {
	err error
}

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rewriteDoneMsg:
		m.running = false
		m.lastResult = msg.res
		m.lastErr = nil
		if m.resultMode == ResultModeModal {
			m.showDialog = true
		}
		m.statusMessage = fmt.Sprintf("Wrote %s (%d cells changed)", msg.res.OutputPath, msg.res.CellsChanged)
		return m, nil

	case rewriteErrMsg:
		m.running = false
		m.lastResult = nil
		m.lastErr = msg.err
		if m.resultMode == ResultModeModal {
			m.showDialog = true
		}
		m.statusMessage = "Edit failed"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Dialog swallows everything except copy and dismiss
	if m.showDialog {
		switch {
		case key.Matches(msg, m.keys.Esc), key.Matches(msg, m.keys.Enter):
			m.showDialog = false
			m.statusMessage = "Drop a CSV here"
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m.copySummary()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		return m.toggleFocus()

	case key.Matches(msg, m.keys.Enter):
		if m.running {
			return m, nil
		}
		return m.startRewrite()
	}

	return m.updateInputs(msg)
}

// toggleFocus moves focus between the multiplier and path inputs.
func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focused == MultiplierField {
		m.focused = PathField
		m.multInput.Blur()
		return m, m.pathInput.Focus()
	}
	m.focused = MultiplierField
	m.pathInput.Blur()
	return m, m.multInput.Focus()
}

// startRewrite validates the inputs and kicks off the rewrite command.
func (m Model) startRewrite() (tea.Model, tea.Cmd) {
	path := NormalizeDropPath(m.pathInput.Value())
	if path == "" {
		m.statusMessage = "Enter a CSV path first"
		return m, nil
	}

	mult, err := param.ParseMultiplier(m.multInput.Value())
	if err != nil {
		m.lastResult = nil
		m.lastErr = err
		if m.resultMode == ResultModeModal {
			m.showDialog = true
		}
		m.statusMessage = "Bad multiplier"
		return m, nil
	}

	m.running = true
	m.statusMessage = "Processing " + path
	logger.Info("rewrite requested", "path", path, "multiplier", param.FormatMultiplier(mult))

	return m, func() tea.Msg {
		res, err := param.RewriteFile(path, mult, param.RewriteOptions{})
		if err != nil {
			logger.Error("rewrite failed", "path", path, "error", err)
			return rewriteErrMsg{err: err}
		}
		logger.Info("rewrite done",
			"output", res.OutputPath,
			"changed", res.CellsChanged,
			"zeros", res.ZeroCellsSkipped)
		return rewriteDoneMsg{res: res}
	}
}

// copySummary puts the last result summary on the system clipboard.
func (m Model) copySummary() (tea.Model, tea.Cmd) {
	if m.lastResult == nil {
		return m, nil
	}
	if err := clipboard.WriteAll(m.summaryText()); err != nil {
		m.statusMessage = "Clipboard unavailable"
		return m, nil
	}
	m.statusMessage = "Summary copied to clipboard"
	return m, nil
}

// summaryText renders the plain-text result summary used by the dialog
// and the clipboard.
func (m Model) summaryText() string {
	if m.lastResult == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Wrote: %s\n", m.lastResult.OutputPath)
	fmt.Fprintf(&b, "Cells changed: %d\n", m.lastResult.CellsChanged)
	fmt.Fprintf(&b, "Zero cells skipped: %d\n", m.lastResult.ZeroCellsSkipped)
	return b.String()
}

// updateInputs forwards a message to whichever input is focused.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == MultiplierField {
		m.multInput, cmd = m.multInput.Update(msg)
	} else {
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

package main

import (
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/pkg/param"
)

// Field identifies which input has focus.
type Field int

const (
	MultiplierField Field = iota
	PathField
)

// ResultMode controls how a finished rewrite is presented.
type ResultMode int

const (
	ResultModeModal ResultMode = iota
	ResultModeStatus
)

// Model is the main application model.
type Model struct {
	multInput textinput.Model
	pathInput textinput.Model
	focused   Field
	keys      KeyMap

	width  int
	height int

	resultMode ResultMode

	// Last completed rewrite, shown in the result dialog.
	lastResult *param.FileResult
	lastErr    error
	showDialog bool

	// Status line under the inputs.
	statusMessage string

	running bool
}

// NewModel creates the TUI model. initialPath may be empty.
func NewModel(initialPath string) Model {
	mult := textinput.New()
	mult.Placeholder = "1.00"
	mult.SetValue("1.00")
	mult.CharLimit = 8
	mult.Width = 10
	mult.Focus()

	path := textinput.New()
	path.Placeholder = "drop or type a CSV path"
	path.Width = 52
	if initialPath != "" {
		path.SetValue(initialPath)
	}

	// Result display mode can be configured via RUNEFORGE_RESULT_MODE.
	// Options: "modal" (popup), "status" (status line only). Default: modal.
	resultMode := ResultModeModal
	if os.Getenv("RUNEFORGE_RESULT_MODE") == "status" {
		resultMode = ResultModeStatus
	}

	return Model{
		multInput:     mult,
		pathInput:     path,
		focused:       MultiplierField,
		keys:          DefaultKeyMap(),
		resultMode:    resultMode,
		statusMessage: "Drop a CSV here",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

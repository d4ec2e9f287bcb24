// Package tui provides the Bubble Tea settings form for the inpainting server.
package tui

import (
	"context"
	"maps"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/iopaint-config/internal/config"
	"github.com/handiism/iopaint-config/internal/editor"
	"github.com/handiism/iopaint-config/internal/form"
	ioutils "github.com/handiism/iopaint-config/internal/io"
)

// Model is the Bubble Tea model for the settings form.
type Model struct {
	editor *editor.Editor
	images *ioutils.ImageService

	tabs  [][]widget // widgets per form.Tabs() entry
	tab   int
	focus []int // focused widget per tab

	status    string
	saving    bool
	inputInfo string

	saved       form.Values // last values known to match the file
	confirmQuit bool

	spinner spinner.Model
	slider  progress.Model
	help    help.Model
	keys    keyMap

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates the form with every field initialized from init.
func NewModel(ed *editor.Editor, init *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	slider := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	slider.Width = 30

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		editor:  ed,
		images:  ioutils.NewImageService(),
		spinner: sp,
		slider:  slider,
		help:    help.New(),
		keys:    defaultKeyMap(),
		ctx:     ctx,
		cancel:  cancel,
	}
	m.setSettings(init)
	m.saved = m.Values()
	return m
}

// unsavedMessage asks for a second esc before discarding edits.
const unsavedMessage = "Unsaved changes: press esc again to quit, ctrl+s to save"

// setSettings rebuilds every widget from s and focuses the first field.
func (m *Model) setSettings(s *config.Settings) {
	values := form.Initial(s)
	tabs := form.Tabs()

	m.tabs = make([][]widget, len(tabs))
	m.focus = make([]int, len(tabs))
	for i, tab := range tabs {
		for _, f := range form.FieldsFor(tab) {
			m.tabs[i] = append(m.tabs[i], newWidget(f, values[f.Key]))
		}
	}
	m.tab = 0
	m.focusCurrent()
}

// Message types
type (
	// SaveDoneMsg carries the save handler's status message and the form
	// values that were submitted.
	SaveDoneMsg struct {
		Message string
		Values  form.Values
	}

	// LoadDoneMsg carries a fresh snapshot read from the config file. Err is
	// set when the file was ignored and Settings holds the defaults.
	LoadDoneMsg struct {
		Settings *config.Settings
		Err      error
	}

	// InputInfoMsg describes the input path that was current when requested.
	InputInfoMsg struct {
		Path string
		Info string
	}
)

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.describeInput())
}

// Status returns the last status message shown in the form.
func (m Model) Status() string {
	return m.status
}

// Dirty reports whether the form differs from the last saved or loaded values.
func (m Model) Dirty() bool {
	return !maps.Equal(m.Values(), m.saved)
}

// Value returns the current form text of the field with the given key.
func (m Model) Value(key string) string {
	for _, ws := range m.tabs {
		for _, w := range ws {
			if w.field.Key == key {
				return w.Value()
			}
		}
	}
	return ""
}

// Values collects the current text of every field.
func (m Model) Values() form.Values {
	values := make(form.Values)
	for _, ws := range m.tabs {
		for _, w := range ws {
			values[w.field.Key] = w.Value()
		}
	}
	return values
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.slider.Width = clamp(msg.Width-50, 10, 40)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SaveDoneMsg:
		m.saving = false
		m.status = msg.Message
		if !isErrorStatus(msg.Message) {
			m.saved = msg.Values
		}
		return m, nil

	case LoadDoneMsg:
		m.setSettings(msg.Settings)
		if msg.Err != nil {
			// The form now shows defaults, not the file: treat it as unsaved.
			m.saved = nil
			m.status = "[Error] " + editor.LoadFailedMessage + ": " + msg.Err.Error()
		} else {
			m.saved = m.Values()
			m.status = "Reloaded " + m.editor.Path()
		}
		return m, tea.Batch(m.focusCurrent(), m.describeInput())

	case InputInfoMsg:
		if msg.Path == strings.TrimSpace(m.Value("input")) {
			m.inputInfo = msg.Info
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirming := m.confirmQuit
	m.confirmQuit = false

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if m.Dirty() && !confirming {
			m.confirmQuit = true
			m.status = unsavedMessage
			return m, nil
		}
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Reload):
		ed := m.editor
		return m, func() tea.Msg {
			settings, err := ed.LoadWithWarning()
			return LoadDoneMsg{Settings: settings, Err: err}
		}

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1)

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(-1)

	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(1)
	}

	w := m.focused()
	switch w.field.Kind {
	case form.KindBool:
		if key.Matches(msg, m.keys.Toggle) {
			w.on = !w.on
		}
		return m, nil

	case form.KindChoice, form.KindRange:
		switch {
		case key.Matches(msg, m.keys.Left):
			w.step(-1)
		case key.Matches(msg, m.keys.Right):
			w.step(1)
		}
		return m, nil

	case form.KindInt:
		if len(msg.Runes) > 0 && !allDigits(msg.Runes) {
			return m, nil
		}
	}

	if msg.Type == tea.KeyEnter {
		return m.moveFocus(1)
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused text input, if any.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := m.focused()
	if w == nil || !w.isText() {
		return m, nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return m, cmd
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	settings, err := form.Build(m.Values())
	if err != nil {
		m.status = "[Error] " + err.Error()
		return m, nil
	}

	m.saving = true
	ed, values := m.editor, m.Values()
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return SaveDoneMsg{Message: ed.Save(settings), Values: values}
	})
}

func (m Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	leaving := m.blurCurrent()
	n := len(m.tabs)
	m.tab = ((m.tab+delta)%n + n) % n
	return m, tea.Batch(m.focusCurrent(), m.afterLeaving(leaving))
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	ws := m.tabs[m.tab]
	if len(ws) == 0 {
		return m, nil
	}
	leaving := m.blurCurrent()
	m.focus[m.tab] = clamp(m.focus[m.tab]+delta, 0, len(ws)-1)
	return m, tea.Batch(m.focusCurrent(), m.afterLeaving(leaving))
}

// afterLeaving refreshes the input preview once focus leaves the input field.
func (m Model) afterLeaving(leaving string) tea.Cmd {
	if leaving != "input" || m.focused().field.Key == "input" {
		return nil
	}
	return m.describeInput()
}

func (m *Model) focused() *widget {
	ws := m.tabs[m.tab]
	if len(ws) == 0 {
		return nil
	}
	return &ws[m.focus[m.tab]]
}

func (m *Model) focusCurrent() tea.Cmd {
	w := m.focused()
	if w == nil || !w.isText() {
		return nil
	}
	return w.input.Focus()
}

// blurCurrent blurs the focused widget and returns its field key.
func (m *Model) blurCurrent() string {
	w := m.focused()
	if w == nil {
		return ""
	}
	if w.isText() {
		w.input.Blur()
	}
	return w.field.Key
}

// describeInput inspects the input path in the background.
func (m Model) describeInput() tea.Cmd {
	p := strings.TrimSpace(m.Value("input"))
	if p == "" || p == "." {
		return func() tea.Msg { return InputInfoMsg{Path: p, Info: "not set"} }
	}

	svc, ctx := m.images, m.ctx
	return func() tea.Msg {
		info, err := svc.DescribeInput(ctx, p)
		if err != nil {
			return InputInfoMsg{Path: p, Info: err.Error()}
		}
		return InputInfoMsg{Path: p, Info: info.String()}
	}
}

// Run starts the form and blocks until the user quits. It returns the last
// status message shown.
func Run(ed *editor.Editor, init *config.Settings) (string, error) {
	p := tea.NewProgram(NewModel(ed, init), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.Status(), nil
	}
	return "", nil
}

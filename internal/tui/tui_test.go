package tui

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/iopaint-config/internal/config"
	"github.com/handiism/iopaint-config/internal/editor"
	"github.com/handiism/iopaint-config/internal/form"
	"github.com/handiism/iopaint-config/internal/model"
)

func newTestModel(t *testing.T, init *config.Settings) (Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	ed := editor.New(path, editor.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return NewModel(ed, init), path
}

// focusOn moves focus to the field with the given key.
func focusOn(t *testing.T, m Model, key string) Model {
	t.Helper()
	for ti, ws := range m.tabs {
		for i, w := range ws {
			if w.field.Key == key {
				m.blurCurrent()
				m.tab = ti
				m.focus[ti] = i
				m.focusCurrent()
				return m
			}
		}
	}
	t.Fatalf("no field %q", key)
	return m
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// saveResult runs the command returned by a save key press and returns the
// save handler's message.
func saveResult(t *testing.T, cmd tea.Cmd) SaveDoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("save returned no command")
	}
	msgs := []tea.Msg{cmd()}
	if batch, ok := msgs[0].(tea.BatchMsg); ok {
		msgs = msgs[:0]
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	}
	for _, msg := range msgs {
		if done, ok := msg.(SaveDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no SaveDoneMsg produced")
	return SaveDoneMsg{}
}

func TestNewModel_InitialValues(t *testing.T) {
	init := config.DefaultSettings()
	init.Port = 9999
	init.Quality = 80
	init.Model = "someone/custom-inpainting"
	init.EnableGFPGAN = true
	init.GFPGANDevice = model.DeviceMPS
	init.OutputDir = config.OptionalPath("/data/out")

	m, _ := newTestModel(t, init)

	want := form.Initial(init)
	got := m.Values()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestModel_ToggleCheckbox(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "low_mem")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Value("low_mem") != "true" {
		t.Errorf("low_mem = %q after toggle, want true", m.Value("low_mem"))
	}
	m, _ = press(m, keyOf(tea.KeyEnter))
	if m.Value("low_mem") != "false" {
		t.Errorf("low_mem = %q after second toggle, want false", m.Value("low_mem"))
	}
}

func TestModel_QualityClamped(t *testing.T) {
	init := config.DefaultSettings()
	init.Quality = 99
	m, _ := newTestModel(t, init)
	m = focusOn(t, m, "quality")

	for i := 0; i < 5; i++ {
		m, _ = press(m, keyOf(tea.KeyRight))
	}
	if got := m.Value("quality"); got != "100" {
		t.Errorf("quality = %s, want 100", got)
	}

	for i := 0; i < 40; i++ {
		m, _ = press(m, keyOf(tea.KeyLeft))
	}
	if got := m.Value("quality"); got != "75" {
		t.Errorf("quality = %s, want 75", got)
	}
}

func TestModel_ChoiceCycles(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "device")

	m, _ = press(m, keyOf(tea.KeyRight))
	if got := m.Value("device"); got != "mps" {
		t.Errorf("device = %s, want mps", got)
	}
	m, _ = press(m, keyOf(tea.KeyRight))
	if got := m.Value("device"); got != "cpu" {
		t.Errorf("device = %s, want cpu after wrapping", got)
	}
	m, _ = press(m, keyOf(tea.KeyLeft))
	if got := m.Value("device"); got != "mps" {
		t.Errorf("device = %s, want mps after wrapping back", got)
	}
}

func TestModel_PortRejectsLetters(t *testing.T) {
	init := config.DefaultSettings()
	init.Port = 80
	m, _ := newTestModel(t, init)
	m = focusOn(t, m, "port")

	m, _ = press(m, runes("a"))
	m, _ = press(m, runes("8"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if got := m.Value("port"); got != "808" {
		t.Errorf("port = %q, want 808", got)
	}
}

func TestModel_TabsAndFocus(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())

	if m.focused().field.Key != "host" {
		t.Fatalf("initial focus = %q, want host", m.focused().field.Key)
	}

	m, _ = press(m, keyOf(tea.KeyDown))
	if got := m.focused().field.Key; got != "port" {
		t.Errorf("focus after down = %q, want port", got)
	}
	m, _ = press(m, keyOf(tea.KeyUp))
	m, _ = press(m, keyOf(tea.KeyUp))
	if got := m.focused().field.Key; got != "host" {
		t.Errorf("focus should stop at the first field, got %q", got)
	}

	m, _ = press(m, keyOf(tea.KeyTab))
	if m.tab != 1 {
		t.Fatalf("tab = %d after tab key, want 1", m.tab)
	}
	if got := m.focused().field.Key; got != "enable_interactive_seg" {
		t.Errorf("Plugins focus = %q, want enable_interactive_seg", got)
	}
	if !strings.Contains(m.View(), "RealESRGAN") {
		t.Error("Plugins view should list the RealESRGAN group")
	}

	m, _ = press(m, keyOf(tea.KeyShiftTab))
	if m.tab != 0 {
		t.Errorf("tab = %d after shift+tab, want 0", m.tab)
	}
}

func TestModel_SaveSuccess(t *testing.T) {
	m, path := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "enable_realesrgan")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m, cmd := press(m, keyOf(tea.KeyCtrlS))
	if !m.saving {
		t.Error("model should be saving")
	}
	if _, again := press(m, keyOf(tea.KeyCtrlS)); again != nil {
		t.Error("a second save while saving should be ignored")
	}

	done := saveResult(t, cmd)
	if !strings.Contains(done.Message, "Successful save config to: ") {
		t.Fatalf("save message = %q", done.Message)
	}

	next, _ := m.Update(done)
	m = next.(Model)
	if m.saving || m.Status() != done.Message {
		t.Errorf("status = %q saving = %v", m.Status(), m.saving)
	}

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !saved.EnableRealESRGAN {
		t.Error("saved file should enable realesrgan")
	}
}

func TestModel_SaveMissingInput(t *testing.T) {
	m, path := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "input")
	m, _ = press(m, runes(filepath.Join(t.TempDir(), "missing.png")))

	_, cmd := press(m, keyOf(tea.KeyCtrlS))
	done := saveResult(t, cmd)
	if done.Message != editor.InputMissingMessage {
		t.Errorf("save message = %q, want %q", done.Message, editor.InputMissingMessage)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config file should not be written")
	}
}

func TestModel_SaveInvalidField(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "port")
	for range "8080" {
		m, _ = press(m, keyOf(tea.KeyBackspace))
	}

	m, cmd := press(m, keyOf(tea.KeyCtrlS))
	if cmd != nil {
		t.Error("an invalid form should not reach the save handler")
	}
	if !strings.HasPrefix(m.Status(), "[Error] Port") {
		t.Errorf("status = %q, want a port error", m.Status())
	}
	if !strings.Contains(m.View(), "[Error] Port") {
		t.Error("the error should be rendered in the form")
	}
}

func TestModel_Reload(t *testing.T) {
	m, path := newTestModel(t, config.DefaultSettings())

	onDisk := config.DefaultSettings()
	onDisk.Host = "10.0.0.5"
	if err := onDisk.Save(path); err != nil {
		t.Fatal(err)
	}

	_, cmd := press(m, keyOf(tea.KeyCtrlR))
	if cmd == nil {
		t.Fatal("reload returned no command")
	}
	next, _ := m.Update(cmd())
	m = next.(Model)

	if got := m.Value("host"); got != "10.0.0.5" {
		t.Errorf("host = %q after reload, want 10.0.0.5", got)
	}
}

func TestModel_ReloadCorruptFile(t *testing.T) {
	init := config.DefaultSettings()
	init.Port = 9000
	m, path := newTestModel(t, init)

	if err := os.WriteFile(path, []byte(`{"port": 9001,`), 0644); err != nil {
		t.Fatal(err)
	}

	_, cmd := press(m, keyOf(tea.KeyCtrlR))
	msg := cmd()
	if done, ok := msg.(LoadDoneMsg); !ok || done.Err == nil {
		t.Fatalf("reload of a corrupt file produced %#v, want LoadDoneMsg with Err", msg)
	}
	next, _ := m.Update(msg)
	m = next.(Model)

	if got := m.Value("port"); got != "8080" {
		t.Errorf("port = %q, want the default 8080", got)
	}
	want := "[Error] " + editor.LoadFailedMessage + ": "
	if !strings.HasPrefix(m.Status(), want) {
		t.Errorf("status = %q, want prefix %q", m.Status(), want)
	}
	if !strings.Contains(m.View(), editor.LoadFailedMessage) {
		t.Error("the load failure should be rendered in the form")
	}
	if !m.Dirty() {
		t.Error("defaults shown in place of the file should count as unsaved")
	}
}

func TestModel_QuitWithUnsavedChanges(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "low_mem")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m, cmd := press(m, keyOf(tea.KeyEsc))
	if cmd != nil {
		t.Fatal("esc with unsaved edits should ask for confirmation first")
	}
	if m.Status() != unsavedMessage {
		t.Errorf("status = %q, want %q", m.Status(), unsavedMessage)
	}

	// Any other key cancels the confirmation.
	m, _ = press(m, keyOf(tea.KeyDown))
	m, cmd = press(m, keyOf(tea.KeyEsc))
	if cmd != nil {
		t.Fatal("confirmation should restart after another key")
	}

	_, cmd = press(m, keyOf(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("second esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second esc should produce tea.QuitMsg")
	}
}

func TestModel_CtrlCQuitsWithUnsavedChanges(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "low_mem")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	_, cmd := press(m, keyOf(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c should quit immediately")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce tea.QuitMsg")
	}
}

func TestModel_SaveClearsDirty(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())
	m = focusOn(t, m, "no_half")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Dirty() {
		t.Fatal("toggling a checkbox should make the form dirty")
	}

	m, cmd := press(m, keyOf(tea.KeyCtrlS))
	next, _ := m.Update(saveResult(t, cmd))
	m = next.(Model)
	if m.Dirty() {
		t.Error("a successful save should clear the dirty state")
	}

	_, cmd = press(m, keyOf(tea.KeyEsc))
	if cmd == nil {
		t.Error("esc after saving should quit at once")
	}
}

func TestModel_InputInfo(t *testing.T) {
	dir := t.TempDir()
	init := config.DefaultSettings()
	init.Input = config.OptionalPath(dir)
	m, _ := newTestModel(t, init)

	msg := m.describeInput()()
	info, ok := msg.(InputInfoMsg)
	if !ok {
		t.Fatalf("describeInput() produced %T", msg)
	}
	if info.Info != "directory with 0 images" {
		t.Errorf("Info = %q", info.Info)
	}

	next, _ := m.Update(info)
	m = next.(Model)
	if !strings.Contains(m.View(), "directory with 0 images") {
		t.Error("input info should be rendered")
	}

	// Results for an outdated path are dropped.
	next, _ = m.Update(InputInfoMsg{Path: "/elsewhere", Info: "stale"})
	if next.(Model).inputInfo == "stale" {
		t.Error("stale input info should be ignored")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultSettings())

	m, cmd := press(m, keyOf(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should produce tea.QuitMsg")
	}
	if m.ctx.Err() == nil {
		t.Error("quitting should cancel background work")
	}
}

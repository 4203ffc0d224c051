package tui

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Gauthampro7/vedic-astrology-app/internal/chart"
	"github.com/Gauthampro7/vedic-astrology-app/internal/library"
	"github.com/Gauthampro7/vedic-astrology-app/internal/vacfile"
)

// Mode selects which screen the TUI shows.
type Mode int

const (
	ModeLibrary Mode = iota
	ModeForm
	ModeChart
)

// Deps bundles the backends the TUI drives.
type Deps struct {
	Assembler *chart.Assembler
	Files     *vacfile.Handler
	Index     *library.Index
	Watcher   *library.Watcher // optional; enables live refresh
	ChartsDir string
	Log       *zap.Logger
}

// Messages produced by background commands.
type (
	entriesMsg   []library.Entry
	chartMsg     *chart.Chart
	assembledMsg *chart.Chart
	changedMsg   library.Change
	watchDoneMsg struct{}
	errMsg       string
)

// AppModel is the root bubbletea model.
type AppModel struct {
	deps Deps
	keys KeyMap

	mode    Mode
	library LibraryView
	form    Form
	chart   ChartView

	width   int
	height  int
	errText string
}

// NewAppModel builds the root model starting on the library screen.
func NewAppModel(deps Deps) AppModel {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return AppModel{
		deps: deps,
		keys: DefaultKeyMap(),
		mode: ModeLibrary,
		form: NewForm(),
	}
}

// Init triggers the initial library scan and, when a watcher is wired,
// starts listening for chart-file changes.
func (m AppModel) Init() tea.Cmd {
	if m.deps.Watcher == nil {
		return m.refreshEntries()
	}
	return tea.Batch(m.refreshEntries(), m.waitForChange())
}

// waitForChange blocks on the watcher channel and surfaces the next change.
func (m AppModel) waitForChange() tea.Cmd {
	watcher := m.deps.Watcher
	return func() tea.Msg {
		change, ok := <-watcher.Changes
		if !ok {
			return watchDoneMsg{}
		}
		return changedMsg(change)
	}
}

// refreshEntries rescans the charts directory and reloads the index.
func (m AppModel) refreshEntries() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		if deps.Index == nil {
			return entriesMsg(nil)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := deps.Index.Rescan(ctx, deps.ChartsDir, deps.Files); err != nil {
			return errMsg(err.Error())
		}
		entries, err := deps.Index.List(ctx)
		if err != nil {
			return errMsg(err.Error())
		}
		return entriesMsg(entries)
	}
}

// openChart loads a saved chart file.
func (m AppModel) openChart(path string) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		c, ok := deps.Files.Load(path)
		if !ok {
			return errMsg("could not load " + filepath.Base(path))
		}
		return chartMsg(c)
	}
}

// calculate validates the form, assembles the chart, and saves it to the
// charts directory.
func (m AppModel) calculate() tea.Cmd {
	deps := m.deps
	form := m.form
	return func() tea.Msg {
		info, err := form.Info()
		if err != nil {
			return errMsg(err.Error())
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		c, err := deps.Assembler.Assemble(ctx, info)
		if err != nil {
			return errMsg(err.Error())
		}
		path := filepath.Join(deps.ChartsDir, chartFileName(info.Place, info.Date))
		if !deps.Files.Save(c, path) {
			deps.Log.Warn("chart assembled but not saved", zap.String("path", path))
		}
		return assembledMsg(c)
	}
}

// chartFileName derives a stable file name from place and date.
func chartFileName(place, date string) string {
	slug := strings.ToLower(place)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(strings.Join(strings.FieldsFunc(slug, func(r rune) bool { return r == '-' }), "-"), "-")
	return slug + "-" + strings.ReplaceAll(date, "/", "") + vacfile.Extension
}

// Update routes messages by mode.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case entriesMsg:
		m.library.Entries = msg
		if m.library.Cursor >= len(msg) {
			m.library.Cursor = 0
		}
		return m, nil

	case chartMsg:
		m.chart = ChartView{Chart: msg, Width: m.width}
		m.mode = ModeChart
		m.errText = ""
		return m, nil

	case assembledMsg:
		m.chart = ChartView{Chart: msg, Width: m.width}
		m.mode = ModeChart
		m.errText = ""
		return m, m.refreshEntries()

	case changedMsg:
		m.deps.Log.Debug("chart file changed", zap.String("path", msg.Path))
		return m, tea.Batch(m.refreshEntries(), m.waitForChange())

	case watchDoneMsg:
		return m, nil

	case errMsg:
		m.errText = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits; q quits everywhere except text entry.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeLibrary:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.library.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.library.MoveDown()
		case key.Matches(msg, m.keys.New):
			m.form = NewForm()
			m.mode = ModeForm
			m.errText = ""
		case key.Matches(msg, m.keys.Enter):
			if e, ok := m.library.Selected(); ok {
				return m, m.openChart(e.Path)
			}
		}
		return m, nil

	case ModeForm:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.mode = ModeLibrary
			m.errText = ""
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			return m, m.calculate()
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg, m.keys)
		return m, cmd

	case ModeChart:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.mode = ModeLibrary
			return m, m.refreshEntries()
		}
		return m, nil
	}
	return m, nil
}

// View renders the active screen plus any error line.
func (m AppModel) View() string {
	var body string
	switch m.mode {
	case ModeLibrary:
		body = m.library.View()
	case ModeForm:
		body = m.form.View()
	case ModeChart:
		body = m.chart.View() + "\n" + styleMuted.Render("esc: back · q: quit")
	}
	if m.errText != "" {
		body += "\n" + styleError.Render("✗ "+m.errText)
	}
	return body
}

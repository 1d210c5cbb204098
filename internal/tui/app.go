package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/skim/internal/core"
	skimerr "github.com/tessro/skim/internal/errors"
	"github.com/tessro/skim/internal/tui/components"
	"github.com/tessro/skim/internal/tui/styles"
)

// Focus represents which editor control has the keyboard
type Focus int

const (
	FocusText Focus = iota
	FocusRates
)

const errorDuration = 5 * time.Second

// Reader is the playback engine the UI drives
type Reader interface {
	core.Reader
	StepRate(up bool) int
	Choices() []int
	Upcoming(n int) []string
}

// Options configures the UI
type Options struct {
	Text         string
	AutoStart    bool
	Upcoming     int
	ShowProgress bool
	Inline       bool
}

// Model is the main TUI model
type Model struct {
	reader  Reader
	opts    Options
	width   int
	height  int
	focus   Focus
	reading bool

	// State
	snap     core.Snapshot
	upcoming []string
	updates  <-chan core.Snapshot
	cancel   func()

	// Components
	editor   textarea.Model
	wordView *components.WordView
	rates    *components.RatePicker

	// Overlays
	showHelp bool

	// Error handling
	lastError   error
	errorExpiry time.Time

	quitting bool
}

// NewModel creates a new TUI model subscribed to reader. With AutoStart and
// non-empty text, reading begins immediately.
func NewModel(reader Reader, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter or paste text to read..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(opts.Text)
	ta.Focus()

	updates, cancel := reader.Subscribe()

	m := Model{
		reader:   reader,
		opts:     opts,
		focus:    FocusText,
		snap:     reader.Snapshot(),
		updates:  updates,
		cancel:   cancel,
		editor:   ta,
		wordView: components.NewWordView(opts.ShowProgress),
		rates:    components.NewRatePicker(),
	}

	if opts.AutoStart && reader.Start(opts.Text) {
		m.reading = true
		m.editor.Blur()
	}
	return m
}

// Messages
type snapshotMsg core.Snapshot
type closedMsg struct{}

// waitForSnapshot delivers the next snapshot from the reader
func waitForSnapshot(updates <-chan core.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(snap)
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForSnapshot(m.updates))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(max(msg.Width-6, 10))
		m.editor.SetHeight(max(msg.Height-10, 3))
		return m, nil

	case snapshotMsg:
		m.snap = core.Snapshot(msg)
		m.upcoming = m.reader.Upcoming(m.opts.Upcoming)
		if time.Now().After(m.errorExpiry) {
			m.lastError = nil
		}
		return m, waitForSnapshot(m.updates)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if m.focus == FocusText && !m.reading {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (always work)
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	if m.reading {
		return m.handleReaderKey(msg)
	}
	return m.handleEditorKey(msg)
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.start()

	case "tab", "shift+tab":
		if m.focus == FocusText {
			m.focus = FocusRates
			m.editor.Blur()
			return m, nil
		}
		m.focus = FocusText
		return m, m.editor.Focus()
	}

	if m.focus == FocusText {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "?":
		m.showHelp = true
	case "enter":
		return m.start()
	case "right", "l", "+", "=":
		m.reader.StepRate(true)
	case "left", "h", "-":
		m.reader.StepRate(false)
	default:
		m.pickRate(msg.String())
	}
	return m, nil
}

func (m Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "?":
		m.showHelp = true

	case " ", "s":
		if snap := m.reader.Snapshot(); snap.IsPlaying() {
			m.reader.Stop()
		} else {
			m.reader.Resume()
		}

	case "r":
		m.reader.Reset()

	case "enter":
		return m.start()

	case "+", "=", "right", "l":
		m.reader.StepRate(true)

	case "-", "left", "h":
		m.reader.StepRate(false)

	case "esc", "e":
		m.reader.Stop()
		m.reading = false
		m.focus = FocusText
		return m, m.editor.Focus()

	default:
		m.pickRate(msg.String())
	}

	return m, nil
}

// pickRate selects the n-th rate choice for the digit keys 1-9
func (m *Model) pickRate(key string) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 {
		return
	}
	choices := m.reader.Choices()
	if n > len(choices) {
		return
	}
	if err := m.reader.SetRate(choices[n-1]); err != nil {
		m.setError(err)
	}
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.reader.Start(m.editor.Value()) {
		m.setError(skimerr.ErrEmptyText)
		return m, nil
	}
	m.reading = true
	m.editor.Blur()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.reader.Stop()
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

func (m *Model) setError(err error) {
	m.lastError = err
	m.errorExpiry = time.Now().Add(errorDuration)
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.reading {
		return m.renderReader()
	}
	return m.renderEditor()
}

func (m Model) renderReader() string {
	word := m.wordView.Render(m.snap, m.upcoming, m.width, m.height-2)
	return lipgloss.JoinVertical(lipgloss.Left, word, m.renderStatusBar(
		"space:stop/resume  r:reset  enter:restart  +/-:speed  1-7:wpm  esc:edit  ?:help"))
}

func (m Model) renderEditor() string {
	title := styles.PanelTitle("Text", m.focus == FocusText)
	editor := styles.Panel(m.focus == FocusText).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, m.editor.View()))

	picker := m.rates.Render(m.reader.Choices(), m.snap.Rate, m.focus == FocusRates)

	var hint string
	switch {
	case strings.TrimSpace(m.editor.Value()) == "":
		hint = "Enter text above to get started"
	case m.snap.Total > 0:
		current, total := m.snap.Position()
		hint = "Press ctrl+s to read from the start (last stopped at " +
			strconv.Itoa(current) + "/" + strconv.Itoa(total) + ")"
	default:
		hint = "Press ctrl+s to begin reading"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		editor,
		"",
		picker,
		"",
		styles.Muted.Render(hint),
	)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(
		"ctrl+s:start  tab:switch to rates  ←/→:speed  ctrl+c:quit"))
}

func (m Model) renderStatusBar(keys string) string {
	status := components.StatusLine(m.snap) + "  " + styles.Dim.Render(keys)

	if m.lastError != nil {
		status = styles.ErrorText.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Skim - Keyboard Shortcuts"
	divider := styles.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Editor
  ──────
  ctrl+s       Start reading
  Tab          Switch between text and rates
  ←/→          Slower/faster (rates focused)
  1-7          Pick a rate (rates focused)

  Reading
  ───────
  Space        Stop/resume
  r            Reset to the first word
  Enter        Restart from the editor text
  +/-          Faster/slower
  1-7          Pick a rate
  Esc          Back to the editor

  Global
  ──────
  ?            Toggle help
  q, ctrl+c    Quit

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

// Run starts the TUI application. The reader is stopped when the UI exits.
func Run(reader Reader, opts Options) error {
	model := NewModel(reader, opts)

	var programOpts []tea.ProgramOption
	if !opts.Inline {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	_, err := p.Run()
	reader.Stop()
	return err
}

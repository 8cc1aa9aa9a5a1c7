// Package tui provides the Bubble Tea model behind `pomobar watch`, a live
// preview of the widget payload for tuning Waybar styles.
package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/fakeyudi/pomobar/internal/history"
	"github.com/fakeyudi/pomobar/internal/timer"
	"github.com/fakeyudi/pomobar/internal/waybar"
)

// ── Styles ────────────

var (
	textStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2)

	classBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 2)

	// One accent color per payload class, loosely matching the starter CSS.
	classColors = map[string]lipgloss.Color{
		"work":     lipgloss.Color("204"),
		"break":    lipgloss.Color("114"),
		"paused":   lipgloss.Color("221"),
		"finished": lipgloss.Color("111"),
		"stopped":  lipgloss.Color("243"),
		"error":    lipgloss.Color("215"),
	}
)

// ── Key bindings ─────────────────

type keyMap struct {
	Toggle key.Binding
	Cycle  key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Cycle, k.Stop, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Cycle, k.Stop, k.Quit}}
}

var defaultKeys = keyMap{
	Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle")),
	Cycle:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle")),
	Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ── Messages ─────────────────

type tickMsg time.Time

// stateFileMsg signals that another invocation wrote the state file.
type stateFileMsg struct{}

type watcherErrMsg struct{ err error }

// ── Model ────────────────────

// Model is the root Bubble Tea model for the watch view.
type Model struct {
	store   timer.Store
	watcher *fsnotify.Watcher
	rec     timer.Record
	out     waybar.Output
	keys    keyMap
	help    help.Model
	lastErr error
}

// NewWatch builds the model and starts following the state file.
func NewWatch(store timer.Store) (Model, error) {
	path, err := timer.StatePath()
	if err != nil {
		return Model{}, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Model{}, err
	}
	// Watch the directory, not the file: saves go through a temp-file
	// rename, so the state file's inode changes on every write.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return Model{}, err
	}

	m := Model{
		store:   store,
		watcher: watcher,
		keys:    defaultKeys,
		help:    help.New(),
	}
	m.refresh(timer.CommandNone)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForFileEvent())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// waitForFileEvent blocks on the watcher until the state file changes.
func (m Model) waitForFileEvent() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Rename) {
					return stateFileMsg{}
				}
			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
				return watcherErrMsg{err}
			}
		}
	}
}

// refresh reloads state, applies cmd through the engine, renders, and
// persists when something actually changed. A plain tick only writes when
// the completion check fired, so the file is not churned every second.
func (m *Model) refresh(cmd timer.Command) {
	now := time.Now()
	rec, _ := m.store.Load()

	// Same completion accounting as the CLI dispatcher: once this refresh
	// persists the post-completion state, no later invocation can tell a
	// session ran out.
	completed := rec.RunState == timer.Running && rec.EndTime != nil && !now.Before(*rec.EndTime)

	next := timer.Apply(rec, cmd, now)
	if completed {
		if err := history.Append(string(rec.SessionType), now); err != nil {
			m.lastErr = err
		}
	}
	if cmd != timer.CommandNone || next.RunState != rec.RunState {
		if err := m.store.Save(next); err != nil {
			m.lastErr = err
		}
	}
	m.rec = next
	m.out = waybar.Render(next, now)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh(timer.CommandNone)
		return m, tick()

	case stateFileMsg:
		m.refresh(timer.CommandNone)
		return m, m.waitForFileEvent()

	case watcherErrMsg:
		m.lastErr = msg.err
		return m, m.waitForFileEvent()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			m.refresh(timer.CommandToggle)
		case key.Matches(msg, m.keys.Cycle):
			m.refresh(timer.CommandCycle)
		case key.Matches(msg, m.keys.Stop):
			m.refresh(timer.CommandStop)
		case key.Matches(msg, m.keys.Quit):
			m.watcher.Close()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	color, ok := classColors[m.out.Class]
	if !ok {
		color = lipgloss.Color("15")
	}

	lines := []string{
		"",
		textStyle.Foreground(color).Render(m.out.Text) + "  " +
			classBadgeStyle.Render(m.out.Class),
		"",
		tooltipStyle.Render(m.out.Tooltip),
		"",
	}
	if m.lastErr != nil {
		lines = append(lines, hintStyle.Render("warning: "+m.lastErr.Error()), "")
	}
	lines = append(lines, hintStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

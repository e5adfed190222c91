// Package tui is the interactive prompt: a command bar over the rendered
// log, with a ticking clock while an entry is running.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/punch/pkg/command"
	"tableflip.dev/punch/pkg/entry"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timeutil"
	"tableflip.dev/punch/pkg/tracker"
)

const noticeLimit = 3

type tickMsg time.Time

type watchMsg store.Event

// feed collects tracker signals emitted during one Apply so the model can
// react after the fact.
type feed struct {
	notices        []string
	clockCancelled bool
}

func (f *feed) Notify(message string) {
	f.notices = append(f.notices, message)
	if len(f.notices) > noticeLimit {
		f.notices = f.notices[len(f.notices)-noticeLimit:]
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg         *store.Config
	persistence store.Persistence

	tracker *tracker.Tracker
	feed    *feed
	watch   <-chan store.Event

	input   textinput.Model
	width   int
	height  int
	now     time.Time
	ticking bool
}

// New builds the interactive model around an already-loaded log.
func New(cfg *store.Config, p store.Persistence) Model {
	input := textinput.New()
	input.Placeholder = `start "sector" "project" "description"`
	input.Prompt = "> "
	input.Focus()

	f := &feed{}
	t := &tracker.Tracker{
		Notifier: f,
		Palette:  cfg,
		CancelClock: func() {
			f.clockCancelled = true
		},
	}
	t.OnChange = func() {
		if p != nil {
			if err := p.Rewrite(t.Entries); err != nil {
				f.Notify(fmt.Sprintf("save failed: %v", err))
			}
		}
		if err := cfg.Save(); err != nil {
			f.Notify(fmt.Sprintf("config save failed: %v", err))
		}
	}
	if p != nil {
		t.Entries = p.List(context.Background())
		t.ImportFunc = func() ([]*entry.Entry, error) {
			return store.ImportJSON(cfg.ExportPath)
		}
		t.ExportFunc = func(entries []*entry.Entry) error {
			return store.Export(entries, cfg.ExportPath)
		}
	}

	m := Model{
		cfg:         cfg,
		persistence: p,
		tracker:     t,
		feed:        f,
		input:       input,
		now:         time.Now(),
		ticking:     t.Running() != nil,
	}
	if p != nil {
		if ch, err := p.Watch(context.Background()); err == nil {
			m.watch = ch
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.tracker.Running() != nil {
		cmds = append(cmds, tickCmd())
	}
	if m.watch != nil {
		cmds = append(cmds, waitForWatch(m.watch))
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForWatch(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return watchMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.tracker.Running() == nil {
			m.ticking = false
			return m, nil
		}
		return m, tickCmd()

	case watchMsg:
		// External change to the store; reload unless we have unsaved local
		// mutations in flight (we persist synchronously, so reload is safe).
		if m.persistence != nil {
			m.tracker.Entries = m.persistence.List(context.Background())
		}
		return m, waitForWatch(m.watch)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()

	cmd, err := command.Parse(raw)
	if err != nil {
		// Unknown operations are rejected silently.
		return m, nil
	}

	m.feed.clockCancelled = false
	m.tracker.Apply(cmd)
	m.now = time.Now()

	if m.feed.clockCancelled {
		m.ticking = false
	}
	if m.tracker.Running() != nil && !m.ticking {
		m.ticking = true
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	styles := NewStyles(m.cfg.Background, m.cfg.Colour)

	var b strings.Builder
	b.WriteString(styles.Title.Render("punch"))
	b.WriteString("\n\n")

	b.WriteString(m.renderLog(styles))
	b.WriteString("\n")

	if running := m.tracker.Running(); running != nil {
		elapsed := timeutil.FormatClock(running.Duration(m.now))
		b.WriteString(styles.Clock.Render(fmt.Sprintf("%s %s", running.Label(), elapsed)))
		b.WriteString("\n")
	}

	for _, notice := range m.feed.notices {
		b.WriteString(styles.Notice.Render(notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(styles.Faint.Render("enter to run, esc to quit"))
	return b.String()
}

func (m Model) renderLog(styles Styles) string {
	entries := m.tracker.Entries
	if len(entries) == 0 {
		return styles.Faint.Render(" no entries yet") + "\n"
	}

	var b strings.Builder
	for i, e := range entries {
		end := e.End.String()
		if e.End.IsOpen() {
			end = "running"
		}
		line := fmt.Sprintf("%3d  %-12s %-12s %-24s %s → %s",
			i+1, e.Sector, e.Project, e.Description, e.Start.String(), end)
		if e.End.IsOpen() {
			b.WriteString(styles.Prompt.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the interactive program.
func Run(cfg *store.Config, p store.Persistence) error {
	prog := tea.NewProgram(New(cfg, p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matchbook-tui/matchbook/internal/notify"
	"github.com/matchbook-tui/matchbook/internal/prefs"
	"github.com/matchbook-tui/matchbook/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewMatches View = iota
	ViewContacts
)

// Options configure the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Resize    *notify.ResizeThrottle
	ThemeName string
	StartView string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	resize    *notify.ResizeThrottle
	prefsPath string

	theme Theme
	keys  keyMap

	view     View
	width    int
	height   int
	lastSize state.Dimensions
	ready    bool

	snapshot state.App
	selected int
}

// throttleExpiredMsg closes the resize throttle's quiet window.
type throttleExpiredMsg struct{}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	view := ViewMatches
	if opts.StartView == "contacts" {
		view = ViewContacts
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		resize:    opts.Resize,
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      defaultKeyMap(),
		view:      view,
		snapshot:  opts.Store.State(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		dims := state.Dimensions{Width: msg.Width, Height: msg.Height}
		m.lastSize = dims

		var cmd tea.Cmd
		if m.resize != nil && m.resize.Observe(dims) {
			cmd = tea.Tick(m.resize.Window(), func(time.Time) tea.Msg {
				return throttleExpiredMsg{}
			})
		}
		m.snapshot = m.store.State()
		return m, cmd

	case throttleExpiredMsg:
		if m.resize != nil {
			m.resize.Expire(m.lastSize)
		}
		m.snapshot = m.store.State()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchView):
		if m.view == ViewMatches {
			m.view = ViewContacts
		} else {
			m.view = ViewMatches
		}
		m.selected = 0
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.rowCount()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.DeleteMatch):
		if m.view == ViewMatches && m.selected < len(m.snapshot.Matches) {
			m.store.Dispatch(state.RemoveMatch(m.snapshot.Matches[m.selected].ID))
			m.snapshot = m.store.State()
			if m.selected >= len(m.snapshot.Matches) && m.selected > 0 {
				m.selected--
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) rowCount() int {
	if m.view == ViewMatches {
		return len(m.snapshot.Matches)
	}
	return len(m.snapshot.Contacts)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	view := "matches"
	if m.view == ViewContacts {
		view = "contacts"
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, View: view})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()
	var b strings.Builder

	title := "MATCHBOOK"
	if m.snapshot.MyUser.Name != "" {
		title += "  ·  " + m.snapshot.MyUser.Name
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.view == ViewMatches {
		b.WriteString(m.renderMatches(styles))
	} else {
		b.WriteString(m.renderContacts(styles))
	}

	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.footer()))
	return b.String()
}

func (m Model) renderMatches(styles Styles) string {
	if len(m.snapshot.Matches) == 0 {
		return styles.Muted.Render("  no matches yet")
	}

	var b strings.Builder
	for i, match := range m.snapshot.Matches {
		spec := m.snapshot.GameSpecs[match.SpecID]
		name := spec.Name
		if name == "" {
			name = match.SpecID
		}
		line := fmt.Sprintf("  %-20s %4d : %-4d %-12s %s",
			match.Opponent, match.MyScore, match.TheirScore, name,
			time.UnixMilli(match.LastUpdatedOn).Format("Jan 02 15:04"))
		if i == m.selected {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderContacts(styles Styles) string {
	if len(m.snapshot.Contacts) == 0 {
		return styles.Muted.Render("  no contacts")
	}

	phones := make([]string, 0, len(m.snapshot.Contacts))
	for phone := range m.snapshot.Contacts {
		phones = append(phones, phone)
	}
	sort.Strings(phones)

	var b strings.Builder
	for i, phone := range phones {
		c := m.snapshot.Contacts[phone]
		line := fmt.Sprintf("  %-24s %s", c.Name, c.Phone)
		if i == m.selected {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) footer() string {
	bindings := []key.Binding{
		m.keys.SwitchView, m.keys.Up, m.keys.Down,
		m.keys.DeleteMatch, m.keys.CycleTheme, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ·  ")
}

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Package pager shows rendered command output in a scrollable full-screen
// viewport.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/hn/app"
	"github.com/CrestNiraj12/hn/tui/common"
)

// openedMsg reports the result of opening the story URL.
type openedMsg struct {
	err error
}

// Model is the Bubble Tea model of the pager.
type Model struct {
	viewport viewport.Model
	content  string
	url      string
	launcher app.Launcher
	keys     common.KeyMap
	styles   common.Styles
	status   string
	ready    bool
}

// New builds a pager over content. url is opened by the Open binding when
// both it and launcher are set.
func New(content, url string, launcher app.Launcher, styles common.Styles) Model {
	keys := common.DefaultKeyMap()
	keys.Open.SetEnabled(url != "" && launcher != nil)
	return Model{
		content:  content,
		url:      url,
		launcher: launcher,
		keys:     keys,
		styles:   styles,
	}
}

// Run shows content in the alternate screen until the user quits.
func Run(content, url string, launcher app.Launcher, styles common.Styles) error {
	p := tea.NewProgram(New(content, url, launcher, styles), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One row is reserved for the status line.
		height := max(msg.Height-1, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = "open failed: " + msg.err.Error()
		} else {
			m.status = "opened " + m.url
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Open):
			return m, m.open()
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	parts := []string{fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100), m.keys.HelpLine()}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.styles.Status.Render(strings.Join(parts, "  "))
}

func (m Model) open() tea.Cmd {
	launcher, url := m.launcher, m.url
	return func() tea.Msg {
		return openedMsg{err: launcher.Open(url)}
	}
}

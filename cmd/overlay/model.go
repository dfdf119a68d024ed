package main

import (
	"fmt"
	"strings"

	"eventoverlay/process/monitor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type updateMsg monitor.Update

type reloadedMsg struct{ total int }

var statusColors = map[monitor.Status]lipgloss.Color{
	monitor.StatusWaiting:     lipgloss.Color("#6C757D"),
	monitor.StatusStabilizing: lipgloss.Color("#FFC107"),
	monitor.StatusProcessing:  lipgloss.Color("#17A2B8"),
	monitor.StatusFound:       lipgloss.Color("#28A745"),
	monitor.StatusUnknown:     lipgloss.Color("#DC3545"),
	monitor.StatusDisappeared: lipgloss.Color("#DC3545"),
	monitor.StatusError:       lipgloss.Color("#DC3545"),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2B2B2B")).Padding(0, 1)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	status   monitor.Status
	message  string
	title    string
	body     string
	suggest  []string
	notice   string
	width    int
	reloadFn func() int
}

func newModel(reload func() int) model {
	return model{
		status:   monitor.StatusWaiting,
		message:  "Waiting for next event...",
		title:    "Event Helper",
		reloadFn: reload,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		return m.handleUpdate(monitor.Update(msg)), nil
	case reloadedMsg:
		m.notice = fmt.Sprintf("knowledge base reloaded: %d events", msg.total)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.reloadFn == nil {
				return m, nil
			}
			fn := m.reloadFn
			return m, func() tea.Msg { return reloadedMsg{total: fn()} }
		}
	}
	return m, nil
}

func (m model) handleUpdate(u monitor.Update) model {
	m.status = u.Status
	m.message = u.Message
	m.notice = ""
	switch u.Status {
	case monitor.StatusFound, monitor.StatusUnknown:
		m.title = "Unknown Event"
		if names := u.Result.Names(); len(names) > 0 {
			m.title = names[0]
		}
		m.body = u.Rendered
		m.suggest = u.Suggestions
	case monitor.StatusWaiting:
		m.title = "Event Helper"
		m.body = ""
		m.suggest = nil
	}
	return m
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")
	color, ok := statusColors[m.status]
	if !ok {
		color = lipgloss.Color("#6C757D")
	}
	s.WriteString(lipgloss.NewStyle().Foreground(color).Render(m.message))
	s.WriteString("\n")
	if m.body != "" {
		panel := panelStyle
		if m.width > 4 {
			panel = panel.Width(m.width - 4)
		}
		s.WriteString(panel.Render(strings.TrimRight(m.body, "\n")))
		s.WriteString("\n")
	}
	if len(m.suggest) > 0 {
		s.WriteString("Did you mean: " + strings.Join(m.suggest, ", ") + "\n")
	}
	if m.notice != "" {
		s.WriteString(hintStyle.Render(m.notice) + "\n")
	}
	s.WriteString(hintStyle.Render("r: reload knowledge base  q: quit"))
	return s.String()
}

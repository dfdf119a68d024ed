package main

import (
	"testing"

	"eventoverlay/pkg/events"
	"eventoverlay/process/monitor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelShowsFoundEvent(t *testing.T) {
	var lesson events.EventRecord
	lesson.Name = "Dance Lesson"
	lesson.Options.Set("Option1", "Speed +5")
	kb := events.KnowledgeBase{Support: []events.EventRecord{lesson}}
	_, res := events.Lookup("Dance Lesson", kb)

	m := newModel(nil)
	next, cmd := m.Update(updateMsg(monitor.Update{
		Status: monitor.StatusFound, Message: "Event found", Raw: "Dance Lesson",
		Result: res, Rendered: events.Render("Dance Lesson", res),
	}))
	assert.Nil(t, cmd)
	view := next.View()
	assert.Contains(t, view, "Dance Lesson")
	assert.Contains(t, view, "Option1: Speed +5")
	assert.Contains(t, view, "Event found")

	next, _ = next.Update(updateMsg(monitor.Update{Status: monitor.StatusWaiting, Message: "Waiting for next event..."}))
	view = next.View()
	assert.NotContains(t, view, "Option1")
	assert.Contains(t, view, "Waiting for next event...")
}

func TestModelUnknownShowsSuggestions(t *testing.T) {
	m := newModel(nil)
	next, _ := m.Update(updateMsg(monitor.Update{
		Status: monitor.StatusUnknown, Message: "Unknown event", Raw: "Dance Lessn",
		Rendered: events.Render("Dance Lessn", events.MatchResult{}), Suggestions: []string{"Dance Lesson"},
	}))
	view := next.View()
	assert.Contains(t, view, "Unknown Event")
	assert.Contains(t, view, "Did you mean: Dance Lesson")
}

func TestModelKeys(t *testing.T) {
	calls := 0
	m := newModel(func() int { calls++; return 42 })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, reloadedMsg{total: 42}, msg)
	assert.Equal(t, 1, calls)

	next, _ := m.Update(msg)
	assert.Contains(t, next.View(), "knowledge base reloaded: 42 events")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

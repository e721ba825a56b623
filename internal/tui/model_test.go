package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

func newTestBrowser(t *testing.T, sess session.Session) Browser {
	t.Helper()
	store := session.NewMemoryStore()
	if !sess.IsZero() {
		require.NoError(t, store.Set(sess))
	}
	return NewBrowser(nil, store)
}

func userSession() session.Session {
	return session.Session{Token: "tok", Role: session.RoleUser, UserID: "u-1", Email: "u@x"}
}

func sampleEvents() []events.Event {
	return []events.Event{
		{ID: "ev-1", Title: "Standup", Date: "2026-09-01", StartTime: "10:00", EndTime: "10:15", Location: "Hall A",
			RSVPs: []events.RSVP{{UserID: "u-1", Status: events.StatusGoing}}},
		{ID: "ev-2", Title: "Retro", Date: "2026-09-02", StartTime: "15:00", EndTime: "16:00", Location: "Hall B"},
	}
}

func TestBrowser_LoadedPopulatesRows(t *testing.T) {
	b := newTestBrowser(t, userSession())

	model, _ := b.Update(eventsLoadedMsg{list: sampleEvents()})
	b = model.(Browser)

	assert.False(t, b.loading)
	view := b.View()
	assert.Contains(t, view, "Standup")
	assert.Contains(t, view, "going", "own RSVP status is shown")
}

func TestBrowser_EmptyListShowsNoEventsFound(t *testing.T) {
	b := newTestBrowser(t, userSession())

	model, _ := b.Update(eventsLoadedMsg{list: []events.Event{}})
	b = model.(Browser)

	view := b.View()
	assert.Contains(t, view, "No events found")
	assert.NotContains(t, strings.ToLower(view), "error")
}

func TestBrowser_MutationDoneTriggersRefetch(t *testing.T) {
	b := newTestBrowser(t, userSession())
	model, _ := b.Update(eventsLoadedMsg{list: sampleEvents()})
	b = model.(Browser)

	model, cmd := b.Update(mutationDoneMsg{note: "RSVP updated"})
	b = model.(Browser)

	assert.True(t, b.loading, "a completed mutation flips back to loading")
	assert.NotNil(t, cmd, "a completed mutation schedules the list re-fetch")
	assert.Equal(t, "RSVP updated", b.status)
}

func TestBrowser_MutationFailureLeavesRowsUntouched(t *testing.T) {
	b := newTestBrowser(t, userSession())
	model, _ := b.Update(eventsLoadedMsg{list: sampleEvents()})
	b = model.(Browser)

	err := errors.New(errors.ErrCodeValidationRejected, "Date is required")
	model, cmd := b.Update(mutationFailedMsg{err: err})
	b = model.(Browser)

	assert.Nil(t, cmd, "a failed mutation must not re-fetch or patch anything")
	assert.Len(t, b.list, 2, "displayed events unchanged")
	assert.Equal(t, "Date is required", b.status)
	assert.Contains(t, b.View(), "Standup")
}

func TestBrowser_LoadFailureKeepsPriorRows(t *testing.T) {
	b := newTestBrowser(t, userSession())
	model, _ := b.Update(eventsLoadedMsg{list: sampleEvents()})
	b = model.(Browser)

	model, _ = b.Update(loadFailedMsg{err: errors.New(errors.ErrCodeServerInternal, "Failed to fetch events")})
	b = model.(Browser)

	assert.Len(t, b.list, 2)
	assert.Equal(t, "Failed to fetch events", b.status)
}

func TestBrowser_RSVPKeysDeniedWhenLoggedOut(t *testing.T) {
	b := newTestBrowser(t, session.Session{})
	model, _ := b.Update(eventsLoadedMsg{list: sampleEvents()})
	b = model.(Browser)

	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	b = model.(Browser)

	assert.Nil(t, cmd, "logged-out RSVP must not dispatch a request")
	assert.Equal(t, "Log in to RSVP", b.status)
}

func TestBrowser_DeleteDeniedForUserRole(t *testing.T) {
	b := newTestBrowser(t, userSession())
	model, _ := b.Update(eventsLoadedMsg{list: sampleEvents()})
	b = model.(Browser)

	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	b = model.(Browser)

	assert.Nil(t, cmd, "non-admin delete must not dispatch a request")
	assert.Equal(t, "Admin access required to delete events", b.status)
}

func TestBrowser_QuitKeys(t *testing.T) {
	b := newTestBrowser(t, userSession())

	model, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	b = model.(Browser)

	assert.True(t, b.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, b.View())
}

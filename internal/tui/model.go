// Package tui contains the interactive surfaces of the client: the
// huh forms used by commands and the bubbletea events browser.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Devduttshar/eventPlanner/internal/authz"
	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// Messages exchanged with the runtime.

type eventsLoadedMsg struct {
	list []events.Event
}

type loadFailedMsg struct {
	err error
}

// mutationDoneMsg reports a completed RSVP or delete. The note is shown
// in the status bar; the list itself comes from the refresh it triggers.
type mutationDoneMsg struct {
	note string
}

type mutationFailedMsg struct {
	err error
}

// Browser is the interactive events page. Every completed mutation
// schedules a full list re-fetch; a failed mutation changes nothing but
// the status line.
type Browser struct {
	svc  *events.Service
	sess session.Reader

	table   table.Model
	spinner spinner.Model

	list     []events.Event
	loading  bool
	status   string
	width    int
	height   int
	quitting bool

	styles Styles
}

// NewBrowser creates the events browser over the synchronization layer.
func NewBrowser(svc *events.Service, sess session.Reader) Browser {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	columns := []table.Column{
		{Title: "Title", Width: 28},
		{Title: "Date", Width: 12},
		{Title: "Time", Width: 13},
		{Title: "Location", Width: 18},
		{Title: "Your RSVP", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Browser{
		svc:     svc,
		sess:    sess,
		table:   t,
		spinner: sp,
		loading: true,
		styles:  styles,
	}
}

// Init starts the spinner and the first fetch.
func (b Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.fetchCmd())
}

// fetchCmd re-fetches the full list. It is the only way rows change.
func (b Browser) fetchCmd() tea.Cmd {
	svc := b.svc
	return func() tea.Msg {
		list, err := svc.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return eventsLoadedMsg{list: list}
	}
}

func (b Browser) rsvpCmd(eventID string, status events.Status) tea.Cmd {
	svc := b.svc
	return func() tea.Msg {
		if err := svc.SetRSVP(context.Background(), eventID, status); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{note: "RSVP updated"}
	}
}

func (b Browser) deleteCmd(eventID string) tea.Cmd {
	svc := b.svc
	return func() tea.Msg {
		if err := svc.Delete(context.Background(), eventID); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{note: "Event deleted"}
	}
}

// selected returns the event under the cursor, nil when the list is empty.
func (b Browser) selected() *events.Event {
	idx := b.table.Cursor()
	if idx < 0 || idx >= len(b.list) {
		return nil
	}
	return &b.list[idx]
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case eventsLoadedMsg:
		b.loading = false
		b.list = msg.list
		b.table.SetRows(b.rows())
		return b, nil

	case loadFailedMsg:
		// Prior rows stay; a failed fetch never blanks the page.
		b.loading = false
		b.status = errors.UserMessage(msg.err)
		return b, nil

	case mutationDoneMsg:
		// Refresh-after-write: the list is re-fetched, never patched.
		b.loading = true
		b.status = msg.note
		return b, tea.Batch(b.spinner.Tick, b.fetchCmd())

	case mutationFailedMsg:
		b.status = errors.UserMessage(msg.err)
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		b.quitting = true
		return b, tea.Quit

	case "r":
		b.loading = true
		b.status = ""
		return b, tea.Batch(b.spinner.Tick, b.fetchCmd())

	case "g", "m", "n":
		ev := b.selected()
		if ev == nil {
			return b, nil
		}
		if !authz.CanAccess(b.sess.Role(), authz.ActionRSVP) {
			b.status = "Log in to RSVP"
			return b, nil
		}
		status, err := events.ParseStatus(msg.String())
		if err != nil {
			return b, nil
		}
		return b, b.rsvpCmd(ev.ID, status)

	case "d":
		ev := b.selected()
		if ev == nil {
			return b, nil
		}
		if !authz.CanAccess(b.sess.Role(), authz.ActionDelete) {
			b.status = "Admin access required to delete events"
			return b, nil
		}
		return b, b.deleteCmd(ev.ID)
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b Browser) rows() []table.Row {
	userID := b.sess.Get().UserID

	rows := make([]table.Row, 0, len(b.list))
	for _, ev := range b.list {
		mine := string(ev.RSVPFor(userID))
		if mine == "" {
			mine = "-"
		}
		rows = append(rows, table.Row{
			ev.Title,
			ev.Date,
			ev.StartTime + "-" + ev.EndTime,
			ev.Location,
			mine,
		})
	}
	return rows
}

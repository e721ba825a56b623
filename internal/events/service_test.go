package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devduttshar/eventPlanner/internal/api"
	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// fakeBackend is a minimal in-memory event API used to exercise the
// synchronization contract end to end: mutations only become visible
// through a subsequent list fetch, exactly like the real server.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int
	events map[string]*Event
	order  []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1, events: map[string]*Event{}}
}

func (f *fakeBackend) addEvent(title string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.events[id] = &Event{ID: id, Title: title, Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00", Location: "Hall A"}
	f.order = append(f.order, id)
	return id
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		rest := strings.TrimPrefix(r.URL.Path, "/events/")
		switch {
		case rest == "" && r.Method == http.MethodGet:
			list := []Event{}
			for _, id := range f.order {
				list = append(list, *f.events[id])
			}
			json.NewEncoder(w).Encode(map[string]any{"events": list})

		case rest == "" && r.Method == http.MethodPost:
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "invalid payload"})
				return
			}
			if r.FormValue("date") == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "Date is required"})
				return
			}
			id := fmt.Sprintf("ev-%d", f.nextID)
			f.nextID++
			ev := &Event{
				ID:        id,
				Title:     r.FormValue("title"),
				Date:      r.FormValue("date"),
				StartTime: r.FormValue("startTime"),
				EndTime:   r.FormValue("endTime"),
				Location:  r.FormValue("location"),
			}
			f.events[id] = ev
			f.order = append(f.order, id)
			json.NewEncoder(w).Encode(ev)

		case strings.HasSuffix(rest, "/rsvp") && r.Method == http.MethodPost:
			id := strings.TrimSuffix(rest, "/rsvp")
			ev, ok := f.events[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "Event not found"})
				return
			}
			var body struct {
				Status Status `json:"status"`
			}
			json.NewDecoder(r.Body).Decode(&body)

			// Idempotent upsert keyed by the bearer identity.
			userID := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			for i := range ev.RSVPs {
				if ev.RSVPs[i].UserID == userID {
					ev.RSVPs[i].Status = body.Status
					ev.RSVPs[i].RespondedAt = time.Now()
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			ev.RSVPs = append(ev.RSVPs, RSVP{UserID: userID, Status: body.Status, RespondedAt: time.Now()})
			w.WriteHeader(http.StatusOK)

		case strings.HasSuffix(rest, "/rsvps") && r.Method == http.MethodGet:
			id := strings.TrimSuffix(rest, "/rsvps")
			ev, ok := f.events[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "Event not found"})
				return
			}
			rows := []Attendee{}
			for _, r := range ev.RSVPs {
				a := Attendee{ID: "rsvp-" + r.UserID, Status: r.Status, RespondedAt: r.RespondedAt}
				a.User.Name = r.UserID
				rows = append(rows, a)
			}
			json.NewEncoder(w).Encode(map[string]any{"rsvps": rows})

		case r.Method == http.MethodDelete:
			if _, ok := f.events[rest]; !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "Event not found"})
				return
			}
			delete(f.events, rest)
			for i, id := range f.order {
				if id == rest {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return mux
}

func newTestService(t *testing.T, handler http.Handler, token string) (*Service, func()) {
	t.Helper()
	server := httptest.NewServer(handler)

	store := session.NewMemoryStore()
	if token != "" {
		require.NoError(t, store.Set(session.Session{Token: token, Role: session.RoleUser, UserID: token, Email: token + "@x"}))
	}

	return NewService(api.NewClient(server.URL, store, nil), nil), server.Close
}

func TestList_WrappedAndEmpty(t *testing.T) {
	backend := newFakeBackend()
	svc, done := newTestService(t, backend.handler(), "u-1")
	defer done()

	// Empty collection is a valid result, not an error.
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	backend.addEvent("Standup")
	backend.addEvent("Retro")

	list, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Standup", list[0].Title)
	assert.Equal(t, "Retro", list[1].Title)
}

func TestList_BareArrayShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"ev-9","title":"Picnic"}]`))
	}))
	defer server.Close()

	svc := NewService(api.NewClient(server.URL, session.NewMemoryStore(), nil), nil)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ev-9", list[0].ID)
}

func TestCreate_ServerMessageSurfacedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Date is required"}`))
	}))
	defer server.Close()

	svc := NewService(api.NewClient(server.URL, session.NewMemoryStore(), nil), nil)
	_, err := svc.Create(context.Background(), validFields(), &ImageFile{Name: "a.png", Content: strings.NewReader("img")})
	require.Error(t, err)

	assert.Equal(t, "Date is required", errors.UserMessage(err))
	assert.True(t, errors.IsValidation(err))
}

func validFields() Fields {
	return Fields{
		Title:       "Launch",
		Description: "Launch party for the new release",
		Date:        "2026-09-01",
		StartTime:   "18:00",
		EndTime:     "21:00",
		Location:    "Rooftop",
	}
}

func TestCreate_RefreshAfterWriteShowsEvent(t *testing.T) {
	backend := newFakeBackend()
	svc, done := newTestService(t, backend.handler(), "admin-1")
	defer done()

	created, err := svc.Create(context.Background(), validFields(), &ImageFile{Name: "a.png", Content: strings.NewReader("img")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Launch", list[0].Title)
}

func TestCreate_RequiresImage(t *testing.T) {
	svc := NewService(api.NewClient("http://unused", session.NewMemoryStore(), nil), nil)
	_, err := svc.Create(context.Background(), validFields(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestSetRSVP_UpsertKeepsOneRecord(t *testing.T) {
	backend := newFakeBackend()
	id := backend.addEvent("Meetup")

	svc, done := newTestService(t, backend.handler(), "u-7")
	defer done()

	require.NoError(t, svc.SetRSVP(context.Background(), id, StatusGoing))
	require.NoError(t, svc.SetRSVP(context.Background(), id, StatusMaybe))

	// Refresh-after-write: the list, not the mutation response, is
	// authoritative.
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].RSVPs, 1, "upsert must leave exactly one record per user")
	assert.Equal(t, StatusMaybe, list[0].RSVPs[0].Status)
	assert.Equal(t, StatusMaybe, list[0].RSVPFor("u-7"))
}

func TestSetRSVP_InvalidStatusRejectedLocally(t *testing.T) {
	svc := NewService(api.NewClient("http://unused", session.NewMemoryStore(), nil), nil)
	err := svc.SetRSVP(context.Background(), "ev-1", Status("attending"))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestDelete_CascadesAndSubsequentReadsFail(t *testing.T) {
	backend := newFakeBackend()
	id := backend.addEvent("Doomed")

	svc, done := newTestService(t, backend.handler(), "admin-1")
	defer done()

	require.NoError(t, svc.Delete(context.Background(), id))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "deleted event must not appear in the refreshed list")

	_, err = svc.Rsvps(context.Background(), id)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "reading RSVPs of a deleted event must be a not-found failure")
}

func TestRsvps_DecodesWrapper(t *testing.T) {
	backend := newFakeBackend()
	id := backend.addEvent("Quarterly")

	svc, done := newTestService(t, backend.handler(), "u-3")
	defer done()

	require.NoError(t, svc.SetRSVP(context.Background(), id, StatusGoing))

	rows, err := svc.Rsvps(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusGoing, rows[0].Status)
	assert.Equal(t, "u-3", rows[0].User.Name)
}

func TestFail_StatusTaxonomy(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, errors.IsAuth},
		{http.StatusForbidden, errors.IsAuth},
		{http.StatusNotFound, errors.IsNotFound},
		{http.StatusBadRequest, errors.IsValidation},
		{http.StatusInternalServerError, errors.IsServer},
		{http.StatusBadGateway, errors.IsServer},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			svc := NewService(api.NewClient(server.URL, session.NewMemoryStore(), nil), nil)
			_, err := svc.List(context.Background())
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestFieldsValidate(t *testing.T) {
	f := validFields()
	require.NoError(t, f.Validate())

	f.StartTime, f.EndTime = "21:00", "18:00"
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, errors.UserMessage(err), "before end time")

	f = validFields()
	f.Date = ""
	require.Error(t, f.Validate())

	f = validFields()
	f.StartTime = "6pm"
	require.Error(t, f.Validate())
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"going": StatusGoing, "g": StatusGoing,
		"maybe": StatusMaybe, "m": StatusMaybe,
		"not_going": StatusNotGoing, "not-going": StatusNotGoing, "n": StatusNotGoing,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatus("attending")
	require.Error(t, err)
}

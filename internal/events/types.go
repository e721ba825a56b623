package events

import (
	"time"

	"github.com/Devduttshar/eventPlanner/internal/errors"
)

// Status is a user's attendance response to an event.
type Status string

const (
	StatusGoing    Status = "going"
	StatusMaybe    Status = "maybe"
	StatusNotGoing Status = "not_going"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusGoing || s == StatusMaybe || s == StatusNotGoing
}

// ParseStatus parses a status string, accepting common aliases.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "going", "g":
		return StatusGoing, nil
	case "maybe", "m":
		return StatusMaybe, nil
	case "not_going", "not-going", "n":
		return StatusNotGoing, nil
	default:
		return "", errors.New(errors.ErrCodeValidationInput,
			"RSVP status must be one of: going, maybe, not_going")
	}
}

// RSVP is one user's response on an event. The server keeps at most one
// per (event, user) pair; setting a new status replaces the old one.
type RSVP struct {
	UserID      string    `json:"userId"`
	Status      Status    `json:"status"`
	RespondedAt time.Time `json:"updatedAt"`
}

// Event is the canonical event record. ID is the one identifier used
// throughout the client; the wire name is "_id".
type Event struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	ImageURL    string `json:"image"`
	RSVPs       []RSVP `json:"rsvps"`
}

// RSVPFor returns the given user's RSVP status on the event, empty if
// the user has not responded.
func (e Event) RSVPFor(userID string) Status {
	for _, r := range e.RSVPs {
		if r.UserID == userID {
			return r.Status
		}
	}
	return ""
}

// Attendee is one row of the admin RSVP report for an event.
type Attendee struct {
	ID   string `json:"_id"`
	User struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Status      Status    `json:"status"`
	RespondedAt time.Time `json:"updatedAt"`
}

// Fields is the mutable part of an event submitted on create and update.
type Fields struct {
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
}

// timeLayout is the time-of-day format accepted for start and end times.
const timeLayout = "15:04"

// Validate checks the fields before submission. The start time must
// precede the end time; the server re-validates everything else.
func (f Fields) Validate() error {
	if f.Title == "" {
		return errors.New(errors.ErrCodeValidationInput, "Title is required")
	}
	if f.Description == "" {
		return errors.New(errors.ErrCodeValidationInput, "Description is required")
	}
	if f.Date == "" {
		return errors.New(errors.ErrCodeValidationInput, "Date is required")
	}
	if f.Location == "" {
		return errors.New(errors.ErrCodeValidationInput, "Location is required")
	}

	start, err := time.Parse(timeLayout, f.StartTime)
	if err != nil {
		return errors.New(errors.ErrCodeValidationInput, "Start time must be in HH:MM format")
	}
	end, err := time.Parse(timeLayout, f.EndTime)
	if err != nil {
		return errors.New(errors.ErrCodeValidationInput, "End time must be in HH:MM format")
	}
	if !start.Before(end) {
		return errors.New(errors.ErrCodeValidationInput, "Start time must be before end time")
	}
	return nil
}

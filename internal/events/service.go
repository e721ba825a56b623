// Package events is the synchronization layer between pages and the
// event resource of the remote API.
//
// Refresh-after-write is the correctness contract of this layer: after
// any successful mutation (Create, Update, Delete, SetRSVP) the owning
// page must re-fetch the full list instead of patching its local state.
// Mutation responses are never authoritative for subsequent renders;
// the re-fetched list is. This trades a little latency for strict
// consistency with the server and avoids client-side merge bugs.
package events

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Devduttshar/eventPlanner/internal/api"
	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/log"
)

// ImageFile is a file reference submitted with an event.
type ImageFile struct {
	Name    string
	Content io.Reader
}

// Service exposes the event operations. Role enforcement for admin
// operations happens server-side; the service forwards whatever the
// caller asks for and translates failures.
type Service struct {
	api    *api.Client
	logger *log.Logger
}

// NewService creates the synchronization layer over the given gateway.
func NewService(client *api.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Service{api: client, logger: logger}
}

// List fetches the full event collection, in server order. An empty
// collection is a valid result, not an error. Both a bare array and a
// {"events": [...]} wrapper are accepted.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	resp, err := s.api.Get(ctx, "/events/")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, s.fail(resp, "Failed to fetch events")
	}
	return decodeEventList(resp)
}

// ListMine fetches only the events the current user has RSVP'd to.
func (s *Service) ListMine(ctx context.Context) ([]Event, error) {
	resp, err := s.api.Get(ctx, "/events/userEvents")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, s.fail(resp, "Failed to fetch user events")
	}
	return decodeEventList(resp)
}

// Create submits a new event as a multipart payload. Admin-only,
// enforced server-side. The caller must re-fetch the list afterwards.
func (s *Service) Create(ctx context.Context, fields Fields, image *ImageFile) (Event, error) {
	if err := fields.Validate(); err != nil {
		return Event{}, err
	}
	if image == nil {
		return Event{}, errors.New(errors.ErrCodeValidationInput, "Image is required")
	}

	body, contentType, err := multipartBody(fields, image)
	if err != nil {
		return Event{}, err
	}

	header := http.Header{}
	header.Set("Content-Type", contentType)

	resp, err := s.api.Do(ctx, http.MethodPost, "/events/", body, header)
	if err != nil {
		return Event{}, err
	}
	if !resp.OK() {
		return Event{}, s.fail(resp, "Failed to create event")
	}

	var created Event
	if err := resp.DecodeJSON(&created); err != nil {
		return Event{}, err
	}
	return created, nil
}

// Update submits changed fields for an event as a multipart payload.
// The image is optional; omitting it keeps the stored one. The caller
// must re-fetch the list afterwards.
func (s *Service) Update(ctx context.Context, id string, fields Fields, image *ImageFile) (Event, error) {
	if err := fields.Validate(); err != nil {
		return Event{}, err
	}

	body, contentType, err := multipartBody(fields, image)
	if err != nil {
		return Event{}, err
	}

	header := http.Header{}
	header.Set("Content-Type", contentType)

	resp, err := s.api.Do(ctx, http.MethodPut, "/events/"+id, body, header)
	if err != nil {
		return Event{}, err
	}
	if !resp.OK() {
		return Event{}, s.fail(resp, "Failed to update event")
	}

	var updated Event
	if err := resp.DecodeJSON(&updated); err != nil {
		return Event{}, err
	}
	return updated, nil
}

// Delete removes an event. The server cascades its RSVP collection.
// The caller must re-fetch the list afterwards.
func (s *Service) Delete(ctx context.Context, id string) error {
	resp, err := s.api.Delete(ctx, "/events/"+id)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return s.fail(resp, "Failed to delete event")
	}
	return nil
}

// SetRSVP upserts the current user's RSVP on an event; the server keeps
// at most one response per user. Changing it never affects other users'
// RSVPs. The caller must re-fetch the list afterwards.
func (s *Service) SetRSVP(ctx context.Context, eventID string, status Status) error {
	if !status.Valid() {
		return errors.New(errors.ErrCodeValidationInput,
			"RSVP status must be one of: going, maybe, not_going")
	}

	resp, err := s.api.DoJSON(ctx, http.MethodPost, "/events/"+eventID+"/rsvp", map[string]Status{"status": status})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return s.fail(resp, "Failed to update RSVP status")
	}
	return nil
}

// Rsvps fetches the attendee list for an event, in server order.
// Admin-only, enforced server-side.
func (s *Service) Rsvps(ctx context.Context, eventID string) ([]Attendee, error) {
	resp, err := s.api.Get(ctx, "/events/"+eventID+"/rsvps")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, s.fail(resp, "Failed to fetch event RSVPs")
	}

	var payload struct {
		Rsvps []Attendee `json:"rsvps"`
	}
	if err := resp.DecodeJSON(&payload); err != nil {
		return nil, err
	}
	return payload.Rsvps, nil
}

// fail translates an HTTP error response into a single typed error
// carrying one human-readable message: the server's when it supplies
// one, the per-operation fallback otherwise.
func (s *Service) fail(resp *api.Response, fallback string) error {
	msg := resp.Message(fallback)

	var err error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		err = errors.New(errors.ErrCodeAuthUnauthorized, msg)
	case resp.StatusCode == http.StatusForbidden:
		err = errors.New(errors.ErrCodeAuthForbidden, msg)
	case resp.StatusCode == http.StatusNotFound:
		err = errors.New(errors.ErrCodeEventNotFound, msg)
	case resp.StatusCode >= 500:
		err = errors.New(errors.ErrCodeServerInternal, msg)
	default:
		err = errors.New(errors.ErrCodeValidationRejected, msg)
	}

	s.logger.WithError(err).Debug("event operation rejected", "status", resp.StatusCode)
	return err
}

// decodeEventList accepts both response shapes the API serves for
// collections: a bare array and an {"events": [...]} wrapper.
func decodeEventList(resp *api.Response) ([]Event, error) {
	trimmed := bytes.TrimSpace(resp.Body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Event
		if err := resp.DecodeJSON(&list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var wrapper struct {
		Events []Event `json:"events"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, err
	}
	if wrapper.Events == nil {
		return []Event{}, nil
	}
	return wrapper.Events, nil
}

// multipartBody builds the multipart payload for create and update.
// Field names match the API contract: title, description, date,
// startTime, endTime, location, image.
func multipartBody(fields Fields, image *ImageFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	parts := map[string]string{
		"title":       fields.Title,
		"description": fields.Description,
		"date":        fields.Date,
		"startTime":   fields.StartTime,
		"endTime":     fields.EndTime,
		"location":    fields.Location,
	}
	for name, value := range parts {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeValidationInput, "failed to encode event fields", err)
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", image.Name)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeValidationInput, "failed to attach image", err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read image file", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeValidationInput, "failed to finalize payload", err)
	}
	return &buf, w.FormDataContentType(), nil
}

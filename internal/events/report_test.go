package events

import (
	"context"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/Devduttshar/eventPlanner/internal/api"
	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

func TestReport_SavesOpaquePayload(t *testing.T) {
	payload := []byte(`{"rsvps":[{"status":"going"}],"totals":{"going":1}}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/ev-1/report", r.URL.Path)
		w.Write(payload)
	}))
	defer server.Close()

	svc := NewService(api.NewClient(server.URL, session.NewMemoryStore(), nil), nil)
	dir := t.TempDir()

	report, err := svc.Report(context.Background(), "ev-1", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "event-report-ev-1.json"), report.Path)
	assert.Equal(t, int64(len(payload)), report.Size)

	sum := blake3.Sum256(payload)
	assert.Equal(t, hex.EncodeToString(sum[:]), report.Digest)

	// The payload is opaque: stored byte for byte, never interpreted.
	saved, err := os.ReadFile(report.Path)
	require.NoError(t, err)
	assert.Equal(t, payload, saved)
}

func TestReport_ErrorStatusTranslated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Admin access required"}`))
	}))
	defer server.Close()

	svc := NewService(api.NewClient(server.URL, session.NewMemoryStore(), nil), nil)
	_, err := svc.Report(context.Background(), "ev-1", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsAuth(err))
	assert.Equal(t, "Admin access required", errors.UserMessage(err))
}

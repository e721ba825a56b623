package events

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/Devduttshar/eventPlanner/internal/errors"
)

// ReportFile describes a downloaded event report. The payload is
// opaque; the client only stores it and records an integrity digest.
type ReportFile struct {
	Path   string
	Size   int64
	Digest string // blake3, hex
}

// Report downloads the admin report for an event into dir as
// event-report-<id>.json. Admin-only, enforced server-side.
func (s *Service) Report(ctx context.Context, eventID, dir string) (ReportFile, error) {
	resp, err := s.api.Get(ctx, "/events/"+eventID+"/report")
	if err != nil {
		return ReportFile{}, err
	}
	if !resp.OK() {
		return ReportFile{}, s.fail(resp, "Failed to generate event report")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ReportFile{}, errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create report directory", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("event-report-%s.json", eventID))
	if err := os.WriteFile(path, resp.Body, 0o644); err != nil {
		return ReportFile{}, errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to save event report", err)
	}

	sum := blake3.Sum256(resp.Body)
	report := ReportFile{
		Path:   path,
		Size:   int64(len(resp.Body)),
		Digest: hex.EncodeToString(sum[:]),
	}

	s.logger.Info("event report saved",
		"event_id", eventID, "path", report.Path,
		"bytes", report.Size, "blake3", report.Digest)

	return report, nil
}

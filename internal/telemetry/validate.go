package telemetry

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/pitwall/internal/errors"
)

// Validate checks the aerodynamic payload. Every sample needs a label and
// every flagged component an identifier.
func (a AerodynamicData) Validate() error {
	for i, s := range a.Performance {
		if strings.TrimSpace(s.Label) == "" {
			return errors.NewValidationError("sample label cannot be empty").
				WithField(fmt.Sprintf("performance[%d].name", i))
		}
	}
	for i, c := range a.Flagged {
		if strings.TrimSpace(c.Identifier) == "" {
			return errors.NewValidationError("component identifier cannot be empty").
				WithField(fmt.Sprintf("flagged[%d].id", i))
		}
	}
	return nil
}

// Validate checks that event ids are unique within the payload.
func (t TelemetryData) Validate() error {
	seen := make(map[int]bool, len(t.Events))
	for i, ev := range t.Events {
		if seen[ev.ID] {
			return errors.NewValidationError("duplicate event id").
				WithField(fmt.Sprintf("events[%d].id", i)).
				WithValue(ev.ID)
		}
		seen[ev.ID] = true
	}
	return nil
}

// Validate checks both payloads of a snapshot.
func (s Snapshot) Validate() error {
	if err := s.Aerodynamic.Validate(); err != nil {
		return errors.Wrap(err, "aerodynamic")
	}
	if err := s.Telemetry.Validate(); err != nil {
		return errors.Wrap(err, "telemetry")
	}
	return nil
}

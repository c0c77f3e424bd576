package telemetry

import (
	"testing"

	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func TestSimulatedAerodynamic(t *testing.T) {
	data := SimulatedAerodynamic()

	if len(data.Performance) != 7 {
		t.Fatalf("expected 7 samples, got %d", len(data.Performance))
	}
	if len(data.Flagged) != 2 {
		t.Fatalf("expected 2 flagged components, got %d", len(data.Flagged))
	}

	wantFirst := FlaggedComponent{
		Identifier:     "Front Wing R1",
		Status:         "Degrading",
		Loss:           "2.5% Downforce",
		Recommendation: "Inspect mounting points",
	}
	if diff := cmp.Diff(wantFirst, data.Flagged[0]); diff != "" {
		t.Errorf("first flagged component mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(
		[]string{"Race 1", "Race 2", "Race 3", "Race 4", "Race 5", "Race 6", "Race 7"},
		data.Labels(),
	); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]float64{1500, 1480, 1450, 1420, 1390, 1370, 1350},
		data.DownforceSeries(),
	); diff != "" {
		t.Errorf("downforce mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]float64{500, 510, 525, 540, 560, 570, 580},
		data.DragSeries(),
	); diff != "" {
		t.Errorf("drag mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulatedTelemetry(t *testing.T) {
	data := SimulatedTelemetry()

	want := []TelemetryEvent{
		{ID: 1, Event: "Brake Fade Detected", Timestamp: "2025-06-12 10:01:00", Details: "Front left brake temperature exceeded threshold for 5s."},
		{ID: 2, Event: "Engine Knock Anomaly", Timestamp: "2025-06-12 10:05:30", Details: "Minor engine knock detected, monitoring advised."},
	}
	if diff := cmp.Diff(want, data.Events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulatedPayloadsAreIndependentCopies(t *testing.T) {
	a := SimulatedAerodynamic()
	a.Flagged[0].Status = "Replaced"

	if SimulatedAerodynamic().Flagged[0].Status != "Degrading" {
		t.Error("mutating a returned payload leaked into the next one")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr bool
	}{
		{
			name: "simulated snapshot is valid",
			snap: SimulatedSnapshot(),
		},
		{
			name: "empty snapshot is valid",
			snap: Snapshot{},
		},
		{
			name: "empty sample label",
			snap: Snapshot{Aerodynamic: AerodynamicData{
				Performance: []PerformanceSample{{Label: " ", Downforce: 1}},
			}},
			wantErr: true,
		},
		{
			name: "empty component identifier",
			snap: Snapshot{Aerodynamic: AerodynamicData{
				Flagged: []FlaggedComponent{{Status: "Degrading"}},
			}},
			wantErr: true,
		},
		{
			name: "duplicate event id",
			snap: Snapshot{Telemetry: TelemetryData{Events: []TelemetryEvent{
				{ID: 1, Event: "a"},
				{ID: 1, Event: "b"},
			}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidPayload) {
				t.Errorf("Validate() error %v should match ErrInvalidPayload", err)
			}
		})
	}
}

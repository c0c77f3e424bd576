package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	pwerrors "github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/tui/view"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderSnapshot(t *testing.T) {
	out, err := RenderSnapshot(context.Background(), source.NewSimulated(0, 0), 120)
	if err != nil {
		t.Fatalf("RenderSnapshot() error = %v", err)
	}
	out = ansi.Strip(out)

	for _, want := range []string{
		view.DashboardTitle,
		"Race 1",
		"Race 7",
		"Front Wing R1",
		"Engine Knock Anomaly",
		view.SummaryTitle,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q", want)
		}
	}
	if strings.Contains(out, view.AerodynamicLoading) || strings.Contains(out, view.TelemetryLoading) {
		t.Error("snapshot should not contain loading text")
	}
	if strings.Contains(out, "quit") {
		t.Error("snapshot should not contain the help bar")
	}
}

func TestRenderSnapshot_PartialFailure(t *testing.T) {
	src := newStubSource()
	src.aeroErr = pwerrors.NewSourceError("connection refused", nil)

	out, err := RenderSnapshot(context.Background(), src, 120)
	if err != nil {
		t.Fatalf("RenderSnapshot() error = %v", err)
	}
	out = ansi.Strip(out)

	if !strings.Contains(out, "Failed to load aerodynamic data") {
		t.Errorf("snapshot missing failure notice:\n%s", out)
	}
	if !strings.Contains(out, "Brake Fade Detected") {
		t.Error("telemetry should render despite the aerodynamic failure")
	}
}

func TestRenderSnapshot_Canceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := RenderSnapshot(ctx, source.NewSimulated(time.Hour, time.Hour), 80)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("RenderSnapshot() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRenderSnapshot_PlainText(t *testing.T) {
	out, err := RenderSnapshot(context.Background(), source.NewSimulated(0, 0), 120, WithPlainText())
	if err != nil {
		t.Fatalf("RenderSnapshot() error = %v", err)
	}
	if out != ansi.Strip(out) {
		t.Error("plain snapshot contains escape sequences")
	}
}

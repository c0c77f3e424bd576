// Package internal contains integration tests that verify the packages work
// together: the data API serves a source, the http source reads it back and
// the dashboard renders what arrives.
package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/pitwall/internal/api"
	"github.com/Iron-Ham/pitwall/internal/config"
	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/Iron-Ham/pitwall/internal/tui"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

// newAPI serves src through the data API on a test server.
func newAPI(t *testing.T, src source.Source) *httptest.Server {
	t.Helper()
	server := api.NewServer(src, config.Default().Server, time.Second, nil)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// TestSimulatedOverHTTP serves the simulation and reads it back through the
// http source, as 'pitwall serve' plus 'pitwall --source http' would.
func TestSimulatedOverHTTP(t *testing.T) {
	ts := newAPI(t, source.NewSimulated(0, 0))

	src, err := source.NewHTTP(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("NewHTTP failed: %v", err)
	}

	ctx := context.Background()
	aero, err := src.Aerodynamic(ctx)
	if err != nil {
		t.Fatalf("Aerodynamic failed: %v", err)
	}
	if diff := cmp.Diff(telemetry.SimulatedAerodynamic(), aero); diff != "" {
		t.Errorf("aerodynamic mismatch (-want +got):\n%s", diff)
	}

	tel, err := src.Telemetry(ctx)
	if err != nil {
		t.Fatalf("Telemetry failed: %v", err)
	}
	if diff := cmp.Diff(telemetry.SimulatedTelemetry(), tel); diff != "" {
		t.Errorf("telemetry mismatch (-want +got):\n%s", diff)
	}
}

// TestSnapshotOverHTTP renders the dashboard from a remote data API.
func TestSnapshotOverHTTP(t *testing.T) {
	ts := newAPI(t, source.NewSimulated(0, 0))
	src, err := source.NewHTTP(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("NewHTTP failed: %v", err)
	}

	out, err := tui.RenderSnapshot(context.Background(), src, 120)
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	out = ansi.Strip(out)

	for _, want := range []string{"Race 1", "Race 7", "Front Wing R1", "Brake Fade Detected"} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q", want)
		}
	}
}

// TestPartialOutage fails one endpoint upstream and checks that the other
// panel still renders.
func TestPartialOutage(t *testing.T) {
	mux := http.NewServeMux()
	upstream := api.NewServer(source.NewSimulated(0, 0), config.Default().Server, time.Second, nil).Handler()
	mux.Handle(telemetry.AerodynamicEndpoint, upstream)
	mux.HandleFunc(telemetry.TelemetryEndpoint, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"pipeline offline"}`, http.StatusServiceUnavailable)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	src, err := source.NewHTTP(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("NewHTTP failed: %v", err)
	}

	out, err := tui.RenderSnapshot(context.Background(), src, 120)
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	out = ansi.Strip(out)

	if !strings.Contains(out, "Front Wing R1") {
		t.Error("aerodynamic panel should render during a telemetry outage")
	}
	if !strings.Contains(out, "Failed to load telemetry data") {
		t.Errorf("telemetry panel should show the failure:\n%s", out)
	}
}

// TestUnmountCancelsRemoteLoads checks that unmounting the dashboard
// cancels requests still in flight against the data API.
func TestUnmountCancelsRemoteLoads(t *testing.T) {
	var (
		mu       sync.Mutex
		canceled int
		started  = make(chan struct{}, 2)
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-r.Context().Done()
		mu.Lock()
		canceled++
		mu.Unlock()
	}))
	defer ts.Close()

	src, err := source.NewHTTP(ts.URL, time.Minute, nil)
	if err != nil {
		t.Fatalf("NewHTTP failed: %v", err)
	}

	m := tui.NewModel(context.Background(), src)
	if m.Init() == nil {
		t.Fatal("Init returned nil")
	}

	errs := make(chan error, 2)
	go func() {
		_, err := src.Aerodynamic(m.Context())
		errs <- err
	}()
	go func() {
		_, err := src.Telemetry(m.Context())
		errs <- err
	}()
	<-started
	<-started

	m.Unmount()

	for range 2 {
		select {
		case err := <-errs:
			if err == nil {
				t.Error("load should fail once the dashboard unmounts")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("load did not return after unmount")
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := canceled
		mu.Unlock()
		if n == 2 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("server did not observe both requests being canceled")
}

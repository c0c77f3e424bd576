package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	pwerrors "github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/Iron-Ham/pitwall/internal/tui/msg"
	"github.com/Iron-Ham/pitwall/internal/tui/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

// stubSource returns fixed results and counts calls.
type stubSource struct {
	aero    telemetry.AerodynamicData
	aeroErr error
	tel     telemetry.TelemetryData
	telErr  error

	aeroCalls atomic.Int32
	telCalls  atomic.Int32
}

func newStubSource() *stubSource {
	return &stubSource{
		aero: telemetry.SimulatedAerodynamic(),
		tel:  telemetry.SimulatedTelemetry(),
	}
}

func (s *stubSource) Aerodynamic(ctx context.Context) (telemetry.AerodynamicData, error) {
	s.aeroCalls.Add(1)
	if err := ctx.Err(); err != nil {
		return telemetry.AerodynamicData{}, err
	}
	return s.aero, s.aeroErr
}

func (s *stubSource) Telemetry(ctx context.Context) (telemetry.TelemetryData, error) {
	s.telCalls.Add(1)
	if err := ctx.Err(); err != nil {
		return telemetry.TelemetryData{}, err
	}
	return s.tel, s.telErr
}

var _ source.Source = (*stubSource)(nil)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// mount creates a model and runs Init, returning the commands Init batched.
func mount(t *testing.T, src source.Source, opts ...Option) (Model, []tea.Cmd) {
	t.Helper()
	m := NewModel(context.Background(), src, append([]Option{WithWidth(160)}, opts...)...)
	t.Cleanup(m.Unmount)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil command")
	}
	out := cmd()
	batch, ok := out.(tea.BatchMsg)
	if !ok {
		t.Fatalf("Init() command produced %T, want tea.BatchMsg", out)
	}
	return m, batch
}

// runLoads executes every command in cmds and returns the load results,
// skipping spinner ticks.
func runLoads(cmds []tea.Cmd) []tea.Msg {
	var results []tea.Msg
	for _, c := range cmds {
		if c == nil {
			continue
		}
		switch out := c().(type) {
		case msg.AerodynamicLoadedMsg, msg.TelemetryLoadedMsg:
			results = append(results, out)
		}
	}
	return results
}

func apply(m Model, msgs ...tea.Msg) Model {
	var model tea.Model = m
	for _, message := range msgs {
		model, _ = model.Update(message)
	}
	return model.(Model)
}

func plain(m Model) string {
	return ansi.Strip(m.View())
}

func TestNewModel_StartsLoading(t *testing.T) {
	m := NewModel(context.Background(), newStubSource())
	defer m.Unmount()

	if !m.Aerodynamic().IsLoading() {
		t.Errorf("aerodynamic status = %v, want loading", m.Aerodynamic().Status)
	}
	if !m.Telemetry().IsLoading() {
		t.Errorf("telemetry status = %v, want loading", m.Telemetry().Status)
	}
	if m.Mounted() {
		t.Error("model should not be mounted before Init")
	}
	if m.ChartHeight() != DefaultChartHeight {
		t.Errorf("ChartHeight() = %d, want %d", m.ChartHeight(), DefaultChartHeight)
	}
}

func TestInit_MountsAndStartsBothLoads(t *testing.T) {
	src := newStubSource()
	m, cmds := mount(t, src)

	if !m.Mounted() {
		t.Fatal("model should be mounted after Init")
	}

	out := plain(m)
	for _, want := range []string{view.AerodynamicLoading, view.TelemetryLoading} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q before loads complete", want)
		}
	}

	results := runLoads(cmds)
	if len(results) != 2 {
		t.Fatalf("got %d load results, want 2", len(results))
	}
	if src.aeroCalls.Load() != 1 || src.telCalls.Load() != 1 {
		t.Errorf("source calls = %d/%d, want 1/1", src.aeroCalls.Load(), src.telCalls.Load())
	}
}

func TestUpdate_LoadsBothSlices(t *testing.T) {
	src := newStubSource()
	m, cmds := mount(t, src)
	m = apply(m, runLoads(cmds)...)

	if diff := cmp.Diff(telemetry.SimulatedAerodynamic(), m.Aerodynamic().Data); diff != "" {
		t.Errorf("aerodynamic data mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(telemetry.SimulatedTelemetry(), m.Telemetry().Data); diff != "" {
		t.Errorf("telemetry data mismatch (-want +got):\n%s", diff)
	}

	out := plain(m)
	for _, want := range []string{"Race 1", "Race 7", "Front Wing R1", "Rear Diffuser C3", "Brake Fade Detected", "Engine Knock Anomaly"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	for _, unwanted := range []string{view.AerodynamicLoading, view.TelemetryLoading} {
		if strings.Contains(out, unwanted) {
			t.Errorf("view should not contain %q once loaded", unwanted)
		}
	}
}

func TestUpdate_SlicesAreIndependent(t *testing.T) {
	aero := msg.AerodynamicLoadedMsg{Generation: 1, Data: telemetry.SimulatedAerodynamic()}
	tel := msg.TelemetryLoadedMsg{Generation: 1, Data: telemetry.SimulatedTelemetry()}

	t.Run("telemetry first", func(t *testing.T) {
		m, _ := mount(t, newStubSource())
		m = apply(m, tel)

		if !m.Telemetry().IsLoaded() {
			t.Error("telemetry should be loaded")
		}
		if !m.Aerodynamic().IsLoading() {
			t.Error("aerodynamic should still be loading")
		}
		out := plain(m)
		if !strings.Contains(out, "Brake Fade Detected") || !strings.Contains(out, view.AerodynamicLoading) {
			t.Errorf("partial view wrong:\n%s", out)
		}
	})

	t.Run("completion order does not change the result", func(t *testing.T) {
		first, _ := mount(t, newStubSource())
		second, _ := mount(t, newStubSource())

		first = apply(first, aero, tel)
		second = apply(second, tel, aero)

		if first.View() != second.View() {
			t.Error("views differ by completion order")
		}
	})
}

func TestUpdate_IgnoresResultsAfterUnmount(t *testing.T) {
	m, cmds := mount(t, newStubSource())
	m.Unmount()

	if m.Mounted() {
		t.Fatal("model should not be mounted after Unmount")
	}
	if m.Context().Err() == nil {
		t.Error("Unmount should cancel the load context")
	}

	// Loads started before unmount now observe the canceled context.
	results := runLoads(cmds)
	for _, r := range results {
		switch r := r.(type) {
		case msg.AerodynamicLoadedMsg:
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("aerodynamic error = %v, want context.Canceled", r.Err)
			}
		case msg.TelemetryLoadedMsg:
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("telemetry error = %v, want context.Canceled", r.Err)
			}
		}
	}

	// Even successful results are dropped once unmounted.
	m = apply(m,
		msg.AerodynamicLoadedMsg{Generation: 1, Data: telemetry.SimulatedAerodynamic()},
		msg.TelemetryLoadedMsg{Generation: 1, Data: telemetry.SimulatedTelemetry()},
	)
	if !m.Aerodynamic().IsLoading() || !m.Telemetry().IsLoading() {
		t.Error("state changed after unmount")
	}

	// A second unmount is harmless.
	m.Unmount()
}

func TestUpdate_CanceledLoadIsNotAFailure(t *testing.T) {
	m, _ := mount(t, newStubSource())
	m = apply(m, msg.TelemetryLoadedMsg{Generation: 1, Err: context.Canceled})

	if !m.Telemetry().IsLoading() {
		t.Errorf("telemetry status = %v, want loading", m.Telemetry().Status)
	}
}

func TestUpdate_FailureAndRetry(t *testing.T) {
	src := newStubSource()
	src.telErr = pwerrors.NewSourceError("connection refused", nil).WithSource("http")
	m, cmds := mount(t, src)
	m = apply(m, runLoads(cmds)...)

	if !m.Aerodynamic().IsLoaded() {
		t.Errorf("aerodynamic status = %v, want loaded", m.Aerodynamic().Status)
	}
	tel := m.Telemetry()
	if !tel.IsFailed() {
		t.Fatalf("telemetry status = %v, want failed", tel.Status)
	}
	var loadErr *pwerrors.LoadError
	if !errors.As(tel.Err, &loadErr) || loadErr.Slice != string(telemetry.SliceTelemetry) {
		t.Errorf("telemetry error = %v, want LoadError for telemetry", tel.Err)
	}
	if !strings.Contains(plain(m), view.RetryHint) {
		t.Error("failed view should show the retry hint")
	}

	// Retry re-runs only the failed slice under a new generation.
	src.telErr = nil
	model, cmd := m.Update(keyPress('r'))
	m = model.(Model)
	if cmd == nil {
		t.Fatal("retry returned nil command")
	}
	if !m.Telemetry().IsLoading() || m.Telemetry().Generation != 2 {
		t.Errorf("telemetry after retry = %v gen %d, want loading gen 2", m.Telemetry().Status, m.Telemetry().Generation)
	}
	if !m.Aerodynamic().IsLoaded() {
		t.Error("retry should not touch a loaded slice")
	}

	out := cmd()
	batch, ok := out.(tea.BatchMsg)
	if !ok {
		t.Fatalf("retry command produced %T, want tea.BatchMsg", out)
	}
	m = apply(m, runLoads(batch)...)

	if !m.Telemetry().IsLoaded() {
		t.Errorf("telemetry status = %v, want loaded after retry", m.Telemetry().Status)
	}
	if src.aeroCalls.Load() != 1 || src.telCalls.Load() != 2 {
		t.Errorf("source calls = %d/%d, want 1/2", src.aeroCalls.Load(), src.telCalls.Load())
	}
}

func TestUpdate_FailureLogLevelFollowsCause(t *testing.T) {
	var buf bytes.Buffer
	m, _ := mount(t, newStubSource(), WithLogger(logging.NewWriterLogger(&buf, "DEBUG")))

	m = apply(m,
		msg.AerodynamicLoadedMsg{
			Generation: m.Aerodynamic().Generation,
			Err:        pwerrors.NewLoadError("aerodynamic", pwerrors.NewValidationError("empty label")),
		},
		msg.TelemetryLoadedMsg{
			Generation: m.Telemetry().Generation,
			Err:        pwerrors.NewLoadError("telemetry", pwerrors.NewSourceError("connection refused", nil)),
		},
	)
	if !m.Aerodynamic().IsFailed() || !m.Telemetry().IsFailed() {
		t.Fatal("both slices should have failed")
	}

	levels := make(map[string]string)
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry struct {
			Level string `json:"level"`
			Msg   string `json:"msg"`
			Slice string `json:"slice"`
		}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry.Msg == "load failed" {
			levels[entry.Slice] = entry.Level
		}
	}

	want := map[string]string{"aerodynamic": "WARN", "telemetry": "ERROR"}
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Errorf("load failure levels mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_IgnoresStaleGeneration(t *testing.T) {
	src := newStubSource()
	src.aeroErr = pwerrors.NewSourceError("unexpected status 503", nil).WithStatusCode(503)
	m, cmds := mount(t, src)
	m = apply(m, runLoads(cmds)...)

	model, _ := m.Update(keyPress('r'))
	m = model.(Model)

	// A late result from the first generation must not resolve the retry.
	m = apply(m, msg.AerodynamicLoadedMsg{Generation: 1, Data: telemetry.AerodynamicData{}})
	if !m.Aerodynamic().IsLoading() {
		t.Errorf("aerodynamic status = %v, want loading", m.Aerodynamic().Status)
	}

	m = apply(m, msg.AerodynamicLoadedMsg{Generation: 2, Data: telemetry.SimulatedAerodynamic()})
	if !m.Aerodynamic().IsLoaded() {
		t.Errorf("aerodynamic status = %v, want loaded", m.Aerodynamic().Status)
	}

	// A duplicate result for the current generation is ignored once resolved.
	m = apply(m, msg.AerodynamicLoadedMsg{Generation: 2, Err: pwerrors.New("late")})
	if !m.Aerodynamic().IsLoaded() {
		t.Error("resolved slice changed on a duplicate result")
	}
}

func TestUpdate_RetryWithoutFailureIsNoop(t *testing.T) {
	m, cmds := mount(t, newStubSource())
	m = apply(m, runLoads(cmds)...)

	model, cmd := m.Update(keyPress('r'))
	if cmd != nil {
		t.Error("retry with nothing failed should return nil command")
	}
	if model.(Model).Aerodynamic().Generation != 1 {
		t.Error("retry with nothing failed should not restart a slice")
	}
}

func TestUpdate_Keys(t *testing.T) {
	t.Run("quit unmounts", func(t *testing.T) {
		m, _ := mount(t, newStubSource())
		model, cmd := m.Update(keyPress('q'))
		m = model.(Model)

		if cmd == nil {
			t.Fatal("quit returned nil command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("quit should return tea.Quit")
		}
		if m.Mounted() {
			t.Error("quit should unmount")
		}
		if m.View() != "" {
			t.Error("view should be empty after quit")
		}
	})

	t.Run("help toggles", func(t *testing.T) {
		m, _ := mount(t, newStubSource())
		if m.HelpView() == "" {
			t.Fatal("help should be visible by default")
		}
		m = apply(m, keyPress('?'))
		if m.HelpView() != "" {
			t.Error("help should be hidden after toggle")
		}
		m = apply(m, keyPress('?'))
		if m.HelpView() == "" {
			t.Error("help should be visible after second toggle")
		}
	})

	t.Run("unbound key", func(t *testing.T) {
		m, _ := mount(t, newStubSource())
		if _, cmd := m.Update(keyPress('x')); cmd != nil {
			t.Error("unbound key should return nil command")
		}
	})
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := mount(t, newStubSource())
	m = apply(m, tea.WindowSizeMsg{Width: 90, Height: 40})

	if m.TerminalWidth() != 90 {
		t.Errorf("TerminalWidth() = %d, want 90", m.TerminalWidth())
	}
	for i, line := range strings.Split(m.View(), "\n") {
		if w := ansi.StringWidth(line); w > 90 {
			t.Errorf("line %d is %d cells wide, want <= 90", i, w)
		}
	}
}

func TestOptions(t *testing.T) {
	m := NewModel(context.Background(), newStubSource(),
		WithChartHeight(6),
		WithChartHeight(0),
		WithTheme("nord"),
		WithLogger(nil),
		WithoutHelp(),
	)
	defer m.Unmount()

	if m.ChartHeight() != 6 {
		t.Errorf("ChartHeight() = %d, want 6", m.ChartHeight())
	}
	if m.HelpView() != "" {
		t.Error("WithoutHelp should hide the help bar")
	}
	if m.logger == nil {
		t.Error("WithLogger(nil) should keep the default logger")
	}
}

func TestNewModel_ParentContextBoundsLoads(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	m := NewModel(parent, source.NewSimulated(time.Hour, time.Hour))
	defer m.Unmount()

	cancel()
	select {
	case <-m.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("model context not canceled with its parent")
	}
}

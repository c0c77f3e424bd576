// Package view renders the performance dashboard.
//
// Rendering is a pure function of [DashboardState]: the model owns the two
// slice states, the spinner and the help bar, and the view turns them into
// a string sized to the terminal width.
//
// # Layout
//
//   - Header: dashboard title and tagline, centered
//   - Aerodynamic panel: performance chart, per-race table, flagged components
//   - Telemetry panel: recent anomalies, insights placeholder
//   - Summary panel: full-width car overview
//   - Help bar
//
// The two data panels sit side by side when the terminal is at least
// [WideLayoutMinWidth] columns wide and stack vertically otherwise.
//
// # Slice states
//
// Each data panel renders one [SliceState]: a spinner while Loading, the
// payload (or its "no data" fallback) once Loaded, and the error with a
// retry hint when Failed.
package view

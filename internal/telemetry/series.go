package telemetry

import "github.com/samber/lo"

// Labels returns the race labels in series order.
func (a AerodynamicData) Labels() []string {
	return lo.Map(a.Performance, func(s PerformanceSample, _ int) string { return s.Label })
}

// DownforceSeries returns the downforce values in series order.
func (a AerodynamicData) DownforceSeries() []float64 {
	return lo.Map(a.Performance, func(s PerformanceSample, _ int) float64 { return s.Downforce })
}

// DragSeries returns the drag values in series order.
func (a AerodynamicData) DragSeries() []float64 {
	return lo.Map(a.Performance, func(s PerformanceSample, _ int) float64 { return s.Drag })
}

package telemetry

// SimulatedAerodynamic returns the built-in aerodynamic payload: seven races
// of slowly degrading downforce and two flagged components.
func SimulatedAerodynamic() AerodynamicData {
	return AerodynamicData{
		Performance: []PerformanceSample{
			{Label: "Race 1", Downforce: 1500, Drag: 500},
			{Label: "Race 2", Downforce: 1480, Drag: 510},
			{Label: "Race 3", Downforce: 1450, Drag: 525},
			{Label: "Race 4", Downforce: 1420, Drag: 540},
			{Label: "Race 5", Downforce: 1390, Drag: 560},
			{Label: "Race 6", Downforce: 1370, Drag: 570},
			{Label: "Race 7", Downforce: 1350, Drag: 580},
		},
		Flagged: []FlaggedComponent{
			{Identifier: "Front Wing R1", Status: "Degrading", Loss: "2.5% Downforce", Recommendation: "Inspect mounting points"},
			{Identifier: "Rear Diffuser C3", Status: "Potential Wear", Loss: "1.0% Efficiency", Recommendation: "Monitor closely"},
		},
	}
}

// SimulatedTelemetry returns the built-in telemetry payload.
func SimulatedTelemetry() TelemetryData {
	return TelemetryData{
		Events: []TelemetryEvent{
			{ID: 1, Event: "Brake Fade Detected", Timestamp: "2025-06-12 10:01:00", Details: "Front left brake temperature exceeded threshold for 5s."},
			{ID: 2, Event: "Engine Knock Anomaly", Timestamp: "2025-06-12 10:05:30", Details: "Minor engine knock detected, monitoring advised."},
		},
	}
}

// SimulatedSnapshot returns both built-in payloads.
func SimulatedSnapshot() Snapshot {
	return Snapshot{
		Aerodynamic: SimulatedAerodynamic(),
		Telemetry:   SimulatedTelemetry(),
	}
}

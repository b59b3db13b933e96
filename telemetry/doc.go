// Package telemetry exports tsp run outcomes as Prometheus metrics and wraps
// runs in OpenTelemetry spans.
//
// Recorder turns each tsp.Result into counters, gauges and histograms
// labelled by algorithm, and can chain into tsp.Hooks to count BSSF
// improvements as they happen. Tracer opens one span per run and annotates
// it with the result summary.
//
// Both are safe for concurrent use; independent runs may share them.
package telemetry

package services

import "time"

// noopMetrics discards every recording. Handlers take it in tests so the
// global Prometheus registry is only touched by the real server process.
type noopMetrics struct{}

// NewNoopMetrics creates a MetricsRecorderInterface that records nothing
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

package http

// Metrics records domain-level counters emitted by the handlers.
// *monitoring.PrometheusCollector satisfies it.
type Metrics interface {
	RecordSignup()
	RecordSignin(success bool)
	RecordPostCreated()
	RecordMessageSent()
	RecordDonation(amount float64)
	RecordConnectionRequested()
	RecordConnectionResolved()
}

// NopMetrics discards every recording. Used in tests and when Prometheus
// is disabled.
type NopMetrics struct{}

func (NopMetrics) RecordSignup()              {}
func (NopMetrics) RecordSignin(bool)          {}
func (NopMetrics) RecordPostCreated()         {}
func (NopMetrics) RecordMessageSent()         {}
func (NopMetrics) RecordDonation(float64)     {}
func (NopMetrics) RecordConnectionRequested() {}
func (NopMetrics) RecordConnectionResolved()  {}

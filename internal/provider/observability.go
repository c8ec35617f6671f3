package provider

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	Provider  string
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives provider call and fallback events for logging and
// metrics. The result returned to the end user carries no AI/deterministic
// marker, so this is the only place that distinction is visible.
type Observer interface {
	OnCallComplete(event CallEvent)

	// OnFallback fires when the orchestrator advances past a failed
	// provider. to is the next provider name, or "deterministic".
	OnFallback(from, to string, err error)
}

// LogObserver writes events to an io.Writer, one line per event.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] provider_call provider=%s model=%s latency_ms=%d status=%s\n",
		ts, event.Provider, event.Model, event.LatencyMs, status)
}

func (o *LogObserver) OnFallback(from, to string, err error) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] provider_fallback from=%s to=%s reason=%v\n", ts, from, to, err)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent)         {}
func (NoopObserver) OnFallback(string, string, error) {}

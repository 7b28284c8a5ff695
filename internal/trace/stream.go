package trace

import (
	"fmt"
	"io"
	"sync"
)

// StreamTracer writes events immediately to an io.Writer as text lines.
type StreamTracer struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// NewStreamTracer creates a StreamTracer at the given level.
func NewStreamTracer(w io.Writer, level Level) *StreamTracer {
	return &StreamTracer{w: w, level: level}
}

// Emit writes an event to the output. Write errors are ignored: tracing
// must never disrupt the run it observes.
func (t *StreamTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	line := fmt.Sprintf("%s %-6s %-6s %s", ev.Time.Format("15:04:05.000"), ev.Scope, ev.Kind, ev.Name)
	if ev.Detail != "" {
		line += " " + ev.Detail
	}
	_, _ = io.WriteString(t.w, line+"\n")
}

// Level returns the configured level.
func (t *StreamTracer) Level() Level { return t.level }

// Enabled reports whether the tracer emits anything at all.
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }

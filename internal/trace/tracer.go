// Package trace provides a low-overhead debug tracer for the lint driver
// and the traversal engine. Tracing is off by default; when enabled it
// streams human-readable events for pass boundaries and, at the most
// verbose level, for scope enter/exit during the walk.
package trace

// Tracer is the interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev Event)

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// nopTracer is a no-op implementation for zero overhead when tracing is
// disabled.
type nopTracer struct{}

func (nopTracer) Emit(Event)    {}
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop is the package-level singleton nop tracer.
var Nop Tracer = nopTracer{}

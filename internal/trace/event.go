package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity level of the event. Lower numeric values
// represent coarser events.
type Scope uint8

const (
	// ScopeDriver represents top-level driver operations.
	ScopeDriver Scope = iota + 1
	// ScopePass represents one lint-pass traversal.
	ScopePass
	// ScopeNode represents node-level events during the walk.
	ScopeNode
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time   time.Time
	Kind   Kind
	Scope  Scope
	Name   string
	Detail string
}

// Point builds an instant event stamped with the current time.
func Point(scope Scope, name, detail string) Event {
	return Event{Time: time.Now(), Kind: KindPoint, Scope: scope, Name: name, Detail: detail}
}

// Begin builds a span-begin event stamped with the current time.
func Begin(scope Scope, name string) Event {
	return Event{Time: time.Now(), Kind: KindSpanBegin, Scope: scope, Name: name}
}

// End builds a span-end event stamped with the current time.
func End(scope Scope, name string) Event {
	return Event{Time: time.Now(), Kind: KindSpanEnd, Scope: scope, Name: name}
}

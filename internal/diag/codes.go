package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Lint findings (4000-4999).
	LintFinding     Code = 4000
	LintUnknownName Code = 4001

	// Driver / IO (5000-5999).
	IOSnapshotRead   Code = 5001
	IOSnapshotSchema Code = 5002
	IOConfig         Code = 5003

	// Internal consistency defects (9000-9999).
	InternalLeftoverBuffered Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode:              "unknown diagnostic",
	LintFinding:              "lint finding",
	LintUnknownName:          "unknown lint name",
	IOSnapshotRead:           "failed to read snapshot",
	IOSnapshotSchema:         "unsupported snapshot schema",
	IOConfig:                 "invalid lint configuration",
	InternalLeftoverBuffered: "buffered diagnostic never reached its node",
}

// ID returns the short prefixed identifier, e.g. "LNT4000".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("ICE%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Package narrate turns map topology, field of view and actor positions
// into the lines of text the player reads.
package narrate

import (
	"fmt"
	"strings"

	"textrogue/internal/gamemap"
)

// List renders enumerations where the first item reads differently from
// the rest ("There is a door ..." / "And the exit ...").
type List struct {
	first, rest string
	lines       []string
}

// NewList starts an empty list.
func NewList(first, rest string) *List {
	return &List{first: first, rest: rest}
}

// Add appends one item.
func (l *List) Add(item string) {
	prefix := l.rest
	if len(l.lines) == 0 {
		prefix = l.first
	}
	l.lines = append(l.lines, prefix+" "+item)
}

// Addf appends one formatted item.
func (l *List) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Lines returns the rendered items.
func (l *List) Lines() []string { return l.lines }

// Len returns the number of items added.
func (l *List) Len() int { return len(l.lines) }

// Where describes to relative to from as a compass offset: "here", or
// "at 3 E 1 N" with a zero axis left out.
func Where(from, to gamemap.Point) string {
	if from == to {
		return "here"
	}
	var b strings.Builder
	b.WriteString("at")
	switch {
	case to.X < from.X:
		fmt.Fprintf(&b, " %d W", from.X-to.X)
	case to.X > from.X:
		fmt.Fprintf(&b, " %d E", to.X-from.X)
	}
	switch {
	case to.Y < from.Y:
		fmt.Fprintf(&b, " %d N", from.Y-to.Y)
	case to.Y > from.Y:
		fmt.Fprintf(&b, " %d S", to.Y-from.Y)
	}
	return b.String()
}

package model

import "fmt"

// Direction identifies the selected side of a two-state switch.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the upper-case direction name.
func (direction Direction) String() string {
	if direction == Right {
		return "RIGHT"
	}
	return "LEFT"
}

// Opposite returns the other side.
func (direction Direction) Opposite() Direction {
	if direction == Right {
		return Left
	}
	return Right
}

// ParseDirection converts a direction name. Unknown names map to Left.
func ParseDirection(name string) Direction {
	if name == "RIGHT" || name == "right" {
		return Right
	}
	return Left
}

// SelectionEvent is delivered when the selected side changes.
type SelectionEvent struct {
	Direction Direction
	Label     string
	HasLabel  bool
}

// NewSelectionEvent builds an event without a label.
func NewSelectionEvent(direction Direction) SelectionEvent {
	return SelectionEvent{Direction: direction}
}

// NewLabeledEvent builds an event carrying the selected side's text.
func NewLabeledEvent(direction Direction, label string) SelectionEvent {
	return SelectionEvent{Direction: direction, Label: label, HasLabel: true}
}

// Line formats the event as a diagnostic line.
func (event SelectionEvent) Line() string {
	if event.HasLabel {
		return fmt.Sprintf("Now Selected : %s, Current Text : %s", event.Direction, event.Label)
	}
	return fmt.Sprintf("Now Selected : %s", event.Direction)
}

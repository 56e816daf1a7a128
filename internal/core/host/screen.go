package host

import (
	"errors"
	"fmt"

	"stickyswitch/internal/core/model"
)

// SwitchID is the layout id of the switch the screen subscribes to.
const SwitchID = "sticky_switch"

// ErrWidgetMissing indicates the layout has no switch with SwitchID.
var ErrWidgetMissing = errors.New("switch widget missing from layout")

// Subscriber is the capability a switch widget exposes to its host.
type Subscriber interface {
	SetOnSelectionChange(handler func(model.SelectionEvent))
}

// Finder resolves widgets of a rendered layout by id.
type Finder interface {
	Find(id string) (Subscriber, bool)
}

// LogFunc writes one diagnostic line.
type LogFunc func(line string)

// Screen wires a switch widget to the diagnostic log.
type Screen struct {
	log LogFunc
}

// New creates a screen that writes through log.
func New(log LogFunc) *Screen {
	if log == nil {
		log = func(string) {}
	}
	return &Screen{log: log}
}

// Initialize looks up the switch and registers the selection handler.
func (screen *Screen) Initialize(layout Finder) error {
	widget, ok := layout.Find(SwitchID)
	if !ok || widget == nil {
		return fmt.Errorf("initialize screen: %q: %w", SwitchID, ErrWidgetMissing)
	}
	widget.SetOnSelectionChange(screen.OnSelectionChanged)
	return nil
}

// OnSelectionChanged logs the new selection.
func (screen *Screen) OnSelectionChanged(event model.SelectionEvent) {
	screen.log(event.Line())
}

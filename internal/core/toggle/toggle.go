package toggle

import (
	"sync"

	"stickyswitch/internal/core/model"
)

// Config contains the initial state of a Toggle.
type Config struct {
	LeftText  string
	RightText string
	Initial   model.Direction
}

// Toggle is the two-state selection machine behind a sticky switch.
type Toggle struct {
	mu        sync.Mutex
	direction model.Direction
	leftText  string
	rightText string
	listener  func(model.SelectionEvent)
	events    []chan model.SelectionEvent
	closed    bool
}

// New creates a Toggle. Construction never notifies.
func New(config Config) *Toggle {
	return &Toggle{
		direction: config.Initial,
		leftText:  config.LeftText,
		rightText: config.RightText,
	}
}

// SetOnSelectionChange replaces the selection listener.
func (toggle *Toggle) SetOnSelectionChange(handler func(model.SelectionEvent)) {
	toggle.mu.Lock()
	defer toggle.mu.Unlock()
	toggle.listener = handler
}

// Subscribe registers a new observer channel.
func (toggle *Toggle) Subscribe(buffer int) <-chan model.SelectionEvent {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan model.SelectionEvent, buffer)
	toggle.mu.Lock()
	if toggle.closed {
		close(ch)
	} else {
		toggle.events = append(toggle.events, ch)
	}
	toggle.mu.Unlock()
	return ch
}

// Close closes every observer channel. The listener stays registered.
func (toggle *Toggle) Close() {
	toggle.mu.Lock()
	if toggle.closed {
		toggle.mu.Unlock()
		return
	}
	toggle.closed = true
	events := toggle.events
	toggle.events = nil
	toggle.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Direction returns the selected side.
func (toggle *Toggle) Direction() model.Direction {
	toggle.mu.Lock()
	defer toggle.mu.Unlock()
	return toggle.direction
}

// Text returns the label of the given side.
func (toggle *Toggle) Text(direction model.Direction) string {
	toggle.mu.Lock()
	defer toggle.mu.Unlock()
	return toggle.textLocked(direction)
}

// SetTexts replaces both side labels without notifying.
func (toggle *Toggle) SetTexts(left, right string) {
	toggle.mu.Lock()
	toggle.leftText = left
	toggle.rightText = right
	toggle.mu.Unlock()
}

// Toggle flips the selection as a user gesture would and notifies.
func (toggle *Toggle) Toggle() model.Direction {
	toggle.mu.Lock()
	toggle.direction = toggle.direction.Opposite()
	event := toggle.eventLocked()
	toggle.mu.Unlock()

	toggle.notify(event)
	return event.Direction
}

// Set moves to direction. It reports whether the state changed and only
// notifies when it did and trigger is set.
func (toggle *Toggle) Set(direction model.Direction, trigger bool) bool {
	toggle.mu.Lock()
	if toggle.direction == direction {
		toggle.mu.Unlock()
		return false
	}
	toggle.direction = direction
	event := toggle.eventLocked()
	toggle.mu.Unlock()

	if trigger {
		toggle.notify(event)
	}
	return true
}

func (toggle *Toggle) textLocked(direction model.Direction) string {
	if direction == model.Right {
		return toggle.rightText
	}
	return toggle.leftText
}

func (toggle *Toggle) eventLocked() model.SelectionEvent {
	label := toggle.textLocked(toggle.direction)
	if label == "" {
		return model.NewSelectionEvent(toggle.direction)
	}
	return model.NewLabeledEvent(toggle.direction, label)
}

func (toggle *Toggle) notify(event model.SelectionEvent) {
	toggle.mu.Lock()
	handler := toggle.listener
	toggle.mu.Unlock()

	if handler != nil {
		handler(event)
	}

	toggle.mu.Lock()
	defer toggle.mu.Unlock()
	for _, ch := range toggle.events {
		select {
		case ch <- event:
		default:
		}
	}
}

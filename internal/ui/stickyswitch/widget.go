package stickyswitch

import (
	"context"
	"sync"

	"stickyswitch/internal/core/model"
	"stickyswitch/internal/core/toggle"
	"stickyswitch/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// StickySwitch is a two-state switch whose thumb stretches between sides.
type StickySwitch struct {
	widget.DisableableWidget

	style   Style
	frameMu sync.Mutex
	frame   animation.Frame
	toggle  *toggle.Toggle
	engine  *animation.Engine
}

var (
	_ fyne.Tappable      = (*StickySwitch)(nil)
	_ desktop.Cursorable = (*StickySwitch)(nil)
)

// New creates a switch showing initial. No selection event is fired.
func New(style Style, initial model.Direction) *StickySwitch {
	sticky := &StickySwitch{
		style:  style,
		toggle: toggle.New(toggle.Config{
			LeftText:  style.LeftText,
			RightText: style.RightText,
			Initial:   initial,
		}),
	}
	sticky.engine = animation.New(sticky.animationConfig(), sticky.pushFrame)
	sticky.frame = sticky.restFrame(initial)
	sticky.ExtendBaseWidget(sticky)
	return sticky
}

// CreateRenderer implements fyne.Widget.
func (sticky *StickySwitch) CreateRenderer() fyne.WidgetRenderer {
	sticky.ExtendBaseWidget(sticky)
	return newRenderer(sticky)
}

// Tapped flips the selection as a user gesture.
func (sticky *StickySwitch) Tapped(*fyne.PointEvent) {
	if sticky.Disabled() {
		return
	}
	sticky.transitionTo(sticky.toggle.Toggle(), true)
}

// Cursor implements desktop.Cursorable.
func (sticky *StickySwitch) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// SetOnSelectionChange registers the single selection handler.
func (sticky *StickySwitch) SetOnSelectionChange(handler func(model.SelectionEvent)) {
	sticky.toggle.SetOnSelectionChange(handler)
}

// Subscribe returns a channel receiving every selection event.
func (sticky *StickySwitch) Subscribe(buffer int) <-chan model.SelectionEvent {
	return sticky.toggle.Subscribe(buffer)
}

// Direction returns the selected side.
func (sticky *StickySwitch) Direction() model.Direction {
	return sticky.toggle.Direction()
}

// Text returns the label of a side.
func (sticky *StickySwitch) Text(direction model.Direction) string {
	return sticky.toggle.Text(direction)
}

// SetDirection selects a side programmatically. Nothing happens when the
// side is already selected; the listener is only called when trigger is set.
func (sticky *StickySwitch) SetDirection(direction model.Direction, animate, trigger bool) {
	if !sticky.toggle.Set(direction, trigger) {
		return
	}
	sticky.transitionTo(direction, animate)
}

// Style returns the current style.
func (sticky *StickySwitch) Style() Style {
	return sticky.style
}

// SetStyle replaces the look of the switch and settles it on its side.
func (sticky *StickySwitch) SetStyle(style Style) {
	sticky.engine.Stop()
	sticky.style = style
	sticky.toggle.SetTexts(style.LeftText, style.RightText)
	sticky.engine.SetConfig(sticky.animationConfig())
	sticky.setFrame(sticky.restFrame(sticky.toggle.Direction()))
	sticky.Refresh()
}

// Close stops animations and closes subscriber channels.
func (sticky *StickySwitch) Close() {
	sticky.engine.Stop()
	sticky.toggle.Close()
}

// transitionTo stops the running transition before reading the frame it
// left behind, so frames of an old run never overwrite a newer state.
func (sticky *StickySwitch) transitionTo(direction model.Direction, animate bool) {
	sticky.engine.Stop()
	target := sticky.restFrame(direction)
	if !animate || sticky.style.AnimationDuration <= 0 {
		sticky.setFrame(target)
		sticky.Refresh()
		return
	}
	sticky.engine.Start(context.Background(), sticky.currentFrame(), target)
}

func (sticky *StickySwitch) pushFrame(run uint64, frame animation.Frame) {
	fyne.Do(func() {
		if run != sticky.engine.Current() {
			return
		}
		sticky.setFrame(frame)
		sticky.Refresh()
	})
}

func (sticky *StickySwitch) currentFrame() animation.Frame {
	sticky.frameMu.Lock()
	defer sticky.frameMu.Unlock()
	return sticky.frame
}

func (sticky *StickySwitch) setFrame(frame animation.Frame) {
	sticky.frameMu.Lock()
	sticky.frame = frame
	sticky.frameMu.Unlock()
}

func (sticky *StickySwitch) restFrame(direction model.Direction) animation.Frame {
	return animation.RestFrame(direction == model.Right, sticky.style.TextSize, sticky.style.SelectedTextSize)
}

func (sticky *StickySwitch) animationConfig() animation.Config {
	config := animation.DefaultConfig()
	config.Duration = sticky.style.AnimationDuration
	return config
}

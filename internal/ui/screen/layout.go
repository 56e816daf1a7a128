package screen

import (
	"stickyswitch/internal/core/host"
	"stickyswitch/internal/ui/stickyswitch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Layout is a rendered screen whose widgets can be found by id.
type Layout struct {
	content fyne.CanvasObject
	views   map[string]fyne.CanvasObject
}

// NewMain renders the main screen around a sticky switch.
func NewMain(title string, sticky *stickyswitch.StickySwitch) *Layout {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	hint := widget.NewLabelWithStyle("Tap the switch to change sides", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	layout := &Layout{views: map[string]fyne.CanvasObject{}}
	var body fyne.CanvasObject = widget.NewLabel("")
	if sticky != nil {
		layout.views[host.SwitchID] = sticky
		body = container.NewCenter(sticky)
	}
	layout.content = container.NewBorder(heading, hint, nil, nil, body)
	return layout
}

// Content returns the root object to place in a window.
func (layout *Layout) Content() fyne.CanvasObject {
	return layout.content
}

// Find implements host.Finder.
func (layout *Layout) Find(id string) (host.Subscriber, bool) {
	view, ok := layout.views[id]
	if !ok {
		return nil, false
	}
	subscriber, ok := view.(host.Subscriber)
	return subscriber, ok
}

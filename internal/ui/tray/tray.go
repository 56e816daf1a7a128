package tray

import (
	"fmt"

	"stickyswitch/internal/core/model"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnSelect      func(model.Direction)
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        MenuHost
	title      string
	statusItem *fyne.MenuItem
	leftItem   *fyne.MenuItem
	rightItem  *fyne.MenuItem
	callbacks  Callbacks
	selected   model.Direction
}

// New creates a tray manager with the provided callbacks.
func New(app MenuHost, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.leftItem = fyne.NewMenuItem("Select left", func() {
		manager.selectDirection(model.Left)
	})
	manager.rightItem = fyne.NewMenuItem("Select right", func() {
		manager.selectDirection(model.Right)
	})

	manager.refreshStatus()
	return manager
}

// SetSelection updates the status label and the checked item.
func (manager *Manager) SetSelection(direction model.Direction) {
	manager.selected = direction
	manager.refreshStatus()
}

// Menu returns the menu currently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.buildMenu()
}

func (manager *Manager) selectDirection(direction model.Direction) {
	if manager.callbacks.OnSelect != nil {
		manager.callbacks.OnSelect(direction)
	}
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Now selected: %s", manager.selected)
	manager.leftItem.Checked = manager.selected == model.Left
	manager.rightItem.Checked = manager.selected == model.Right
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.leftItem,
		manager.rightItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

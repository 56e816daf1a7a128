package tray

import (
	"testing"

	"stickyswitch/internal/core/model"

	"fyne.io/fyne/v2"
)

type fakeHost struct {
	menus []*fyne.Menu
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menus = append(host.menus, menu)
}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestStatusFollowsSelection(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, "StickySwitch", Callbacks{})

	manager.SetSelection(model.Right)

	menu := host.menus[len(host.menus)-1]
	if menu.Items[0].Label != "Now selected: RIGHT" {
		t.Fatalf("unexpected status %q", menu.Items[0].Label)
	}
	if !findItem(menu, "Select right").Checked || findItem(menu, "Select left").Checked {
		t.Fatal("expected only the right item to be checked")
	}
}

func TestSelectItemsCallBack(t *testing.T) {
	var selected []model.Direction
	quit := false
	manager := New(&fakeHost{}, "StickySwitch", Callbacks{
		OnSelect: func(direction model.Direction) { selected = append(selected, direction) },
		OnQuit:   func() { quit = true },
	})

	menu := manager.Menu()
	findItem(menu, "Select right").Action()
	findItem(menu, "Select left").Action()
	findItem(menu, "Quit").Action()

	if len(selected) != 2 || selected[0] != model.Right || selected[1] != model.Left {
		t.Fatalf("unexpected selections %v", selected)
	}
	if !quit {
		t.Fatal("expected quit callback")
	}
}

func TestNilCallbacksAreSafe(t *testing.T) {
	menu := New(nil, "StickySwitch", Callbacks{}).Menu()
	for _, item := range menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}
}

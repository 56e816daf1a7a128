package screen

import (
	"errors"
	"testing"

	"stickyswitch/internal/core/host"
	"stickyswitch/internal/core/model"
	"stickyswitch/internal/ui/stickyswitch"

	"fyne.io/fyne/v2/test"
)

func TestFindSwitch(t *testing.T) {
	test.NewTempApp(t)
	sticky := stickyswitch.New(stickyswitch.DefaultStyle(), model.Left)
	layout := NewMain("Demo", sticky)

	found, ok := layout.Find(host.SwitchID)
	if !ok || found != sticky {
		t.Fatalf("expected switch under %q", host.SwitchID)
	}
	if _, ok := layout.Find("missing"); ok {
		t.Fatal("unexpected widget for unknown id")
	}
	if layout.Content() == nil {
		t.Fatal("expected content")
	}
}

func TestHostOnMainScreen(t *testing.T) {
	test.NewTempApp(t)
	style := stickyswitch.DefaultStyle()
	style.RightText = "On"
	style.AnimationDuration = 0
	sticky := stickyswitch.New(style, model.Left)

	var lines []string
	screen := host.New(func(line string) { lines = append(lines, line) })
	if err := screen.Initialize(NewMain("Demo", sticky)); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("no line expected before interaction, got %v", lines)
	}

	test.Tap(sticky)
	test.Tap(sticky)

	want := []string{"Now Selected : RIGHT, Current Text : On", "Now Selected : LEFT"}
	if len(lines) != len(want) || lines[0] != want[0] || lines[1] != want[1] {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
}

func TestHostFailsWithoutSwitch(t *testing.T) {
	test.NewTempApp(t)
	err := host.New(nil).Initialize(NewMain("Demo", nil))
	if !errors.Is(err, host.ErrWidgetMissing) {
		t.Fatalf("expected ErrWidgetMissing, got %v", err)
	}
}

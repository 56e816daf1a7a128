package stickyswitch

import (
	"testing"
	"time"

	"stickyswitch/internal/core/model"
	"stickyswitch/internal/ui/animation"

	"fyne.io/fyne/v2/test"
)

func instantStyle() Style {
	style := DefaultStyle()
	style.LeftText = "Off"
	style.RightText = "On"
	style.AnimationDuration = 0
	return style
}

type recorder struct {
	events []model.SelectionEvent
}

func (rec *recorder) handle(event model.SelectionEvent) {
	rec.events = append(rec.events, event)
}

func TestTapSelectsOppositeSide(t *testing.T) {
	test.NewTempApp(t)
	sticky := New(instantStyle(), model.Left)
	rec := &recorder{}
	sticky.SetOnSelectionChange(rec.handle)

	if len(rec.events) != 0 {
		t.Fatal("registration must not fire")
	}

	test.Tap(sticky)
	test.Tap(sticky)

	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.events))
	}
	if rec.events[0] != model.NewLabeledEvent(model.Right, "On") {
		t.Fatalf("first event = %+v", rec.events[0])
	}
	if rec.events[1] != model.NewLabeledEvent(model.Left, "Off") {
		t.Fatalf("second event = %+v", rec.events[1])
	}
	if sticky.currentFrame() != animation.RestFrame(false, 14, 16) {
		t.Fatalf("expected left rest frame, got %+v", sticky.currentFrame())
	}
}

func TestDisabledSwitchIgnoresTaps(t *testing.T) {
	test.NewTempApp(t)
	sticky := New(instantStyle(), model.Left)
	rec := &recorder{}
	sticky.SetOnSelectionChange(rec.handle)

	sticky.Disable()
	test.Tap(sticky)

	if len(rec.events) != 0 || sticky.Direction() != model.Left {
		t.Fatalf("disabled switch changed state: %+v", rec.events)
	}
}

func TestSetDirection(t *testing.T) {
	test.NewTempApp(t)
	sticky := New(instantStyle(), model.Left)
	rec := &recorder{}
	sticky.SetOnSelectionChange(rec.handle)

	sticky.SetDirection(model.Left, false, true)
	if len(rec.events) != 0 {
		t.Fatal("setting the current side must not fire")
	}

	sticky.SetDirection(model.Right, false, false)
	if len(rec.events) != 0 || sticky.Direction() != model.Right {
		t.Fatalf("silent set failed: dir=%s events=%+v", sticky.Direction(), rec.events)
	}
	if sticky.currentFrame().Percent != 1 {
		t.Fatalf("expected settled right frame, got %+v", sticky.currentFrame())
	}

	sticky.SetDirection(model.Left, false, true)
	if len(rec.events) != 1 || rec.events[0].Direction != model.Left {
		t.Fatalf("expected LEFT event, got %+v", rec.events)
	}
}

func TestTextAndStyle(t *testing.T) {
	test.NewTempApp(t)
	sticky := New(instantStyle(), model.Right)

	if sticky.Text(model.Left) != "Off" || sticky.Text(model.Right) != "On" {
		t.Fatalf("unexpected texts %q %q", sticky.Text(model.Left), sticky.Text(model.Right))
	}

	style := instantStyle()
	style.RightText = "Yes"
	sticky.SetStyle(style)
	if sticky.Text(model.Right) != "Yes" {
		t.Fatalf("expected updated text, got %q", sticky.Text(model.Right))
	}
	if sticky.currentFrame().Percent != 1 {
		t.Fatal("SetStyle must keep the selected side")
	}
}

func TestMinSizeDropsTextRowWhenGone(t *testing.T) {
	test.NewTempApp(t)
	style := instantStyle()
	visible := New(style, model.Left)

	style.TextVisibility = model.TextGone
	gone := New(style, model.Left)

	diameter := style.diameter()
	if got := gone.MinSize(); got.Width != diameter*2 || got.Height != diameter {
		t.Fatalf("unexpected min size without text: %v", got)
	}
	if visible.MinSize().Height != diameter+style.SelectedTextSize*2 {
		t.Fatalf("unexpected min size with text: %v", visible.MinSize())
	}
}

func TestRendersInWindow(t *testing.T) {
	test.NewTempApp(t)
	style := instantStyle()
	style.AnimationType = model.AnimationCurved
	sticky := New(style, model.Left)

	window := test.NewWindow(sticky)
	defer window.Close()
	window.Resize(sticky.MinSize().AddWidthHeight(40, 20))

	test.Tap(sticky)
	if sticky.Direction() != model.Right {
		t.Fatalf("expected RIGHT after tap, got %s", sticky.Direction())
	}
}

func TestSubscribeReceivesTaps(t *testing.T) {
	test.NewTempApp(t)
	sticky := New(instantStyle(), model.Left)
	events := sticky.Subscribe(1)

	test.Tap(sticky)
	if event := <-events; event.Direction != model.Right {
		t.Fatalf("expected RIGHT, got %s", event.Direction)
	}

	sticky.Close()
	if _, ok := <-events; ok {
		t.Fatal("expected closed channel")
	}
}

func TestProgrammaticSettleDuringAnimation(t *testing.T) {
	test.NewTempApp(t)
	style := instantStyle()
	style.AnimationDuration = 2 * time.Second
	sticky := New(style, model.Left)
	defer sticky.Close()

	test.Tap(sticky)
	time.Sleep(40 * time.Millisecond)
	sticky.SetDirection(model.Left, false, false)

	want := animation.RestFrame(false, style.TextSize, style.SelectedTextSize)
	if got := sticky.currentFrame(); got != want {
		t.Fatalf("frame after settle = %+v, want %+v", got, want)
	}
	time.Sleep(50 * time.Millisecond)
	if got := sticky.currentFrame(); got != want {
		t.Fatalf("frame of the cancelled transition applied after settle: %+v", got)
	}
	if sticky.Direction() != model.Left {
		t.Fatalf("expected LEFT, got %s", sticky.Direction())
	}
}

func TestSetStyleDuringAnimationSettles(t *testing.T) {
	test.NewTempApp(t)
	style := instantStyle()
	style.AnimationDuration = 2 * time.Second
	sticky := New(style, model.Left)
	defer sticky.Close()

	test.Tap(sticky)
	time.Sleep(40 * time.Millisecond)
	sticky.SetStyle(style)
	time.Sleep(50 * time.Millisecond)

	want := animation.RestFrame(true, style.TextSize, style.SelectedTextSize)
	if got := sticky.currentFrame(); got != want {
		t.Fatalf("frame = %+v, want right rest frame %+v", got, want)
	}
}

package preferences

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"stickyswitch/internal/core/model"
	"stickyswitch/internal/ui/stickyswitch"

	"fyne.io/fyne/v2/test"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		value string
		want  color.NRGBA
	}{
		{"#2371FA", color.NRGBA{R: 0x23, G: 0x71, B: 0xfa, A: 0xff}},
		{"#18182180", color.NRGBA{R: 0x18, G: 0x18, B: 0x21, A: 0x80}},
		{"white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{" RoyalBlue ", color.NRGBA{R: 0x41, G: 0x69, B: 0xe1, A: 0xff}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.value)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "#12", "#zzzzzz", "not-a-colour"} {
		if _, err := ParseColor(value); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", value, err)
		}
	}
}

func TestStyleAppliesSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.AnimationType = model.AnimationCurved
	settings.SwitchColor = "red"
	settings.TextColor = "bogus"

	base := stickyswitch.DefaultStyle()
	style := settings.Style(base)

	if style.LeftText != "Off" || style.RightText != "On" {
		t.Fatalf("unexpected texts %q %q", style.LeftText, style.RightText)
	}
	if style.AnimationType != model.AnimationCurved {
		t.Fatalf("expected CURVED, got %s", style.AnimationType)
	}
	if style.SwitchColor != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected red switch, got %v", style.SwitchColor)
	}
	if style.TextColor != base.TextColor {
		t.Fatal("invalid colour should keep the base colour")
	}
	if style.IconSize != base.IconSize {
		t.Fatal("dimensions should come from the base style")
	}
}

func TestWindowSave(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.rightText.SetText("Yes")
	prefs.initial.SetSelected("RIGHT")
	prefs.duration.SetText("250")
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saved))
	}
	got := saved[0]
	if got.RightText != "Yes" || got.Initial != model.Right || got.AnimationDuration != 250*time.Millisecond {
		t.Fatalf("unexpected saved settings %+v", got)
	}
}

func TestWindowRejectsInvalidColor(t *testing.T) {
	app := test.NewTempApp(t)
	saves := 0
	prefs := New(app, DefaultSettings(), func(Settings) { saves++ })

	prefs.thumb.SetText("#nothex")
	prefs.handleSave()

	if saves != 0 {
		t.Fatal("invalid colour must not be saved")
	}
	if prefs.status.Text == "" {
		t.Fatal("expected an error message")
	}
}

func TestWindowRejectsInvalidDuration(t *testing.T) {
	app := test.NewTempApp(t)
	saves := 0
	prefs := New(app, DefaultSettings(), func(Settings) { saves++ })

	for _, value := range []string{"fast", "-10", ""} {
		prefs.duration.SetText(value)
		if _, err := prefs.collect(); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("collect with duration %q: error = %v, want ErrInvalidDuration", value, err)
		}
		prefs.handleSave()
		if saves != 0 {
			t.Fatalf("duration %q must not be saved", value)
		}
		if prefs.status.Text == "" {
			t.Fatalf("expected an error message for duration %q", value)
		}
	}
}

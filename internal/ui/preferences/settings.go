package preferences

import (
	"time"

	"stickyswitch/internal/core/model"
	"stickyswitch/internal/ui/stickyswitch"
)

// Settings defines editable user preferences.
type Settings struct {
	LeftText          string
	RightText         string
	Initial           model.Direction
	AnimationType     model.AnimationType
	TextVisibility    model.TextVisibility
	AnimationDuration time.Duration

	SliderColor string
	SwitchColor string
	TextColor   string

	LogLevel string
}

// DefaultSettings returns default settings for the demo.
func DefaultSettings() Settings {
	return Settings{
		LeftText:          "Off",
		RightText:         "On",
		Initial:           model.Left,
		AnimationType:     model.AnimationLine,
		TextVisibility:    model.TextVisible,
		AnimationDuration: 600 * time.Millisecond,
		SliderColor:       "#181821",
		SwitchColor:       "#2371FA",
		TextColor:         "white",
		LogLevel:          "debug",
	}
}

// Style applies the settings on top of base. Colours that fail to parse
// keep the base colour.
func (settings Settings) Style(base stickyswitch.Style) stickyswitch.Style {
	style := base
	style.LeftText = settings.LeftText
	style.RightText = settings.RightText
	style.AnimationType = settings.AnimationType
	style.TextVisibility = settings.TextVisibility
	style.AnimationDuration = settings.AnimationDuration

	if parsed, err := ParseColor(settings.SliderColor); err == nil {
		style.SliderBackgroundColor = parsed
	}
	if parsed, err := ParseColor(settings.SwitchColor); err == nil {
		style.SwitchColor = parsed
	}
	if parsed, err := ParseColor(settings.TextColor); err == nil {
		style.TextColor = parsed
	}
	return style
}

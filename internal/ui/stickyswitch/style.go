package stickyswitch

import (
	"image/color"
	"time"

	"stickyswitch/internal/core/model"

	"fyne.io/fyne/v2"
)

// Style describes how a StickySwitch looks and moves.
type Style struct {
	LeftText  string
	RightText string
	LeftIcon  fyne.Resource
	RightIcon fyne.Resource

	IconSize         float32
	IconPadding      float32
	TextSize         float32
	SelectedTextSize float32

	SliderBackgroundColor color.Color
	SwitchColor           color.Color
	TextColor             color.Color

	AnimationType     model.AnimationType
	TextVisibility    model.TextVisibility
	AnimationDuration time.Duration
}

// DefaultStyle returns the stock look of the switch.
func DefaultStyle() Style {
	return Style{
		IconSize:              28,
		IconPadding:           20,
		TextSize:              14,
		SelectedTextSize:      16,
		SliderBackgroundColor: color.NRGBA{R: 0x18, G: 0x18, B: 0x21, A: 0xff},
		SwitchColor:           color.NRGBA{R: 0x23, G: 0x71, B: 0xfa, A: 0xff},
		TextColor:             color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		AnimationType:         model.AnimationLine,
		TextVisibility:        model.TextVisible,
		AnimationDuration:     600 * time.Millisecond,
	}
}

func (style Style) diameter() float32 {
	return (style.IconPadding + style.IconSize/2) * 2
}

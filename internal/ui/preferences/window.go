package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"stickyswitch/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ErrInvalidDuration indicates a duration that is not a non-negative integer.
var ErrInvalidDuration = errors.New("invalid duration")

var logLevels = []string{"panic", "fatal", "error", "warning", "info", "debug", "trace"}

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	leftText   *widget.Entry
	rightText  *widget.Entry
	initial    *widget.RadioGroup
	animation  *widget.Select
	visibility *widget.Select
	duration   *widget.Entry
	slider     *widget.Entry
	thumb      *widget.Entry
	text       *widget.Entry
	logLevel   *widget.Select
	status     *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("StickySwitch Settings")

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		leftText:   widget.NewEntry(),
		rightText:  widget.NewEntry(),
		initial:    widget.NewRadioGroup([]string{model.Left.String(), model.Right.String()}, nil),
		animation:  widget.NewSelect([]string{string(model.AnimationLine), string(model.AnimationCurved)}, nil),
		visibility: widget.NewSelect([]string{string(model.TextVisible), string(model.TextInvisible), string(model.TextGone)}, nil),
		duration:   widget.NewEntry(),
		slider:     widget.NewEntry(),
		thumb:      widget.NewEntry(),
		text:       widget.NewEntry(),
		logLevel:   widget.NewSelect(logLevels, nil),
		status:     widget.NewLabel(""),
	}
	prefs.initial.Horizontal = true
	prefs.UpdateSettings(settings)

	form := widget.NewForm(
		widget.NewFormItem("Left text", prefs.leftText),
		widget.NewFormItem("Right text", prefs.rightText),
		widget.NewFormItem("Start on", prefs.initial),
		widget.NewFormItem("Animation", prefs.animation),
		widget.NewFormItem("Text", prefs.visibility),
		widget.NewFormItem("Duration (ms)", prefs.duration),
		widget.NewFormItem("Slider colour", prefs.slider),
		widget.NewFormItem("Switch colour", prefs.thumb),
		widget.NewFormItem("Text colour", prefs.text),
		widget.NewFormItem("Log level", prefs.logLevel),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), prefs.status, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 460))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.leftText.SetText(settings.LeftText)
	prefs.rightText.SetText(settings.RightText)
	prefs.initial.SetSelected(settings.Initial.String())
	prefs.animation.SetSelected(string(settings.AnimationType))
	prefs.visibility.SetSelected(string(settings.TextVisibility))
	prefs.duration.SetText(strconv.Itoa(int(settings.AnimationDuration / time.Millisecond)))
	prefs.slider.SetText(settings.SliderColor)
	prefs.thumb.SetText(settings.SwitchColor)
	prefs.text.SetText(settings.TextColor)
	prefs.logLevel.SetSelected(settings.LogLevel)
	prefs.status.SetText("")
}

func (prefs *Window) handleSave() {
	settings, err := prefs.collect()
	if err != nil {
		prefs.status.SetText(err.Error())
		return
	}

	prefs.settings = settings
	prefs.status.SetText("")
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() (Settings, error) {
	settings := prefs.settings
	settings.LeftText = prefs.leftText.Text
	settings.RightText = prefs.rightText.Text
	settings.Initial = model.ParseDirection(prefs.initial.Selected)
	settings.AnimationType = model.ParseAnimationType(prefs.animation.Selected)
	settings.TextVisibility = model.ParseTextVisibility(prefs.visibility.Selected)

	millis, ok := parseNonNegativeInt(prefs.duration.Text)
	if !ok {
		return prefs.settings, fmt.Errorf("duration %q: %w", prefs.duration.Text, ErrInvalidDuration)
	}
	settings.AnimationDuration = time.Duration(millis) * time.Millisecond

	for _, value := range []string{prefs.slider.Text, prefs.thumb.Text, prefs.text.Text} {
		if _, err := ParseColor(value); err != nil {
			return prefs.settings, err
		}
	}
	settings.SliderColor = prefs.slider.Text
	settings.SwitchColor = prefs.thumb.Text
	settings.TextColor = prefs.text.Text

	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}
	return settings, nil
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

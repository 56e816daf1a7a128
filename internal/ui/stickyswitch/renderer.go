package stickyswitch

import (
	"image/color"
	"math"

	"stickyswitch/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Connector geometry for the curved animation, points at pi/6 on the circle.
const (
	curveX = 0.5
	curveY = 0.86602540378
)

const unselectedIconTranslucency = 0.4

type renderer struct {
	sticky *StickySwitch

	background *canvas.Rectangle
	original   *canvas.Circle
	copied     *canvas.Circle
	connector  *canvas.Rectangle
	leftIcon   *canvas.Image
	rightIcon  *canvas.Image
	leftText   *canvas.Text
	rightText  *canvas.Text
	objects    []fyne.CanvasObject
}

func newRenderer(sticky *StickySwitch) *renderer {
	style := sticky.style
	r := &renderer{
		sticky:     sticky,
		background: canvas.NewRectangle(style.SliderBackgroundColor),
		original:   canvas.NewCircle(style.SwitchColor),
		copied:     canvas.NewCircle(style.SwitchColor),
		connector:  canvas.NewRectangle(style.SwitchColor),
		leftIcon:   canvas.NewImageFromResource(style.LeftIcon),
		rightIcon:  canvas.NewImageFromResource(style.RightIcon),
		leftText:   canvas.NewText(style.LeftText, style.TextColor),
		rightText:  canvas.NewText(style.RightText, style.TextColor),
	}
	r.leftIcon.FillMode = canvas.ImageFillContain
	r.rightIcon.FillMode = canvas.ImageFillContain
	r.objects = []fyne.CanvasObject{
		r.background, r.connector, r.original, r.copied,
		r.leftIcon, r.rightIcon, r.leftText, r.rightText,
	}
	return r
}

func (r *renderer) Layout(size fyne.Size) {
	style := r.sticky.style
	frame := r.sticky.currentFrame()

	radius := style.diameter() / 2
	r.background.CornerRadius = radius
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(fyne.NewSize(size.Width, style.diameter()))

	percent := frame.Percent
	beforeHalf := percent <= 0.5
	widthSpace := float64(size.Width - style.diameter())

	originalX := float64(radius) + widthSpace*math.Min(1, percent*2)
	copiedX := float64(radius)
	if !beforeHalf {
		copiedX += widthSpace * math.Abs(0.5-percent) * 2
	}
	circleRadius := float64(radius) * percent
	if beforeHalf {
		circleRadius = float64(radius) * (1 - percent)
	}
	bounced := float32(circleRadius * frame.BounceRate)

	placeCircle(r.original, float32(originalX), radius, bounced)
	placeCircle(r.copied, float32(copiedX), radius, bounced)

	switch style.AnimationType {
	case model.AnimationCurved:
		if percent <= 0 || percent >= 1 {
			r.connector.Hide()
			break
		}
		left := float32(copiedX + circleRadius*curveX)
		right := float32(originalX - circleRadius*curveX)
		height := float32(circleRadius * curveY)
		r.placeConnector(left, right, radius-height/2, height)
	default:
		r.placeConnector(float32(copiedX), float32(originalX), radius-radius/2, radius)
	}

	iconSize := fyne.NewSize(style.IconSize, style.IconSize)
	r.leftIcon.Move(fyne.NewPos(style.IconPadding, style.IconPadding))
	r.leftIcon.Resize(iconSize)
	r.rightIcon.Move(fyne.NewPos(size.Width-style.IconSize-style.IconPadding, style.IconPadding))
	r.rightIcon.Resize(iconSize)

	if style.TextVisibility != model.TextVisible {
		r.leftText.Hide()
		r.rightText.Hide()
		return
	}
	r.leftText.Show()
	r.rightText.Show()

	bottomSpace := size.Height - style.diameter()
	leftSize := r.leftText.MinSize()
	r.leftText.Move(fyne.NewPos((style.diameter()-leftSize.Width)/2, style.diameter()+(bottomSpace-leftSize.Height)/2))
	r.leftText.Resize(leftSize)

	rightSize := r.rightText.MinSize()
	rightX := (style.diameter()-rightSize.Width)/2 + size.Width - style.diameter()
	r.rightText.Move(fyne.NewPos(rightX, style.diameter()+(bottomSpace-rightSize.Height)/2))
	r.rightText.Resize(rightSize)
}

func (r *renderer) MinSize() fyne.Size {
	style := r.sticky.style
	diameter := style.diameter()

	textWidth := float32(0)
	textHeight := float32(0)
	if style.TextVisibility != model.TextGone {
		textWidth = fyne.MeasureText(style.LeftText, style.SelectedTextSize, fyne.TextStyle{}).Width +
			fyne.MeasureText(style.RightText, style.SelectedTextSize, fyne.TextStyle{}).Width
		textHeight = style.SelectedTextSize * 2
	}
	return fyne.NewSize(diameter*2+textWidth, diameter+textHeight)
}

func (r *renderer) Refresh() {
	style := r.sticky.style
	frame := r.sticky.currentFrame()
	right := frame.Percent >= 0.5

	r.background.FillColor = style.SliderBackgroundColor
	r.original.FillColor = style.SwitchColor
	r.copied.FillColor = style.SwitchColor
	r.connector.FillColor = style.SwitchColor

	r.leftIcon.Resource = style.LeftIcon
	r.rightIcon.Resource = style.RightIcon
	r.leftIcon.Translucency = 0
	r.rightIcon.Translucency = unselectedIconTranslucency
	if right {
		r.leftIcon.Translucency = unselectedIconTranslucency
		r.rightIcon.Translucency = 0
	}

	r.leftText.Text = style.LeftText
	r.leftText.TextSize = frame.LeftTextSize
	r.leftText.Color = withAlpha(style.TextColor, frame.LeftTextAlpha)
	r.rightText.Text = style.RightText
	r.rightText.TextSize = frame.RightTextSize
	r.rightText.Color = withAlpha(style.TextColor, frame.RightTextAlpha)

	r.Layout(r.sticky.Size())
	for _, object := range r.objects {
		canvas.Refresh(object)
	}
}

func (r *renderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *renderer) Destroy() {
	r.sticky.engine.Stop()
}

func (r *renderer) placeConnector(left, right, top, height float32) {
	if right < left {
		left, right = right, left
	}
	r.connector.Show()
	r.connector.Move(fyne.NewPos(left, top))
	r.connector.Resize(fyne.NewSize(right-left, height))
}

func placeCircle(circle *canvas.Circle, centerX, centerY, radius float32) {
	circle.Move(fyne.NewPos(centerX-radius, centerY-radius))
	circle.Resize(fyne.NewSize(radius*2, radius*2))
}

func withAlpha(base color.Color, alpha uint8) color.Color {
	if base == nil {
		base = color.White
	}
	nrgba := color.NRGBAModel.Convert(base).(color.NRGBA)
	nrgba.A = uint8(uint16(nrgba.A) * uint16(alpha) / 255)
	return nrgba
}

package animation

import (
	"math"
	"time"
)

// Text alpha of the selected and unselected side.
const (
	AlphaSelected   uint8 = 255
	AlphaUnselected uint8 = 163
)

// Frame is one rendered step of a switch transition.
type Frame struct {
	// Percent is the slider position, 0 for left and 1 for right.
	Percent float64
	// BounceRate scales both circles; 1 at rest.
	BounceRate float64

	LeftTextSize   float32
	RightTextSize  float32
	LeftTextAlpha  uint8
	RightTextAlpha uint8
}

// RestFrame returns the settled frame for a side.
func RestFrame(right bool, textSize, selectedTextSize float32) Frame {
	if right {
		return Frame{
			Percent:        1,
			BounceRate:     1,
			LeftTextSize:   textSize,
			RightTextSize:  selectedTextSize,
			LeftTextAlpha:  AlphaUnselected,
			RightTextAlpha: AlphaSelected,
		}
	}
	return Frame{
		Percent:        0,
		BounceRate:     1,
		LeftTextSize:   selectedTextSize,
		RightTextSize:  textSize,
		LeftTextAlpha:  AlphaSelected,
		RightTextAlpha: AlphaUnselected,
	}
}

// Total returns the length of a full transition including the bounce.
func (config Config) Total() time.Duration {
	return config.Duration + config.bounceDuration()
}

func (config Config) textDelay() time.Duration {
	return config.Duration / 3
}

func (config Config) bounceDuration() time.Duration {
	return time.Duration(float64(config.Duration) * config.BounceFraction)
}

// Sample returns the frame of a transition from -> to after elapsed.
func Sample(config Config, from, to Frame, elapsed time.Duration) Frame {
	if config.Duration <= 0 || elapsed >= config.Total() {
		settled := to
		settled.BounceRate = 1
		return settled
	}

	slide := accelerate(progress(elapsed, 0, config.Duration))
	textLength := config.Duration - config.textDelay()
	text := accelerateDecelerate(progress(elapsed, config.textDelay(), textLength))

	return Frame{
		Percent:        lerp(from.Percent, to.Percent, slide),
		BounceRate:     bounce(progress(elapsed, config.Duration, config.bounceDuration()), elapsed >= config.Duration),
		LeftTextSize:   float32(lerp(float64(from.LeftTextSize), float64(to.LeftTextSize), text)),
		RightTextSize:  float32(lerp(float64(from.RightTextSize), float64(to.RightTextSize), text)),
		LeftTextAlpha:  uint8(math.Round(lerp(float64(from.LeftTextAlpha), float64(to.LeftTextAlpha), text))),
		RightTextAlpha: uint8(math.Round(lerp(float64(from.RightTextAlpha), float64(to.RightTextAlpha), text))),
	}
}

func progress(elapsed, delay, length time.Duration) float64 {
	if length <= 0 {
		if elapsed >= delay {
			return 1
		}
		return 0
	}
	value := float64(elapsed-delay) / float64(length)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// bounce dips from 1 to 0.9 and back once the slide has finished.
func bounce(t float64, started bool) float64 {
	if !started {
		return 1
	}
	eased := decelerate(t)
	if eased < 0.5 {
		return 1 - 0.1*(eased*2)
	}
	return 0.9 + 0.1*((eased-0.5)*2)
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func accelerate(t float64) float64 {
	return t * t
}

func decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func accelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

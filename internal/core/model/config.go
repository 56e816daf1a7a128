package model

// AnimationType selects the connector shape drawn during a transition.
type AnimationType string

const (
	AnimationLine   AnimationType = "LINE"
	AnimationCurved AnimationType = "CURVED"
)

// TextVisibility controls the side labels under the switch.
type TextVisibility string

const (
	TextVisible   TextVisibility = "VISIBLE"
	TextInvisible TextVisibility = "INVISIBLE"
	TextGone      TextVisibility = "GONE"
)

// ParseAnimationType returns the animation type for name, falling back to LINE.
func ParseAnimationType(name string) AnimationType {
	if AnimationType(name) == AnimationCurved {
		return AnimationCurved
	}
	return AnimationLine
}

// ParseTextVisibility returns the visibility for name, falling back to VISIBLE.
func ParseTextVisibility(name string) TextVisibility {
	switch TextVisibility(name) {
	case TextInvisible:
		return TextInvisible
	case TextGone:
		return TextGone
	default:
		return TextVisible
	}
}

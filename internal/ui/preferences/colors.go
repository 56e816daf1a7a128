package preferences

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor indicates a colour value that is neither hex nor a known name.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor accepts #RRGGBB, #RRGGBBAA or a CSS colour name.
func ParseColor(value string) (color.NRGBA, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, ErrInvalidColor)
	}

	if strings.HasPrefix(trimmed, "#") {
		raw, err := hex.DecodeString(trimmed[1:])
		if err != nil || (len(raw) != 3 && len(raw) != 4) {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, ErrInvalidColor)
		}
		parsed := color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
		if len(raw) == 4 {
			parsed.A = raw[3]
		}
		return parsed, nil
	}

	named, ok := colornames.Map[trimmed]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, ErrInvalidColor)
	}
	return color.NRGBAModel.Convert(named).(color.NRGBA), nil
}

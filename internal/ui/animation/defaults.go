package animation

import "time"

// DefaultConfig returns the stock transition timing.
func DefaultConfig() Config {
	return Config{
		Duration:       600 * time.Millisecond,
		FrameInterval:  16 * time.Millisecond,
		BounceFraction: 0.41,
	}
}

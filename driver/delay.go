package driver

import "time"

// Speed bounds accepted by the control surface.
const (
	MinSpeed = 1
	MaxSpeed = 100
)

// ClampSpeed limits s to [MinSpeed, MaxSpeed].
func ClampSpeed(s int) int {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

// Delay converts a speed into the pause between steps:
// max(1, 200 - 2*speed) milliseconds, speed clamped first.
func Delay(speed int) time.Duration {
	ms := 200 - 2*ClampSpeed(speed)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

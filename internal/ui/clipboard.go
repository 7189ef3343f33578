package ui

import "time"

// CopyResetDelay is how long the "copied" indicator stays on.
const CopyResetDelay = 2 * time.Second

// CopyIndicator is the transient "copied" state of the copy-email chip.
// A new trigger replaces the previous one, restarting the delay.
type CopyIndicator struct {
	triggeredAt time.Time
}

// CopyIndicatorSince rebuilds an indicator triggered at t. A zero t is idle.
func CopyIndicatorSince(t time.Time) CopyIndicator {
	return CopyIndicator{triggeredAt: t}
}

// Trigger records a copy at now.
func (c CopyIndicator) Trigger(now time.Time) CopyIndicator {
	c.triggeredAt = now
	return c
}

// Reset turns the indicator off.
func (c CopyIndicator) Reset() CopyIndicator {
	return CopyIndicator{}
}

// Copied reports whether the indicator is still on at now.
func (c CopyIndicator) Copied(now time.Time) bool {
	if c.triggeredAt.IsZero() {
		return false
	}
	elapsed := now.Sub(c.triggeredAt)
	return elapsed >= 0 && elapsed < CopyResetDelay
}

// Remaining returns how long until the indicator turns off at now.
func (c CopyIndicator) Remaining(now time.Time) time.Duration {
	if !c.Copied(now) {
		return 0
	}
	return CopyResetDelay - now.Sub(c.triggeredAt)
}

// TriggeredAt returns when the indicator was last triggered.
func (c CopyIndicator) TriggeredAt() time.Time {
	return c.triggeredAt
}

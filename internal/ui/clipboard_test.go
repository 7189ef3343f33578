package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCopyIndicatorLifecycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var c CopyIndicator
	assert.False(t, c.Copied(start))

	c = c.Trigger(start)
	assert.True(t, c.Copied(start))
	assert.True(t, c.Copied(start.Add(1999*time.Millisecond)))
	assert.False(t, c.Copied(start.Add(CopyResetDelay)))
	assert.Equal(t, 500*time.Millisecond, c.Remaining(start.Add(1500*time.Millisecond)))
	assert.Zero(t, c.Remaining(start.Add(3*time.Second)))
}

func TestCopyIndicatorRetriggerRestartsDelay(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c := CopyIndicator{}.Trigger(start).Trigger(start.Add(1500 * time.Millisecond))
	assert.True(t, c.Copied(start.Add(3*time.Second)))
	assert.False(t, c.Copied(start.Add(3500*time.Millisecond)))
}

func TestCopyIndicatorReset(t *testing.T) {
	now := time.Now()
	c := CopyIndicator{}.Trigger(now).Reset()
	assert.False(t, c.Copied(now))
	assert.True(t, c.TriggeredAt().IsZero())
}

func TestCopyIndicatorSince(t *testing.T) {
	now := time.Now()
	assert.True(t, CopyIndicatorSince(now.Add(-time.Second)).Copied(now))
	assert.False(t, CopyIndicatorSince(now.Add(-5*time.Second)).Copied(now))
	assert.False(t, CopyIndicatorSince(time.Time{}).Copied(now))
	// Clock skew: a trigger in the future is not "copied"
	assert.False(t, CopyIndicatorSince(now.Add(time.Minute)).Copied(now))
}

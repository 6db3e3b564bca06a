package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockFiresInDeadlineOrder(t *testing.T) {
	c := NewClock()
	var got []string

	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "d") })
	c.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(25 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 25*time.Millisecond, c.Now())

	c.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got, "ties fire in creation order")
	assert.Equal(t, 0, c.Pending())
}

func TestClockEvery(t *testing.T) {
	c := NewClock()
	var at []time.Duration

	c.Every(100*time.Millisecond, func() { at = append(at, c.Now()) })
	c.Advance(350 * time.Millisecond)

	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
	}, at)
}

func TestTimerStop(t *testing.T) {
	c := NewClock()
	fired := 0

	timer := c.Every(10*time.Millisecond, func() { fired++ })
	c.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, fired)

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.False(t, timer.Active())

	c.Advance(time.Second)
	assert.Equal(t, 2, fired)

	var nilTimer *Timer
	assert.False(t, nilTimer.Stop())
}

func TestTimerStoppedFromCallback(t *testing.T) {
	c := NewClock()
	fired := 0

	var timer *Timer
	timer = c.Every(10*time.Millisecond, func() {
		fired++
		if fired == 3 {
			timer.Stop()
		}
	})

	c.Advance(time.Second)
	assert.Equal(t, 3, fired)
}

func TestTimerScheduledFromCallback(t *testing.T) {
	c := NewClock()
	var got []time.Duration

	c.AfterFunc(10*time.Millisecond, func() {
		c.AfterFunc(5*time.Millisecond, func() { got = append(got, c.Now()) })
	})

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, []time.Duration{15 * time.Millisecond}, got)
}

func TestEveryClampsPeriod(t *testing.T) {
	c := NewClock()
	timer := c.Every(0, func() {})
	assert.Equal(t, time.Millisecond, timer.Period())
}

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualTime struct {
	t     time.Time
	slept []time.Duration
}

func (m *manualTime) now() time.Time { return m.t }

func (m *manualTime) sleep(d time.Duration) {
	m.slept = append(m.slept, d)
	m.t = m.t.Add(d)
}

func manualClock(framerate int) (*FrameClock, *manualTime) {
	m := &manualTime{t: time.Unix(1000, 0)}
	c := NewFrameClock(framerate)
	c.now, c.sleep, c.last = m.now, m.sleep, m.t
	return c, m
}

func TestFrameClockClamp(t *testing.T) {
	assert.Equal(t, 60, NewFrameClock(0).Framerate())
	assert.Equal(t, 60, NewFrameClock(-5).Framerate())
	assert.Equal(t, 1, NewFrameClock(1).Framerate())
	assert.Equal(t, 240, NewFrameClock(1000).Framerate())
}

func TestFrameClockSleepsToTarget(t *testing.T) {
	c, m := manualClock(50)

	dt := c.Tick()
	assert.InDelta(t, 0.02, dt, 1e-9)
	assert.Equal(t, []time.Duration{20 * time.Millisecond}, m.slept)

	m.t = m.t.Add(5 * time.Millisecond)
	dt = c.Tick()
	assert.InDelta(t, 0.02, dt, 1e-9)
	assert.Equal(t, 15*time.Millisecond, m.slept[1])
}

func TestFrameClockSlowFrameDoesNotSleep(t *testing.T) {
	c, m := manualClock(50)

	m.t = m.t.Add(40 * time.Millisecond)
	dt := c.Tick()
	assert.InDelta(t, 0.04, dt, 1e-9)
	assert.Empty(t, m.slept)
}

func TestFrameClockFPS(t *testing.T) {
	c, m := manualClock(50)
	assert.Equal(t, 0.0, c.FPS())

	for i := 0; i < 25; i++ {
		c.Tick()
	}
	assert.InDelta(t, 50, c.FPS(), 1e-6)

	// only the last ten ticks count
	for i := 0; i < 10; i++ {
		m.t = m.t.Add(100 * time.Millisecond)
		c.Tick()
	}
	assert.InDelta(t, 10, c.FPS(), 1e-6)
}

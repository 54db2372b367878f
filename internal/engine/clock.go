package engine

import "time"

// Clock paces the render loop.
type Clock interface {
	// Tick blocks long enough to hold the target frame rate and returns the
	// seconds elapsed since the previous tick.
	Tick() float64
	// FPS is the average frame rate over the last few ticks.
	FPS() float64
}

const fpsSamples = 10

// FrameClock is a sleep based frame limiter.
type FrameClock struct {
	framerate int
	last      time.Time

	samples [fpsSamples]time.Duration
	count   int
	next    int

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock returns a clock targeting framerate frames per second,
// clamped to 1..240 with 60 used for non-positive values.
func NewFrameClock(framerate int) *FrameClock {
	if framerate <= 0 {
		framerate = 60
	} else if framerate > 240 {
		framerate = 240
	}
	c := &FrameClock{
		framerate: framerate,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	c.last = c.now()
	return c
}

func (c *FrameClock) Framerate() int { return c.framerate }

func (c *FrameClock) Tick() float64 {
	target := time.Second / time.Duration(c.framerate)
	if elapsed := c.now().Sub(c.last); elapsed < target {
		c.sleep(target - elapsed)
	}

	now := c.now()
	dt := now.Sub(c.last)
	c.last = now

	c.samples[c.next] = dt
	c.next = (c.next + 1) % fpsSamples
	if c.count < fpsSamples {
		c.count++
	}
	return dt.Seconds()
}

func (c *FrameClock) FPS() float64 {
	var total time.Duration
	for i := 0; i < c.count; i++ {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.count) / total.Seconds()
}

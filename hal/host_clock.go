package hal

import "time"

// frameClock measures the real time between consecutive frames.
type frameClock struct {
	last time.Time
}

// deltaMs returns the milliseconds elapsed since the previous call.
// The first call returns 0.
func (c *frameClock) deltaMs() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return float64(d) / float64(time.Millisecond)
}

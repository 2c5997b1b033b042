// Package timing holds frame based timers.
package timing

// FrameCounter is a restartable countdown that elapses once every Max ticks.
// The zero value elapses on every tick.
type FrameCounter struct {
	max   int
	count int
}

// NewFrameCounter returns a counter of max frames, ready for a full interval.
func NewFrameCounter(max int) FrameCounter {
	c := FrameCounter{}
	c.SetMax(max)
	return c
}

// SetMax changes the interval length and restarts the countdown.
// Intervals below one frame are treated as one frame.
func (c *FrameCounter) SetMax(max int) {
	if max < 1 {
		max = 1
	}
	c.max = max
	c.count = max
}

// Max returns the configured interval length in frames.
func (c *FrameCounter) Max() int {
	if c.max < 1 {
		return 1
	}
	return c.max
}

// Remaining returns the frames left until the counter elapses.
func (c *FrameCounter) Remaining() int {
	return c.count
}

// Reset restarts the countdown from the configured maximum.
func (c *FrameCounter) Reset() {
	c.count = c.Max()
}

// Tick advances the counter one frame. It reports true when the interval has
// elapsed, in which case the countdown restarts.
func (c *FrameCounter) Tick() bool {
	c.count--
	if c.count <= 0 {
		c.Reset()
		return true
	}
	return false
}

// ForceReady makes the next Tick report elapsed.
func (c *FrameCounter) ForceReady() {
	c.count = 0
}

// Ready reports whether the next Tick will elapse.
func (c *FrameCounter) Ready() bool {
	return c.count <= 1
}

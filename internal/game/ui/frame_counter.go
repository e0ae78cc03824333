package ui

// fpsWindow is how often the frame rate is recomputed, in seconds.
const fpsWindow = 0.5

// FrameCounter measures frames per second over a short sliding window.
type FrameCounter struct {
	frames    uint64
	fps       float64
	frameTime float64 // ms

	accumFrames int
	accumTime   float64
}

// Tick records one frame that took dt seconds.
func (c *FrameCounter) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.frames++
	c.frameTime = dt * 1000
	c.accumFrames++
	c.accumTime += dt

	if c.accumTime >= fpsWindow {
		c.fps = float64(c.accumFrames) / c.accumTime
		c.accumFrames = 0
		c.accumTime = 0
	}
}

// FPS returns the frame rate of the last complete window.
func (c *FrameCounter) FPS() float64 {
	return c.fps
}

// FrameTime returns the duration of the last frame in milliseconds.
func (c *FrameCounter) FrameTime() float64 {
	return c.frameTime
}

// Frames returns the total number of frames.
func (c *FrameCounter) Frames() uint64 {
	return c.frames
}

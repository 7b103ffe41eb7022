package viewer

import "fmt"

// FPSInterval is how often, in seconds, the frame rate is recomputed.
const FPSInterval = 0.25

// FPSCounter averages the frame rate over FPSInterval windows.
type FPSCounter struct {
	elapsed float64
	frames  int
	fps     float64
}

// Tick records one frame of dt seconds. It reports true when a new average
// is ready.
func (c *FPSCounter) Tick(dt float32) bool {
	c.elapsed += float64(dt)
	c.frames++
	if c.elapsed < FPSInterval {
		return false
	}
	c.fps = float64(c.frames) / c.elapsed
	c.elapsed = 0
	c.frames = 0
	return true
}

// FPS returns the last computed frame rate.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// FrameTime returns the last average frame time in milliseconds.
func (c *FPSCounter) FrameTime() float64 {
	if c.fps == 0 {
		return 0
	}
	return 1000 / c.fps
}

// Title formats the window title with the current statistics.
func (c *FPSCounter) Title(base string) string {
	return fmt.Sprintf("%s    FPS: %.1f    Frame time: %.2f ms", base, c.FPS(), c.FrameTime())
}

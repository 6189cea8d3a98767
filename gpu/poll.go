package gpu

import "time"

// PollLoop drives asynchronous device callbacks until stop is closed.
// Run it on its own goroutine; it only observes backend internal
// queues and never touches surface state, so no synchronization with
// the render thread is needed.
func (c *Context) PollLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.Device.Poll(false, nil)
		}
	}
}

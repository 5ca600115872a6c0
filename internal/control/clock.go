package control

import "time"

// Clock provides the blocking delays of the control loop
type Clock interface {
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// SimulatedClock advances instantly, keeping track of the total time slept
type SimulatedClock struct {
	elapsed time.Duration
}

func (c *SimulatedClock) Sleep(d time.Duration) {
	if d > 0 {
		c.elapsed += d
	}
}

func (c *SimulatedClock) Elapsed() time.Duration {
	return c.elapsed
}

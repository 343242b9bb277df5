package util

import "time"

// FramePacer schedules frames on a fixed interval. The loop waits until the next
// tick instead of relying on vsync.
type FramePacer struct {
	Interval time.Duration
	last     time.Time
	next     time.Time
}

func NewFramePacer(interval time.Duration, now time.Time) *FramePacer {
	return &FramePacer{
		Interval: interval,
		last:     now,
		next:     now,
	}
}

// Tick starts a frame at now and returns the seconds since the previous frame.
func (p *FramePacer) Tick(now time.Time) float64 {
	elapsed := now.Sub(p.last).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	p.last = now
	p.next = now.Add(p.Interval)
	return elapsed
}

// Remaining is the time left until the next frame is due, never negative.
func (p *FramePacer) Remaining(now time.Time) time.Duration {
	remaining := p.next.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

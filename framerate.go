package gfx

import "time"

// FrameRateLimit caps how fast the frame loop spins. Rendering as fast as
// possible burns CPU and GPU for no visible gain when the workload is tiny,
// so the loop sleeps away whatever is left of each frame's time budget.
type FrameRateLimit struct {
	framesToTrack int
	frameStarts   []time.Time // newest first
	target        time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameRateLimit creates a limit targeting targetFPS, averaging frame
// times over the last framesToTrack frames.
func NewFrameRateLimit(targetFPS, framesToTrack int) *FrameRateLimit {
	l := &FrameRateLimit{
		framesToTrack: max(framesToTrack, 1),
		now:           time.Now,
		sleep:         time.Sleep,
	}
	l.SetTargetFPS(targetFPS)
	return l
}

// SetTargetFPS changes the targeted frame rate. Zero or less disables the
// limit.
func (l *FrameRateLimit) SetTargetFPS(fps int) {
	if fps <= 0 {
		l.target = 0
		return
	}
	l.target = time.Second / time.Duration(fps)
}

// Target returns the per-frame time budget.
func (l *FrameRateLimit) Target() time.Duration {
	return l.target
}

// StartFrame records the start of a frame.
func (l *FrameRateLimit) StartFrame() {
	if len(l.frameStarts) >= l.framesToTrack {
		l.frameStarts = l.frameStarts[:l.framesToTrack-1]
	}
	l.frameStarts = append([]time.Time{l.now()}, l.frameStarts...)
}

// SleepToLimit sleeps for whatever remains of the current frame's budget.
func (l *FrameRateLimit) SleepToLimit() {
	if l.target == 0 || len(l.frameStarts) == 0 {
		return
	}
	elapsed := l.now().Sub(l.frameStarts[0])
	if elapsed < l.target {
		l.sleep(l.target - elapsed)
	}
}

// AvgFrameTime returns the average duration of the tracked frames.
func (l *FrameRateLimit) AvgFrameTime() time.Duration {
	if len(l.frameStarts) == 0 {
		return 0
	}
	oldest := l.frameStarts[len(l.frameStarts)-1]
	return l.now().Sub(oldest) / time.Duration(len(l.frameStarts))
}

package util

import (
	"fmt"
	"math"
	"time"
)

type TimerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func newTimerState(name string) *TimerState {
	return &TimerState{
		name:        name,
		minDuration: math.MaxFloat64,
		maxDuration: 0,
	}
}

func (t *TimerState) averageDuration() float64 {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / float64(t.executionCount)
}

func (t *TimerState) record(durationInMS float64) {
	t.lastDuration = durationInMS
	t.totalDuration += durationInMS
	t.executionCount++
	t.minDuration = math.Min(t.minDuration, durationInMS)
	t.maxDuration = math.Max(t.maxDuration, durationInMS)
}

func (t *TimerState) ExecutionCount() int64 {
	return t.executionCount
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms", t.name, t.lastDuration, t.averageDuration(), t.minDuration, t.maxDuration)
}

// Timer keeps per-name duration statistics of the update and draw phases.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) Reset() {
	for name := range t.states {
		t.states[name] = newTimerState(name)
	}
}

func (t *Timer) String() string {
	var str string
	for _, name := range t.timerNames {
		str += t.states[name].String() + "\n"
	}
	return str
}

// Start begins measuring name, the returned func stops it and reports milliseconds.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = newTimerState(name)
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.record(durationInMS)
		return durationInMS
	}
}

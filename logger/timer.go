package logger

import (
	"fmt"
	"time"
)

// TimerMark starts the stopwatch, discarding any earlier mark.
func (l *Logger) TimerMark() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mark, l.marked = l.now(), true
}

// TimerMeasure logs the time since the last TimerMark at DebugLevel as
// "ELAPSED [<ms>]ms". Without a mark it does nothing.
func (l *Logger) TimerMeasure() { l.measure(1) }

func (l *Logger) measure(skip int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.marked || !l.enabledLocked(DebugLevel) {
		return
	}
	now := l.now()
	l.emitLocked(entry{
		Time:    now,
		Level:   DebugLevel,
		Caller:  callerAt(skip + 1),
		Message: elapsedMessage(now.Sub(l.mark)),
	})
}

func elapsedMessage(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("ELAPSED [%.6f]ms", float64(d)/float64(time.Millisecond))
}

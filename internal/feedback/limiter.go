package feedback

import (
	"sync"
	"time"
)

// Limiter admits at most max events per key within a rolling window. State
// lives in process memory and is lost on restart.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	log    map[string][]time.Time
	now    func() time.Time
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{max: max, window: window, log: make(map[string][]time.Time), now: time.Now}
}

// Allow records an event for key and reports whether it was admitted.
// Rejected attempts are not recorded.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.log[key][:0]
	for _, t := range l.log[key] {
		if now.Sub(t) < l.window {
			recent = append(recent, t)
		}
	}
	if len(recent) >= l.max {
		l.log[key] = recent
		return false
	}
	l.log[key] = append(recent, now)
	return true
}

// Sweep drops keys whose events have all left the window.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, ts := range l.log {
		if len(ts) == 0 || now.Sub(ts[len(ts)-1]) >= l.window {
			delete(l.log, key)
		}
	}
}

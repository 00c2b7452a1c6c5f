// Package globaltime is the process clock. Tests swap it with SetClock.
package globaltime

import (
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	nowFunc = time.Now
)

func Now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return nowFunc()
}

func UTC() time.Time {
	return Now().UTC()
}

// Since reports the time elapsed from start on the process clock.
func Since(start time.Time) time.Duration {
	return Now().Sub(start)
}

// SetClock installs an arbitrary clock function.
func SetClock(fn func() time.Time) {
	if fn == nil {
		fn = time.Now
	}
	mu.Lock()
	defer mu.Unlock()
	nowFunc = fn
}

func ResetTime() {
	mu.Lock()
	defer mu.Unlock()
	nowFunc = time.Now
}

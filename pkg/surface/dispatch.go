package surface

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function used to defer a callback until the
// surface's pending mutation has settled (a zero-delay task, not real
// concurrency). The embedding shell registers this once at startup; tests
// register a synchronous stand-in.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback for the next tick. Returns true if the
// callback was scheduled, false if no dispatch function is registered or the
// callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

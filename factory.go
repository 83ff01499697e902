package latelog

import "sync"

var (
	registry   = make(map[string]*Logger)
	registryMu sync.RWMutex
)

// Get returns the logger with the given name, creating it on first
// use. Handles are cached per name; repeated calls return the same
// *Logger, so it is cheap to call at every use site.
func Get(name string) *Logger {
	registryMu.RLock()
	l, ok := registry[name]
	registryMu.RUnlock()
	if ok {
		return l
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if l, ok := registry[name]; ok {
		return l
	}
	l = newLogger(name, Coordinator())
	registry[name] = l
	return l
}

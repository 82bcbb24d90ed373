package repository

import "sync"

// NameList is a mutex-guarded list of category names kept in process memory.
// Each method holds the lock for one read or mutate sequence only.
type NameList struct {
	mu    sync.Mutex
	names []string
}

func NewNameList(names ...string) *NameList {
	return &NameList{names: append([]string(nil), names...)}
}

// All returns a copy of the names in insertion order.
func (l *NameList) All() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Add appends name unless it is already present, reporting whether it was added.
func (l *NameList) Add(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, n := range l.names {
		if n == name {
			return false
		}
	}
	l.names = append(l.names, name)
	return true
}

// Remove deletes name, reporting whether it was present.
func (l *NameList) Remove(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			return true
		}
	}
	return false
}

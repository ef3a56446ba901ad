package service

import "sync"

// userLock serializes rating writes per user hash. Two concurrent submits
// for the same (user, day) must collapse into one insert plus one overwrite,
// and the cheapest way to guarantee that across both storage backends is to
// hold a per-user mutex around the check-then-write sequence.
type userLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLock() *userLock {
	return &userLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex of the given user hash, creating it on first use.
// The returned func releases it.
func (l *userLock) Lock(userHash string) func() {
	l.mu.Lock()
	m, ok := l.locks[userHash]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userHash] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

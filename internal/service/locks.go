package service

import (
	"sync"

	"github.com/google/uuid"
)

// listLocks serializes membership mutations per list within this process
type listLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*listLock
}

type listLock struct {
	sync.Mutex
	refs int
}

func newListLocks() *listLocks {
	return &listLocks{locks: make(map[uuid.UUID]*listLock)}
}

// Lock blocks until the caller holds the lock for id and returns the matching unlock.
// Entries are dropped once no caller holds or waits on them.
func (l *listLocks) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &listLock{}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.Lock()
	return func() {
		lock.Unlock()
		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *listLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLock_SerializesSameUser(t *testing.T) {
	locks := newUserLock()

	const writers = 16
	counter := 0

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.Lock("hash-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, counter)
}

func TestUserLock_DifferentUsersDoNotBlock(t *testing.T) {
	locks := newUserLock()

	unlockA := locks.Lock("user-a")
	defer unlockA()

	// must not deadlock while user-a is held
	unlockB := locks.Lock("user-b")
	unlockB()
}

package keylock

import (
	"sync"
	"testing"
)

func TestLockSerializesSameKey(t *testing.T) {
	km := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("emp-1@2026-03-09")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestLockDifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	unlockA := km.Lock("a")
	defer unlockA()

	// Must not deadlock while "a" is held.
	unlockB := km.Lock("b")
	unlockB()
}

func TestLockReleasesEntryWhenUnused(t *testing.T) {
	km := New()

	unlock := km.Lock("a")
	unlock()

	km.mu.Lock()
	remaining := len(km.locks)
	km.mu.Unlock()

	if remaining != 0 {
		t.Errorf("entries remaining after unlock = %d, want 0", remaining)
	}
}

func TestLockReacquireAfterUnlock(t *testing.T) {
	km := New()

	for i := 0; i < 3; i++ {
		unlock := km.Lock("a")
		unlock()
	}
}

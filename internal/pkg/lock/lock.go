// Package lock provides per-owner locking for ledger operations. Every
// mutating operation on a profile's ledger runs under that owner's lock so a
// read-check-write sequence stays indivisible even if callers ever run
// concurrently.
package lock

import (
	"sync"
)

// ownerMutex wraps a mutex with reference counting for cleanup.
type ownerMutex struct {
	mu       sync.Mutex
	refCount int
}

// OwnerLock provides per-owner-key locking. Keys are profile ids, or the
// legacy sentinel key for the profile-less ledger.
type OwnerLock struct {
	locks sync.Map // map[string]*ownerMutex
	pool  sync.Pool
}

// NewOwnerLock creates a new OwnerLock instance.
func NewOwnerLock() *OwnerLock {
	return &OwnerLock{
		pool: sync.Pool{
			New: func() any {
				return &ownerMutex{}
			},
		},
	}
}

// getLock retrieves or creates a mutex for the given owner key.
func (ol *OwnerLock) getLock(key string) *ownerMutex {
	if v, ok := ol.locks.Load(key); ok {
		return v.(*ownerMutex)
	}

	newLock := ol.pool.Get().(*ownerMutex)
	newLock.refCount = 0

	// Store or load existing (handles racing creators).
	actual, loaded := ol.locks.LoadOrStore(key, newLock)
	if loaded {
		ol.pool.Put(newLock)
	}
	return actual.(*ownerMutex)
}

// Lock acquires the lock for an owner key.
func (ol *OwnerLock) Lock(key string) {
	lock := ol.getLock(key)
	lock.mu.Lock()
	lock.refCount++
}

// Unlock releases the lock for an owner key.
func (ol *OwnerLock) Unlock(key string) {
	if v, ok := ol.locks.Load(key); ok {
		lock := v.(*ownerMutex)
		lock.refCount--
		lock.mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false otherwise.
func (ol *OwnerLock) TryLock(key string) bool {
	lock := ol.getLock(key)
	if lock.mu.TryLock() {
		lock.refCount++
		return true
	}
	return false
}

// WithLock executes fn while holding the owner's lock.
func (ol *OwnerLock) WithLock(key string, fn func() error) error {
	ol.Lock(key)
	defer ol.Unlock(key)
	return fn()
}

// IsLocked checks if an owner key currently has an active lock.
// Note: this is a point-in-time check and may change immediately after.
func (ol *OwnerLock) IsLocked(key string) bool {
	if v, ok := ol.locks.Load(key); ok {
		lock := v.(*ownerMutex)
		if lock.mu.TryLock() {
			lock.mu.Unlock()
			return false
		}
		return true
	}
	return false
}

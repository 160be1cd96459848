package workerpool

import (
	"sync"

	"github.com/Swind/go-worker-pool/core"
)

// =============================================================================
// Global Pool Helper (Singleton)
// =============================================================================

var (
	globalPool *core.Pool
	globalMu   sync.Mutex
)

// InitGlobalPool initializes the global pool with the specified number of
// workers. The workers start immediately. It is a no-op if the global pool
// already exists.
func InitGlobalPool(workers int) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalPool != nil {
		return nil // Already initialized
	}

	opts := core.DefaultPoolOptions()
	opts.Name = "global-pool"
	pool, err := core.NewPoolWithOptions(workers, opts)
	if err != nil {
		return err
	}
	globalPool = pool
	return nil
}

// GetGlobalPool returns the global pool instance.
// It panics if InitGlobalPool has not been called.
func GetGlobalPool() *core.Pool {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalPool == nil {
		panic("global pool not initialized. Call InitGlobalPool() first.")
	}
	return globalPool
}

// ShutdownGlobalPool destroys the global pool, draining still-queued jobs
// per their flags. A later InitGlobalPool starts a fresh pool.
func ShutdownGlobalPool() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalPool == nil {
		return nil
	}
	err := globalPool.Destroy()
	globalPool = nil
	return err
}

// Submit adds a job to the global pool. This is the recommended entry
// point for applications that need a single shared pool.
func Submit(work JobFunc, arg any, destructor Destructor, flags JobFlags) error {
	return GetGlobalPool().Submit(work, arg, destructor, flags)
}

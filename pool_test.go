package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"

	workerpool "github.com/Swind/go-worker-pool"
)

// TestGlobalPool_Lifecycle verifies init/use/shutdown of the singleton
// Given: An initialized global pool
// When: Jobs are submitted through the package-level Submit
// Then: They all execute, and shutdown tears the singleton down
func TestGlobalPool_Lifecycle(t *testing.T) {
	if err := workerpool.InitGlobalPool(2); err != nil {
		t.Fatalf("InitGlobalPool failed: %v", err)
	}

	const jobs = 20
	var executed atomic.Int32
	var wg sync.WaitGroup
	wg.Add(jobs)

	for i := 0; i < jobs; i++ {
		err := workerpool.Submit(func(arg any) {
			executed.Add(1)
			wg.Done()
		}, nil, nil, workerpool.NoFlags)
		if err != nil {
			t.Fatalf("Submit #%d failed: %v", i, err)
		}
	}
	wg.Wait()

	if got := executed.Load(); got != jobs {
		t.Errorf("executed = %d, want %d", got, jobs)
	}
	if err := workerpool.ShutdownGlobalPool(); err != nil {
		t.Errorf("ShutdownGlobalPool() = %v, want nil", err)
	}
}

// TestGlobalPool_InitIsIdempotent verifies repeated init is a no-op
// Given: An initialized global pool
// When: InitGlobalPool is called again with a different size
// Then: The original pool survives unchanged
func TestGlobalPool_InitIsIdempotent(t *testing.T) {
	if err := workerpool.InitGlobalPool(2); err != nil {
		t.Fatalf("InitGlobalPool failed: %v", err)
	}
	defer workerpool.ShutdownGlobalPool()

	if err := workerpool.InitGlobalPool(8); err != nil {
		t.Fatalf("second InitGlobalPool failed: %v", err)
	}
	if got := workerpool.GetGlobalPool().WorkerCount(); got != 2 {
		t.Errorf("WorkerCount() = %d after re-init, want 2", got)
	}
}

// TestGlobalPool_ShutdownWithoutInit verifies shutdown is safe when
// nothing was started
// Given: No global pool
// When: ShutdownGlobalPool is called
// Then: It returns nil
func TestGlobalPool_ShutdownWithoutInit(t *testing.T) {
	if err := workerpool.ShutdownGlobalPool(); err != nil {
		t.Errorf("ShutdownGlobalPool() = %v without init, want nil", err)
	}
}

// TestGlobalPool_GetPanicsBeforeInit verifies the fail-fast accessor
// Given: No global pool
// When: GetGlobalPool is called
// Then: It panics
func TestGlobalPool_GetPanicsBeforeInit(t *testing.T) {
	workerpool.ShutdownGlobalPool()

	defer func() {
		if recover() == nil {
			t.Error("GetGlobalPool() did not panic before init")
		}
	}()
	workerpool.GetGlobalPool()
}

// TestGlobalPool_ReinitAfterShutdown verifies a fresh pool can follow a
// destroyed one
// Given: A global pool that was shut down
// When: InitGlobalPool is called again
// Then: Submissions work against the new pool
func TestGlobalPool_ReinitAfterShutdown(t *testing.T) {
	if err := workerpool.InitGlobalPool(1); err != nil {
		t.Fatalf("InitGlobalPool failed: %v", err)
	}
	if err := workerpool.ShutdownGlobalPool(); err != nil {
		t.Fatalf("ShutdownGlobalPool failed: %v", err)
	}

	if err := workerpool.InitGlobalPool(1); err != nil {
		t.Fatalf("re-InitGlobalPool failed: %v", err)
	}
	defer workerpool.ShutdownGlobalPool()

	done := make(chan struct{})
	err := workerpool.Submit(func(arg any) { close(done) }, nil, nil, workerpool.NoFlags)
	if err != nil {
		t.Fatalf("Submit after re-init failed: %v", err)
	}
	<-done
}

// TestInitGlobalPool_InvalidWorkerCount verifies validation passes through
// Given: No global pool
// When: InitGlobalPool is called with zero workers
// Then: It fails and leaves no singleton behind
func TestInitGlobalPool_InvalidWorkerCount(t *testing.T) {
	workerpool.ShutdownGlobalPool()

	if err := workerpool.InitGlobalPool(0); err != workerpool.ErrInvalidWorkerCount {
		t.Errorf("InitGlobalPool(0) = %v, want ErrInvalidWorkerCount", err)
	}
	if err := workerpool.ShutdownGlobalPool(); err != nil {
		t.Errorf("ShutdownGlobalPool() = %v after failed init, want nil", err)
	}
}

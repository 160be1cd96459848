package workerpool

import "github.com/Swind/go-worker-pool/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the workerpool package for most use cases.

// JobFunc is the unit of deferred work
type JobFunc = core.JobFunc

// Destructor releases a job's argument
type Destructor = core.Destructor

// JobFlags holds a job's combinable disposal options
type JobFlags = core.JobFlags

// Pool is the opaque worker pool handle
type Pool = core.Pool

// PoolOptions configures logging, metrics, and panic handling
type PoolOptions = core.PoolOptions

// Config holds file-loadable pool settings
type Config = core.Config

// Flag constants
const (
	NoFlags                JobFlags = core.NoFlags
	RunOnForcedShutdown    JobFlags = core.RunOnForcedShutdown
	RunDestructorAfterWork JobFlags = core.RunDestructorAfterWork
)

// Sentinel errors
var (
	ErrPoolNil            = core.ErrPoolNil
	ErrNilJob             = core.ErrNilJob
	ErrPoolClosed         = core.ErrPoolClosed
	ErrPoolDestroyed      = core.ErrPoolDestroyed
	ErrInvalidWorkerCount = core.ErrInvalidWorkerCount
)

// Constructors and helpers
var (
	NewPool            = core.NewPool
	NewPoolWithOptions = core.NewPoolWithOptions
	DefaultPoolOptions = core.DefaultPoolOptions
	LoadConfig         = core.LoadConfig
	DefaultConfig      = core.DefaultConfig
)

package engine

import (
	"math"
	"sync/atomic"

	"github.com/ValentinKolb/pRDD/lib/executor"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Identities
// --------------------------------------------------------------------------

// DatasetID is a unique id for each dataset inside one execution context.
// Copied datasets keep their id; derived datasets get a fresh one.
type DatasetID uint32

// PartitionID is a unique id for each partition inside one execution context.
type PartitionID uint32

// --------------------------------------------------------------------------
// Execution Context
// --------------------------------------------------------------------------

// Context is the execution context for a family of datasets. It carries the
// configuration, allocates dataset and partition ids, tracks which partitions
// are shared by several children, memoizes shared partitions, and owns the
// task executor used by actions.
//
// Every dataset and partition belongs to exactly one Context, and the Context
// must outlive all of them. Contexts are fully independent; a process may
// host several at once.
type Context struct {
	config   Config
	instance string
	log      *Logger
	metrics  *contextMetrics
	exec     executor.IExecutor

	nextDatasetID   atomic.Uint32
	nextPartitionID atomic.Uint32

	// dependentBy maps a partition to the set of distinct child partitions
	// that consume it. A partition with >= 2 children is worth caching.
	dependentBy *xsync.MapOf[PartitionID, *xsync.MapOf[PartitionID, struct{}]]

	// cache maps a partition to its materialization entry (see cache.go).
	cache *xsync.MapOf[PartitionID, *cacheEntry]
}

// NewContext creates an execution context from the given configuration. A nil
// config selects the defaults. The context must be closed when no longer
// needed to release the executor pool.
//
// Thread-safety: the returned Context is safe for concurrent use; this
// function itself can be called from any goroutine.
func NewContext(config *Config) (*Context, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	level, _ := parseLogLevel(config.LogLevel)
	instance := uuid.NewString()[:8]

	name := config.DebugName
	if name == "" {
		name = "prdd-" + instance
	}

	var exec executor.IExecutor
	switch config.ParallelPolicy {
	case PolicySequential:
		exec = executor.NewSequential()
	default:
		exec = executor.NewPool(config.ParallelTaskNum)
	}

	ctx := &Context{
		config:      *config,
		instance:    instance,
		log:         newLogger(name, level, config.Logger),
		metrics:     newContextMetrics(instance, name),
		exec:        exec,
		dependentBy: xsync.NewMapOf[PartitionID, *xsync.MapOf[PartitionID, struct{}]](),
		cache:       xsync.NewMapOf[PartitionID, *cacheEntry](),
	}

	ctx.log.Infof("created execution context (tasks=%d, policy=%s)",
		config.ParallelTaskNum, config.ParallelPolicy)

	return ctx, nil
}

// Close shuts down the executor pool. Datasets created from the context must
// not be used afterwards.
func (ctx *Context) Close() {
	ctx.exec.Close()
	ctx.log.Infof("closed execution context")
}

// Config returns the context's configuration.
func (ctx *Context) Config() Config {
	return ctx.config
}

// Logger returns the context's logger.
func (ctx *Context) Logger() *Logger {
	return ctx.log
}

// Executor returns the task executor selected by the parallel policy.
func (ctx *Context) Executor() executor.IExecutor {
	return ctx.exec
}

// --------------------------------------------------------------------------
// Id Allocation
// --------------------------------------------------------------------------

// NextDatasetID returns the next unique dataset id.
//
// Thread-safe: This method is safe for concurrent use
func (ctx *Context) NextDatasetID() DatasetID {
	id := ctx.nextDatasetID.Add(1) - 1
	if id == math.MaxUint32 {
		panic("dataset id space exhausted")
	}
	return DatasetID(id)
}

// NextPartitionID returns the next unique partition id.
//
// Thread-safe: This method is safe for concurrent use
func (ctx *Context) NextPartitionID() PartitionID {
	id := ctx.nextPartitionID.Add(1) - 1
	if id == math.MaxUint32 {
		panic("partition id space exhausted")
	}
	return PartitionID(id)
}

// --------------------------------------------------------------------------
// Dependency Reverse-Index
// --------------------------------------------------------------------------

// MarkDependency records that partition `child` consumes partition `parent`.
// Marking is monotone: children are only ever added. Once a partition has two
// distinct children it becomes eligible for caching.
//
// Thread-safe: This method is safe for concurrent use
func (ctx *Context) MarkDependency(child, parent PartitionID) {
	children, _ := ctx.dependentBy.LoadOrCompute(parent, func() *xsync.MapOf[PartitionID, struct{}] {
		return xsync.NewMapOf[PartitionID, struct{}]()
	})
	children.Store(child, struct{}{})
}

// ShouldCache reports whether the partition has at least two distinct children
// and is therefore worth memoizing.
//
// Thread-safe: This method is safe for concurrent use
func (ctx *Context) ShouldCache(id PartitionID) bool {
	children, ok := ctx.dependentBy.Load(id)
	return ok && children.Size() >= 2
}

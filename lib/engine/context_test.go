package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(DefaultConfig().SetParallelTaskNum(4))
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return ctx
}

func TestConfigValidation(t *testing.T) {
	if _, err := NewContext(&Config{ParallelTaskNum: 0}); err == nil {
		t.Error("Expected an error for parallel task num 0")
	}
	if _, err := NewContext(&Config{ParallelTaskNum: -3}); err == nil {
		t.Error("Expected an error for negative parallel task num")
	}
	if _, err := NewContext(&Config{ParallelTaskNum: 2, LogLevel: "loud"}); err == nil {
		t.Error("Expected an error for an unknown log level")
	}

	ctx, err := NewContext(nil)
	if err != nil {
		t.Fatalf("Expected nil config to select defaults, got %v", err)
	}
	defer ctx.Close()
	if ctx.Config().ParallelTaskNum <= 0 {
		t.Errorf("Expected a positive default task num, got %d", ctx.Config().ParallelTaskNum)
	}
}

func TestSetParallelTaskNumResetsToDefault(t *testing.T) {
	conf := DefaultConfig().SetParallelTaskNum(-1)
	if conf.ParallelTaskNum <= 0 {
		t.Errorf("Expected non-positive values to reset to the hardware default, got %d", conf.ParallelTaskNum)
	}
}

func TestConcurrentIdAllocation(t *testing.T) {
	ctx := newTestContext(t)
	defer ctx.Close()

	const workers = 64

	var (
		mu           sync.Mutex
		datasetIDs   = make(map[DatasetID]struct{})
		partitionIDs = make(map[PartitionID]struct{})
		wg           sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := ctx.NextDatasetID()
			p := ctx.NextPartitionID()
			mu.Lock()
			defer mu.Unlock()
			datasetIDs[d] = struct{}{}
			partitionIDs[p] = struct{}{}
		}()
	}
	wg.Wait()

	if len(datasetIDs) != workers {
		t.Errorf("Expected %d distinct dataset ids, got %d", workers, len(datasetIDs))
	}
	if len(partitionIDs) != workers {
		t.Errorf("Expected %d distinct partition ids, got %d", workers, len(partitionIDs))
	}
}

func TestShouldCacheThreshold(t *testing.T) {
	ctx := newTestContext(t)
	defer ctx.Close()

	parent := ctx.NextPartitionID()
	childA := ctx.NextPartitionID()
	childB := ctx.NextPartitionID()

	if ctx.ShouldCache(parent) {
		t.Error("Expected no caching without children")
	}

	ctx.MarkDependency(childA, parent)
	if ctx.ShouldCache(parent) {
		t.Error("Expected no caching with a single child")
	}

	// Marking the same child twice must not count double.
	ctx.MarkDependency(childA, parent)
	if ctx.ShouldCache(parent) {
		t.Error("Expected duplicate edges to count once")
	}

	ctx.MarkDependency(childB, parent)
	if !ctx.ShouldCache(parent) {
		t.Error("Expected caching with two distinct children")
	}
}

func TestMaterializeSingleProducer(t *testing.T) {
	ctx := newTestContext(t)
	defer ctx.Close()

	id := ctx.NextPartitionID()

	const workers = 16

	var (
		calls atomic.Int64
		wg    sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := ctx.MaterializeOrAwait(id, func() (interface{}, error) {
				calls.Add(1)
				return []int{1, 2, 3}, nil
			})
			if err != nil {
				t.Errorf("MaterializeOrAwait failed: %v", err)
				return
			}
			if v := data.([]int); len(v) != 3 {
				t.Errorf("Expected the shared vector, got %v", v)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected exactly one producer run, got %d", got)
	}
	if !ctx.IsDone(id) {
		t.Error("Expected the partition to be done after materialization")
	}
	if _, ok := ctx.CachedData(id); !ok {
		t.Error("Expected the cached vector to be retrievable")
	}
}

func TestMaterializeFailureNotRetried(t *testing.T) {
	ctx := newTestContext(t)
	defer ctx.Close()

	id := ctx.NextPartitionID()
	boom := errors.New("producer failed")

	var calls atomic.Int64
	produce := func() (interface{}, error) {
		calls.Add(1)
		return nil, boom
	}

	if _, err := ctx.MaterializeOrAwait(id, produce); !errors.Is(err, boom) {
		t.Errorf("Expected the producer error, got %v", err)
	}
	if _, err := ctx.MaterializeOrAwait(id, produce); !errors.Is(err, boom) {
		t.Errorf("Expected the memoized error, got %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected no retry after failure, got %d producer runs", got)
	}
	if !ctx.IsDone(id) {
		t.Error("Expected a failed materialization to count as done")
	}
	if _, ok := ctx.CachedData(id); ok {
		t.Error("Expected no cached vector for a failed materialization")
	}
}

func TestMaterializePanicRecovered(t *testing.T) {
	ctx := newTestContext(t)
	defer ctx.Close()

	id := ctx.NextPartitionID()

	_, err := ctx.MaterializeOrAwait(id, func() (interface{}, error) {
		panic("producer blew up")
	})
	var typed *ProducerError
	if !errors.As(err, &typed) {
		t.Fatalf("Expected a ProducerError, got %v", err)
	}
}

func TestParseParallelPolicy(t *testing.T) {
	if p, err := ParseParallelPolicy("sequential"); err != nil || p != PolicySequential {
		t.Errorf("Expected sequential, got %v (err %v)", p, err)
	}
	if p, err := ParseParallelPolicy("Threaded"); err != nil || p != PolicyThreaded {
		t.Errorf("Expected threaded, got %v (err %v)", p, err)
	}
	if _, err := ParseParallelPolicy("distributed"); err == nil {
		t.Error("Expected an error for an unknown policy")
	}
}

package testing

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ValentinKolb/pRDD/lib/dataset"
	"github.com/ValentinKolb/pRDD/lib/engine"
)

// ContextFactory is a function that creates a new execution context for one
// test case. The suite closes every context it receives.
type ContextFactory func() *engine.Context

// RunDatasetTests runs a comprehensive invariant suite against contexts
// produced by the factory.
func RunDatasetTests(t *testing.T, name string, factory ContextFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("IdentityUniqueness", func(t *testing.T) {
			testIdentityUniqueness(t, factory())
		})

		t.Run("PartitionCounts", func(t *testing.T) {
			testPartitionCounts(t, factory())
		})

		t.Run("MapCoverage", func(t *testing.T) {
			testMapCoverage(t, factory())
		})

		t.Run("ReduceMatchesSequentialFold", func(t *testing.T) {
			testReduce(t, factory())
		})

		t.Run("CountMatchesLength", func(t *testing.T) {
			testCount(t, factory())
		})

		t.Run("CacheSingleProducer", func(t *testing.T) {
			testCacheSingleProducer(t, factory())
		})

		t.Run("PartitionByKeyPlacement", func(t *testing.T) {
			testPartitionByKeyPlacement(t, factory())
		})

		t.Run("GroupByKeyPermutation", func(t *testing.T) {
			testGroupByKeyPermutation(t, factory())
		})

		t.Run("ZipShape", func(t *testing.T) {
			testZipShape(t, factory())
		})

		t.Run("SampleBoundaries", func(t *testing.T) {
			testSampleBoundaries(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testIdentityUniqueness(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const workers = 32

	var (
		mu           sync.Mutex
		datasetIDs   = make(map[engine.DatasetID]struct{})
		partitionIDs = make(map[engine.PartitionID]struct{})
		wg           sync.WaitGroup
	)

	expectedParts := 0
	for i := 0; i < workers; i++ {
		expectedParts += ctx.Config().ParallelTaskNum
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := dataset.Range(ctx, 0, 10, func(i int64) int64 { return i })
			mu.Lock()
			defer mu.Unlock()
			datasetIDs[d.ID()] = struct{}{}
			for _, p := range d.Partitions() {
				partitionIDs[p.ID()] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(datasetIDs) != workers {
		t.Errorf("Expected %d distinct dataset ids, got %d", workers, len(datasetIDs))
	}
	if len(partitionIDs) != expectedParts {
		t.Errorf("Expected %d distinct partition ids, got %d", expectedParts, len(partitionIDs))
	}
}

func testPartitionCounts(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	n := ctx.Config().ParallelTaskNum
	source := dataset.Range(ctx, 0, 1000, func(i int64) int64 { return i })

	if got := source.NumPartitions(); got != n {
		t.Errorf("Expected source to have %d partitions, got %d", n, got)
	}

	if got := dataset.Map(source, func(x int64) int64 { return x }).NumPartitions(); got != n {
		t.Errorf("Expected map to preserve %d partitions, got %d", n, got)
	}
	if got := source.Filter(func(x int64) bool { return true }).NumPartitions(); got != n {
		t.Errorf("Expected filter to preserve %d partitions, got %d", n, got)
	}
	if got := dataset.FlatMap(source, func(x int64) []int64 { return []int64{x} }).NumPartitions(); got != n {
		t.Errorf("Expected flatmap to preserve %d partitions, got %d", n, got)
	}
	sampled, err := source.Sample(0.5)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if got := sampled.NumPartitions(); got != n {
		t.Errorf("Expected sample to preserve %d partitions, got %d", n, got)
	}

	if got := source.Union(source).NumPartitions(); got != 2*n {
		t.Errorf("Expected union to have %d partitions, got %d", 2*n, got)
	}
	if got := source.Merge().NumPartitions(); got != 1 {
		t.Errorf("Expected merge to have 1 partition, got %d", got)
	}

	pairs := dataset.Map(source, func(i int64) dataset.Pair[int64, int64] {
		return dataset.Pair[int64, int64]{Key: i, Value: i}
	})
	if got := dataset.PartitionByKey(pairs).NumPartitions(); got != n {
		t.Errorf("Expected partition-by-key to have %d partitions, got %d", n, got)
	}
}

func testMapCoverage(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const size = 997 // deliberately not a multiple of the task number

	f := func(x int64) int64 { return 3*x + 1 }

	got, err := dataset.Collect(dataset.Map(
		dataset.Range(ctx, 0, size, func(i int64) int64 { return i }), f))
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(got) != size {
		t.Fatalf("Expected %d elements, got %d", size, len(got))
	}
	for i, v := range got {
		if want := f(int64(i)); v != want {
			t.Fatalf("Element %d: expected %d, got %d", i, want, v)
		}
	}
}

func testReduce(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const size = 2048

	f := func(x int64) int64 { return x*x - x }

	var want int64
	for i := int64(0); i < size; i++ {
		want += f(i)
	}

	got, err := dataset.Reduce(
		dataset.Map(dataset.Range(ctx, 0, size, func(i int64) int64 { return i }), f),
		func(a, b int64) int64 { return a + b },
	)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %d, got %d", want, got)
	}
}

func testCount(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const size = 1234

	source := dataset.Range(ctx, 0, size, func(i int64) int64 { return i })

	// Random-access path.
	if got, err := dataset.Count(source); err != nil || got != size {
		t.Errorf("Expected count %d, got %d (err %v)", size, got, err)
	}

	// Forward-only path.
	filtered := source.Filter(func(x int64) bool { return true })
	if got, err := dataset.Count(filtered); err != nil || got != size {
		t.Errorf("Expected filtered count %d, got %d (err %v)", size, got, err)
	}
}

func testCacheSingleProducer(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const size = 512

	var calls atomic.Int64
	heavy := func(x int64) int64 {
		calls.Add(1)
		return x * 2
	}

	shared := dataset.Map(
		dataset.Range(ctx, 0, size, func(i int64) int64 { return i }), heavy)

	// Two derived datasets give every shared partition two children, which
	// makes the shared partitions cache-eligible before any action runs.
	left := shared.Filter(func(int64) bool { return true })
	right := dataset.Map(shared, func(x int64) int64 { return x })

	sum, err := dataset.Reduce(left, func(a, b int64) int64 { return a + b })
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	elements, err := dataset.Collect(right)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if want := int64(size * (size - 1)); sum != want {
		t.Errorf("Expected sum %d, got %d", want, sum)
	}
	if len(elements) != size {
		t.Errorf("Expected %d elements, got %d", size, len(elements))
	}
	if got := calls.Load(); got != size {
		t.Errorf("Expected the shared map function to run exactly %d times, got %d", size, got)
	}
}

func testPartitionByKeyPlacement(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const size = 1000

	pairs := dataset.Range(ctx, 0, size, func(i int64) dataset.Pair[string, int64] {
		return dataset.Pair[string, int64]{Key: fmt.Sprint(i), Value: i}
	})
	keyed := dataset.PartitionByKey(pairs)

	hash := dataset.DefaultHasher[string]()
	n := uint64(keyed.NumPartitions())

	seen := 0
	for index, part := range keyed.Partitions() {
		it := part.Iter()
		for kv, ok := it.Next(); ok; kv, ok = it.Next() {
			if hash(kv.Key)%n != uint64(index) {
				t.Fatalf("Pair with key %q landed in partition %d, expected %d",
					kv.Key, index, hash(kv.Key)%n)
			}
			seen++
		}
	}
	if seen != size {
		t.Errorf("Expected %d pairs across all partitions, got %d", size, seen)
	}
}

func testGroupByKeyPermutation(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const (
		size = 900
		keys = 7
	)

	pairs := dataset.Range(ctx, 0, size, func(i int64) dataset.Pair[int64, int64] {
		return dataset.Pair[int64, int64]{Key: i % keys, Value: i}
	})
	grouped, err := dataset.Collect(
		dataset.GroupByKey(dataset.PartitionByKey(pairs)).Merge())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(grouped) != keys {
		t.Fatalf("Expected %d groups, got %d", keys, len(grouped))
	}
	for _, g := range grouped {
		values := make(map[int64]bool, len(g.Value))
		for _, v := range g.Value {
			values[v] = true
		}
		want := 0
		for i := g.Key; i < size; i += keys {
			want++
			if !values[i] {
				t.Errorf("Group %d is missing value %d", g.Key, i)
			}
		}
		if len(g.Value) != want {
			t.Errorf("Group %d has %d values, expected %d", g.Key, len(g.Value), want)
		}
	}
}

func testZipShape(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	left := dataset.Range(ctx, 0, 1001, func(i int64) int64 { return i })
	right := dataset.Range(ctx, 0, 1001, func(i int64) int64 { return i })

	zipped, err := dataset.Zip(left, right)
	if err != nil {
		t.Fatalf("Zip failed: %v", err)
	}

	elements, err := dataset.Collect(zipped)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(elements) != 1001 {
		t.Errorf("Expected 1001 pairs, got %d", len(elements))
	}
	for _, z := range elements {
		if z.First != z.Second {
			t.Fatalf("Expected identical pair members, got (%d, %d)", z.First, z.Second)
		}
	}

	// Partition-local truncation: each zip partition is as long as the
	// shorter of its two parents.
	short := dataset.FromSlice(ctx, make([]struct{}, 700))
	long := dataset.FromSlice(ctx, make([]struct{}, 1000))
	truncated, err := dataset.Zip(long, short)
	if err != nil {
		t.Fatalf("Zip failed: %v", err)
	}
	for i, part := range truncated.Partitions() {
		want := partLen(700, i, short.NumPartitions())
		if got := partLen(1000, i, long.NumPartitions()); got < want {
			want = got
		}
		count := 0
		it := part.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			count++
		}
		if count != want {
			t.Errorf("Zip partition %d: expected %d pairs, got %d", i, want, count)
		}
	}
}

func testSampleBoundaries(t *testing.T, ctx *engine.Context) {
	defer ctx.Close()

	const size = 500

	source := dataset.Range(ctx, 0, size, func(i int64) int64 { return i })

	nothing, err := source.Sample(0)
	if err != nil {
		t.Fatalf("Sample(0) failed: %v", err)
	}
	if got, err := dataset.Count(nothing); err != nil || got != 0 {
		t.Errorf("Expected rate 0 to drop everything, got %d (err %v)", got, err)
	}

	everything, err := source.Sample(1)
	if err != nil {
		t.Fatalf("Sample(1) failed: %v", err)
	}
	elements, err := dataset.Collect(everything)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(elements) != size {
		t.Fatalf("Expected rate 1 to pass everything, got %d elements", len(elements))
	}
	for i, v := range elements {
		if v != int64(i) {
			t.Fatalf("Element %d: expected %d, got %d", i, i, v)
		}
	}
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// partLen mirrors the source splitting arithmetic: the length of split i of n
// over a sequence of the given size.
func partLen(size, i, n int) int {
	lo := int64(i) * int64(size) / int64(n)
	hi := int64(i+1) * int64(size) / int64(n)
	return int(hi - lo)
}


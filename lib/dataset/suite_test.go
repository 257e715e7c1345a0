package dataset_test

import (
	"testing"

	dstesting "github.com/ValentinKolb/pRDD/lib/dataset/testing"
	"github.com/ValentinKolb/pRDD/lib/engine"
)

func newContext(t *testing.T, policy engine.ParallelPolicy, tasks int) *engine.Context {
	t.Helper()
	conf := engine.DefaultConfig().
		SetParallelTaskNum(tasks).
		SetParallelPolicy(policy)
	ctx, err := engine.NewContext(conf)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return ctx
}

func TestThreaded(t *testing.T) {
	dstesting.RunDatasetTests(t, "Threaded", func() *engine.Context {
		conf := engine.DefaultConfig().SetParallelTaskNum(8)
		ctx, err := engine.NewContext(conf)
		if err != nil {
			t.Fatalf("NewContext failed: %v", err)
		}
		return ctx
	})
}

func TestSequential(t *testing.T) {
	dstesting.RunDatasetTests(t, "Sequential", func() *engine.Context {
		conf := engine.DefaultConfig().
			SetParallelTaskNum(8).
			SetParallelPolicy(engine.PolicySequential)
		ctx, err := engine.NewContext(conf)
		if err != nil {
			t.Fatalf("NewContext failed: %v", err)
		}
		return ctx
	})
}

func TestSinglePartition(t *testing.T) {
	dstesting.RunDatasetTests(t, "SinglePartition", func() *engine.Context {
		conf := engine.DefaultConfig().SetParallelTaskNum(1)
		ctx, err := engine.NewContext(conf)
		if err != nil {
			t.Fatalf("NewContext failed: %v", err)
		}
		return ctx
	})
}

package executor

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryTask(t *testing.T) {
	pool := NewPool(4)

	const tasks = 100

	var done atomic.Int64
	futures := make([]*Future[int], tasks)
	for i := 0; i < tasks; i++ {
		i := i
		futures[i] = Run(pool, func() (int, error) {
			done.Add(1)
			return i * 2, nil
		})
	}

	for i, f := range futures {
		v, err := f.Await()
		if err != nil {
			t.Fatalf("Task %d failed: %v", i, err)
		}
		if v != i*2 {
			t.Errorf("Task %d: expected %d, got %d", i, i*2, v)
		}
	}
	if done.Load() != tasks {
		t.Errorf("Expected %d tasks to run, got %d", tasks, done.Load())
	}

	pool.Close()
}

func TestSequentialRunsInline(t *testing.T) {
	seq := NewSequential()
	defer seq.Close()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		f := Run(seq, func() (struct{}, error) {
			order = append(order, i)
			return struct{}{}, nil
		})
		// The task already ran on this goroutine; Await must not block.
		if _, err := f.Await(); err != nil {
			t.Fatalf("Task %d failed: %v", i, err)
		}
	}

	for i, v := range order {
		if v != i {
			t.Errorf("Expected submission order, got %v", order)
		}
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	seq := NewSequential()
	defer seq.Close()

	boom := errors.New("task failed")
	_, err := Run(seq, func() (int, error) { return 0, boom }).Await()
	if !errors.Is(err, boom) {
		t.Errorf("Expected the task error, got %v", err)
	}
}

func TestRunRecoversPanics(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	_, err := Run(pool, func() (int, error) { panic("task blew up") }).Await()

	var panicked *PanicError
	if !errors.As(err, &panicked) {
		t.Fatalf("Expected a PanicError, got %v", err)
	}

	// The worker must survive the panic.
	v, err := Run(pool, func() (int, error) { return 7, nil }).Await()
	if err != nil || v != 7 {
		t.Errorf("Expected the pool to keep working after a panic, got %d (err %v)", v, err)
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	inner := errors.New("inner cause")
	err := &PanicError{Value: inner}
	if !errors.Is(err, inner) {
		t.Error("Expected Unwrap to expose a wrapped error value")
	}

	plain := &PanicError{Value: "just a string"}
	if plain.Unwrap() != nil {
		t.Error("Expected no unwrap target for non-error panic values")
	}
}

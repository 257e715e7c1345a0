package engine

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Context Metrics
// --------------------------------------------------------------------------

// contextMetrics bundles the counters of one execution context. Counters are
// registered in the global VictoriaMetrics set, labeled with the context's
// instance id and debug name so multiple contexts in one process stay apart.
type contextMetrics struct {
	tasksSubmitted   *metrics.Counter
	tasksCompleted   *metrics.Counter
	cacheHits        *metrics.Counter
	cacheMisses      *metrics.Counter
	materializations *metrics.Counter
}

func newContextMetrics(instance, debugName string) *contextMetrics {
	labels := fmt.Sprintf(`context=%q,name=%q`, instance, debugName)
	counter := func(metric string) *metrics.Counter {
		return metrics.GetOrCreateCounter(fmt.Sprintf(`prdd_%s_total{%s}`, metric, labels))
	}
	return &contextMetrics{
		tasksSubmitted:   counter("tasks_submitted"),
		tasksCompleted:   counter("tasks_completed"),
		cacheHits:        counter("cache_hits"),
		cacheMisses:      counter("cache_misses"),
		materializations: counter("materializations"),
	}
}

// ObserveTaskSubmitted counts an action task handed to the executor.
//
// Thread-safe: This method is safe for concurrent use
func (ctx *Context) ObserveTaskSubmitted() {
	ctx.metrics.tasksSubmitted.Inc()
}

// ObserveTaskCompleted counts a finished action task.
//
// Thread-safe: This method is safe for concurrent use
func (ctx *Context) ObserveTaskCompleted() {
	ctx.metrics.tasksCompleted.Inc()
}

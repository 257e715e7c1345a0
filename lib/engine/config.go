package engine

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Parallel Policy
// --------------------------------------------------------------------------

// ParallelPolicy selects how action tasks are scheduled.
type ParallelPolicy int

const (
	// PolicyThreaded submits one task per partition to the executor pool.
	PolicyThreaded ParallelPolicy = iota
	// PolicySequential runs tasks on the calling goroutine in partition order.
	PolicySequential
)

func (p ParallelPolicy) String() string {
	switch p {
	case PolicyThreaded:
		return "threaded"
	case PolicySequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// ParseParallelPolicy converts a string to a ParallelPolicy.
func ParseParallelPolicy(s string) (ParallelPolicy, error) {
	switch strings.ToLower(s) {
	case "threaded":
		return PolicyThreaded, nil
	case "sequential":
		return PolicySequential, nil
	default:
		return PolicyThreaded, fmt.Errorf("invalid parallel policy: %s. must be one of threaded, sequential", s)
	}
}

// --------------------------------------------------------------------------
// Config
// --------------------------------------------------------------------------

// fallbackTaskNum is used when the hardware thread count cannot be determined.
const fallbackTaskNum = 8

// Config holds the recognized options of an execution context.
//
//   - ParallelTaskNum: degree of parallelism. Sources are split into this many
//     partitions and the threaded executor pool has this many workers.
//   - ParallelPolicy: threaded or sequential task scheduling.
//   - Logger: sink for informational messages. A nil sink suppresses logging.
//   - LogLevel: minimum level written to the sink ("debug", "info", "warn", "error").
//   - DebugName: tag included in log records and metric labels.
//   - SampleSeed/SampleSeeded: when set, Sample transformations are reproducible.
type Config struct {
	ParallelTaskNum int
	ParallelPolicy  ParallelPolicy
	Logger          io.Writer
	LogLevel        string
	DebugName       string
	SampleSeed      uint64
	SampleSeeded    bool
}

// DefaultConfig returns the default configuration: one task per hardware
// thread (8 if that cannot be determined), threaded policy, suppressed logging.
func DefaultConfig() *Config {
	n := runtime.NumCPU()
	if n <= 0 {
		n = fallbackTaskNum
	}
	return &Config{
		ParallelTaskNum: n,
		ParallelPolicy:  PolicyThreaded,
		LogLevel:        "info",
	}
}

// SetParallelTaskNum sets the degree of parallelism. A value <= 0 resets to the
// hardware thread count.
func (c *Config) SetParallelTaskNum(num int) *Config {
	if num <= 0 {
		num = DefaultConfig().ParallelTaskNum
	}
	c.ParallelTaskNum = num
	return c
}

// SetParallelPolicy sets the scheduling policy.
func (c *Config) SetParallelPolicy(policy ParallelPolicy) *Config {
	c.ParallelPolicy = policy
	return c
}

// SetLogger sets the logging sink. Pass nil to suppress logging.
func (c *Config) SetLogger(w io.Writer) *Config {
	c.Logger = w
	return c
}

// SetDebugName sets the tag included in log records.
func (c *Config) SetDebugName(name string) *Config {
	c.DebugName = name
	return c
}

// SetSampleSeed makes Sample transformations reproducible: each partition
// derives its own generator from the given seed and its partition id.
func (c *Config) SetSampleSeed(seed uint64) *Config {
	c.SampleSeed = seed
	c.SampleSeeded = true
	return c
}

// validate reports configuration errors. Called by NewContext.
func (c *Config) validate() error {
	if c.ParallelTaskNum <= 0 {
		return fmt.Errorf("invalid parallel task num %d: must be positive", c.ParallelTaskNum)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Execution")
	addField("Parallel Task Num", strconv.Itoa(c.ParallelTaskNum))
	addField("Parallel Policy", c.ParallelPolicy.String())

	addSection("Logging")
	addField("Debug Name", c.DebugName)
	addField("Log Level", c.LogLevel)
	addField("Sink", fmt.Sprintf("%t", c.Logger != nil))

	addSection("Sampling")
	if c.SampleSeeded {
		addField("Seed", strconv.FormatUint(c.SampleSeed, 10))
	} else {
		addField("Seed", "none (non-reproducible)")
	}

	return sb.String()
}

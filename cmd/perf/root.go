package perf

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/pRDD/cmd/util"
	"github.com/ValentinKolb/pRDD/lib/dataset"
	dsutil "github.com/ValentinKolb/pRDD/lib/dataset/util"
	"github.com/ValentinKolb/pRDD/lib/engine"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// PerfCmd compares parallel evaluation against a sequential baseline
	PerfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Speed check: parallel pipeline vs sequential baseline",
		RunE:    run,
		PreRunE: processConfig,
	}

	perfN      = int64(1_000_000)
	perfRounds = 5
)

func init() {
	util.SetupEngineFlags(PerfCmd)

	key := "n"
	PerfCmd.PersistentFlags().Int64(key, perfN, util.WrapString("Problem size"))
	key = "rounds"
	PerfCmd.PersistentFlags().Int(key, perfRounds, util.WrapString("How many times to repeat each measurement"))
}

func processConfig(cmd *cobra.Command, _ []string) error {
	util.InitConfig()
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	perfN = viper.GetInt64("n")
	perfRounds = viper.GetInt("rounds")
	return nil
}

// sequentialBaseline computes the benchmark expression with a plain loop.
func sequentialBaseline(n int64) int64 {
	var sum int64
	for i := int64(1); i <= n; i++ {
		x := i * i
		if x%5 != 0 {
			continue
		}
		x += 2
		if x%3 != 0 {
			continue
		}
		sum += x
	}
	return sum
}

// pipeline computes the same expression through the library.
func pipeline(ctx *engine.Context, n int64) (int64, error) {
	squares := dataset.Map(
		dataset.Range(ctx, 1, n+1, func(i int64) int64 { return i }),
		func(x int64) int64 { return x * x },
	)
	return dataset.Reduce(
		dataset.Map(
			squares.Filter(func(x int64) bool { return x%5 == 0 }),
			func(x int64) int64 { return x + 2 },
		).Filter(func(x int64) bool { return x%3 == 0 }),
		func(a, b int64) int64 { return a + b },
	)
}

func run(_ *cobra.Command, _ []string) error {
	conf, err := util.GetEngineConfig()
	if err != nil {
		return err
	}

	fmt.Println("pRDD speed check")
	fmt.Println(conf.String())
	fmt.Printf("N: %d, rounds: %d\n\n", perfN, perfRounds)

	registry := gometrics.NewRegistry()
	seqTimer := gometrics.GetOrRegisterTimer("sequential", registry)
	parTimer := gometrics.GetOrRegisterTimer("parallel", registry)

	// Sequential baseline
	var want int64
	for i := 0; i < perfRounds; i++ {
		seqTimer.Time(func() {
			want = sequentialBaseline(perfN)
		})
	}
	printTimer("baseline", seqTimer)

	// Parallel pipeline
	ctx, err := engine.NewContext(conf)
	if err != nil {
		return err
	}
	defer ctx.Close()

	var got int64
	for i := 0; i < perfRounds; i++ {
		var runErr error
		parTimer.Time(func() {
			got, runErr = pipeline(ctx, perfN)
		})
		if runErr != nil {
			return runErr
		}
	}
	printTimer("pipeline", parTimer)

	if got != want {
		return fmt.Errorf("result mismatch: pipeline %d, baseline %d", got, want)
	}
	fmt.Printf("\nresult %d verified, speedup %.2fx\n",
		got, seqTimer.Mean()/parTimer.Mean())

	return reportBalance(ctx)
}

// reportBalance re-buckets N key-value pairs and reports how evenly the
// default hasher spreads them over the partitions.
func reportBalance(ctx *engine.Context) error {
	pairs := dataset.Range(ctx, 0, perfN, func(i int64) dataset.Pair[int64, int64] {
		return dataset.Pair[int64, int64]{Key: i, Value: i}
	})
	keyed := dataset.PartitionByKey(pairs)

	sizes := make([]float64, 0, keyed.NumPartitions())
	histogram := gometrics.GetOrRegisterHistogram(
		"partition-sizes", gometrics.NewRegistry(), gometrics.NewUniformSample(1024))

	for _, part := range keyed.Partitions() {
		count := 0
		it := part.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			count++
		}
		sizes = append(sizes, float64(count))
		histogram.Update(int64(count))
	}

	stats := dsutil.NewDistributionStats(sizes)
	fmt.Printf("\npartition balance over %d partitions\n", len(sizes))
	fmt.Printf("  %-22s: %.0f / %.0f / %.0f\n", "min / mean / max", stats.Min, stats.Mean, stats.Max)
	fmt.Printf("  %-22s: %.1f\n", "std deviation", stats.StdDeviation)
	fmt.Printf("  %-22s: %.3f\n", "distribution quality", stats.DistributionQuality)
	return nil
}

func printTimer(name string, t gometrics.Timer) {
	fmt.Printf("%-12s%v/op (min %v, max %v, %d ops)\n",
		name,
		time.Duration(int64(t.Mean())),
		time.Duration(t.Min()),
		time.Duration(t.Max()),
		t.Count())
}

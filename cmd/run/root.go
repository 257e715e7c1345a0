package run

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ValentinKolb/pRDD/cmd/util"
	"github.com/ValentinKolb/pRDD/lib/dataset"
	"github.com/ValentinKolb/pRDD/lib/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// RunCmd groups the example pipelines
	RunCmd = &cobra.Command{
		Use:   "run",
		Short: "Run example pipelines",
		Long:  "Small example pipelines demonstrating the dataset API.",
	}

	simpleCmd = &cobra.Command{
		Use:     "simple",
		Short:   "Square, filter and sum a number range",
		RunE:    runSimple,
		PreRunE: processConfig,
	}

	piCmd = &cobra.Command{
		Use:     "pi",
		Short:   "Estimate pi by counting points inside the unit circle",
		RunE:    runPi,
		PreRunE: processConfig,
	}

	filterEvenCmd = &cobra.Command{
		Use:     "filter-even",
		Short:   "Union two slices, keep the even numbers, merge and collect",
		RunE:    runFilterEven,
		PreRunE: processConfig,
	}

	mergeSplitsCmd = &cobra.Command{
		Use:     "merge-splits",
		Short:   "Merge all partitions of a range into one and collect it",
		RunE:    runMergeSplits,
		PreRunE: processConfig,
	}

	collectPartitionsCmd = &cobra.Command{
		Use:     "collect-partitions",
		Short:   "Show how a source is split into partitions",
		RunE:    runCollectPartitions,
		PreRunE: processConfig,
	}

	flatmapCmd = &cobra.Command{
		Use:     "flatmap",
		Short:   "Split sentences into words and count them",
		RunE:    runFlatmap,
		PreRunE: processConfig,
	}

	groupCmd = &cobra.Command{
		Use:     "group",
		Short:   "Re-bucket key-value pairs and group them by key",
		RunE:    runGroup,
		PreRunE: processConfig,
	}
)

func init() {
	util.SetupEngineFlags(RunCmd)

	key := "n"
	RunCmd.PersistentFlags().Int64(key, 10000, util.WrapString("Problem size of the example"))

	RunCmd.AddCommand(simpleCmd)
	RunCmd.AddCommand(piCmd)
	RunCmd.AddCommand(filterEvenCmd)
	RunCmd.AddCommand(mergeSplitsCmd)
	RunCmd.AddCommand(collectPartitionsCmd)
	RunCmd.AddCommand(flatmapCmd)
	RunCmd.AddCommand(groupCmd)
}

func processConfig(cmd *cobra.Command, _ []string) error {
	util.InitConfig()
	return util.BindCommandFlags(cmd)
}

// newContext builds the execution context from flags and environment
func newContext() (*engine.Context, error) {
	conf, err := util.GetEngineConfig()
	if err != nil {
		return nil, err
	}
	return engine.NewContext(conf)
}

func runSimple(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	n := viper.GetInt64("n")

	squares := dataset.Map(
		dataset.Range(ctx, 1, n+1, func(i int64) int64 { return i }),
		func(x int64) int64 { return x * x },
	)
	result, err := dataset.Reduce(
		dataset.Map(
			squares.Filter(func(x int64) bool { return x%5 == 0 }),
			func(x int64) int64 { return x + 2 },
		).Filter(func(x int64) bool { return x%3 == 0 }),
		func(a, b int64) int64 { return a + b },
	)
	if err != nil {
		return err
	}

	fmt.Printf("sum = %d\n", result)
	return nil
}

func runPi(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	n := viper.GetInt64("n")

	// Deterministic pseudo-random points via hashing the index.
	points := dataset.Range(ctx, 0, n, func(i int64) [2]float64 {
		x := float64(uint32(i*2654435761)) / float64(1<<32)
		y := float64(uint32((i+1)*2246822519)) / float64(1<<32)
		return [2]float64{x, y}
	})
	inside, err := dataset.Count(points.Filter(func(p [2]float64) bool {
		return p[0]*p[0]+p[1]*p[1] <= 1
	}))
	if err != nil {
		return err
	}

	fmt.Printf("pi ~ %f (%d of %d points inside)\n",
		4*float64(inside)/float64(n), inside, n)
	return nil
}

func runFilterEven(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	n := viper.GetInt64("n")

	lower := make([]int64, 0, n/2)
	upper := make([]int64, 0, n/2)
	for i := int64(1); i < n/2; i++ {
		lower = append(lower, i)
	}
	for i := n / 2; i < n; i++ {
		upper = append(upper, i)
	}

	evens, err := dataset.Collect(
		dataset.FromSlice(ctx, lower).
			Union(dataset.FromSlice(ctx, upper)).
			Filter(func(x int64) bool { return x%2 == 0 }).
			Merge(),
	)
	if err != nil {
		return err
	}

	fmt.Printf("%d even numbers below %d, first=%v last=%v\n",
		len(evens), n, evens[0], evens[len(evens)-1])
	return nil
}

func runMergeSplits(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	n := viper.GetInt64("n")

	merged := dataset.Range(ctx, 0, n, func(i int64) int64 { return i }).Merge()
	fmt.Printf("merged %d partitions into %d\n",
		ctx.Config().ParallelTaskNum, merged.NumPartitions())

	elements, err := dataset.Collect(merged)
	if err != nil {
		return err
	}
	fmt.Printf("collected %d elements\n", len(elements))
	return nil
}

func runCollectPartitions(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	n := viper.GetInt64("n")

	d := dataset.Range(ctx, 0, n, func(i int64) int64 { return i })
	for i, part := range d.Partitions() {
		var sb strings.Builder
		count := 0
		it := part.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if count < 3 {
				if count > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(strconv.FormatInt(v, 10))
			}
			count++
		}
		fmt.Printf("partition %d (id %d): %d elements [%s, ...]\n",
			i, part.ID(), count, sb.String())
	}
	return nil
}

func runFlatmap(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	sentences := []string{
		"the quick brown fox",
		"jumps over",
		"the lazy dog",
		"",
		"and runs away",
	}

	words, err := dataset.Collect(
		dataset.FlatMap(
			dataset.FromSlice(ctx, sentences),
			func(s string) []string { return strings.Fields(s) },
		).Merge(),
	)
	if err != nil {
		return err
	}

	fmt.Printf("%d words: %v\n", len(words), words)
	return nil
}

func runGroup(_ *cobra.Command, _ []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	n := viper.GetInt64("n")

	pairs := dataset.Range(ctx, 0, n, func(i int64) dataset.Pair[int64, int64] {
		return dataset.Pair[int64, int64]{Key: i % 10, Value: i}
	})
	grouped, err := dataset.Collect(
		dataset.GroupByKey(dataset.PartitionByKey(pairs)).Merge(),
	)
	if err != nil {
		return err
	}

	for _, g := range grouped {
		fmt.Printf("key %d: %d values\n", g.Key, len(g.Value))
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/pRDD/cmd/perf"
	"github.com/ValentinKolb/pRDD/cmd/run"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "prdd",
		Short: "parallel in-process dataset library",
		Long: fmt.Sprintf(`pRDD (v%s)

A parallel, in-process dataset library for Go. Datasets are lazy,
partitioned collections; transformations build a lineage graph and
actions evaluate it across a thread pool.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pRDD",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pRDD v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

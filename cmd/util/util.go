package util

import (
	"os"
	"strings"

	"github.com/ValentinKolb/pRDD/lib/engine"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupEngineFlags adds the common execution context flags to a command
func SetupEngineFlags(cmd *cobra.Command) {
	key := "tasks"
	cmd.PersistentFlags().Int(key, 0, WrapString("Degree of parallelism. 0 selects the hardware thread count"))

	key = "policy"
	cmd.PersistentFlags().String(key, "threaded", WrapString("Parallel policy (threaded, sequential)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))

	key = "debug-name"
	cmd.PersistentFlags().String(key, "", WrapString("Tag included in log records"))

	key = "verbose"
	cmd.PersistentFlags().Bool(key, false, WrapString("Write log records to stderr"))

	key = "sample-seed"
	cmd.PersistentFlags().Int64(key, -1, WrapString("Seed for reproducible sampling (negative = unseeded)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("prdd")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetEngineConfig reads the execution context configuration from viper
func GetEngineConfig() (*engine.Config, error) {
	policy, err := engine.ParseParallelPolicy(viper.GetString("policy"))
	if err != nil {
		return nil, err
	}

	conf := engine.DefaultConfig().
		SetParallelTaskNum(viper.GetInt("tasks")).
		SetParallelPolicy(policy).
		SetDebugName(viper.GetString("debug-name"))
	conf.LogLevel = viper.GetString("log-level")

	if viper.GetBool("verbose") {
		conf.SetLogger(os.Stderr)
	}

	if seed := viper.GetInt64("sample-seed"); seed >= 0 {
		conf.SetSampleSeed(uint64(seed))
	}

	return conf, nil
}

// BindCommandFlags binds a command's flags to viper, including persistent
// flags inherited from parent commands.
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}

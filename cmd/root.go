// Package cmd is for command line interactions with the knotfold application
package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/knotfold/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "knotfold",
	Short: `Fold RNA sequences into their highest scoring secondary structure.
Structures are hairpins and pseudoknots laid out side by side`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		stderr.Fatalln(err)
	}
}

func init() {
	// settings is an optional YAML file that overrides the default settings
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log timings to stderr")
}

// flagKeys maps settings keys to the flags that override them
var flagKeys = map[string]string{
	"settings":                   "settings",
	"verbose":                    "verbose",
	"pairing.wobble":             "wobble",
	"pairing.watson-crick-score": "watson-crick-score",
	"pairing.wobble-score":       "wobble-score",
	"threads":                    "threads",
}

// loadConfig builds the Config of a single command run. Settings come from the
// defaults, then the settings file, then KNOTFOLD_* environment variables,
// then the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	return config.Load(v)
}

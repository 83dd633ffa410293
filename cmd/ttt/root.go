package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rfaulhaber/ttt"
	"github.com/rfaulhaber/ttt/internal/config"
	"github.com/rfaulhaber/ttt/internal/eval"
	"github.com/rfaulhaber/ttt/internal/render"
)

var (
	cfgFile      string
	outputFormat string

	logger *zap.Logger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:           "ttt",
	Short:         "ttt builds truth tables, checks equivalence and minimizes boolean expressions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
}

func Execute() error {
	logger, _ = zap.NewProduction()
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, csv or nuon")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default .ttt.yaml)")
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(eqCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// limits applies config overrides to the engine limits.
func limits() eval.Limits {
	return eval.Limits{
		MaxVariables:  cfg.MaxVariables,
		MaxNameLength: cfg.MaxNameLength,
	}
}

// formatter resolves the output format (flag wins over config) and builds
// the renderer.
func formatter() (render.Formatter, error) {
	name := outputFormat
	if name == "" {
		name = cfg.Output
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return render.New(f, render.Options{MaxDifferences: cfg.MaxDifferences}), nil
}

func fail(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ttt version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ttt.Version())
	},
}

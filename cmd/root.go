// Package cmd implements the search-demo CLI: a thin wrapper that runs the
// search package's Dijkstra and A* drivers over a maze2d grid and prints
// the result (one cobra.Command per concern, a shared *zap.Logger, flags
// bound in init).
package cmd

import (
	"go.uber.org/zap"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	gridFile string
	k        int
	budget   uint64
	noColor  bool
	quiet    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "search-demo",
	Short: "search-demo runs Dijkstra/A* over a text maze and prints the path",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		cfg := zap.NewDevelopmentConfig()
		if quiet {
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// Execute runs the CLI, returning any error cobra surfaces.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&gridFile, "grid", "g", "", "path to a text maze file ('.'/'#'/'S'/'G'); reads stdin if empty")
	rootCmd.PersistentFlags().IntVar(&k, "k", 4, "open-set heap branching factor (2, 4 or 8)")
	rootCmd.PersistentFlags().Uint64Var(&budget, "budget", 0, "expansion budget; 0 means unlimited")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored path rendering")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress info-level logging")

	rootCmd.AddCommand(dijkstraCmd)
	rootCmd.AddCommand(astarCmd)
}

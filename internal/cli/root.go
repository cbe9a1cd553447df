package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/adamreidsmith/nestbar/internal/config"
	"github.com/adamreidsmith/nestbar/internal/logging"
	"github.com/adamreidsmith/nestbar/pkg/nestbar"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nestbar-demo",
	Short: "Demo and benchmark for nested terminal progress bars",
	Long: `nestbar-demo exercises the nestbar library: nested loops each draw
their own progress bar, stacked outer to inner, redrawn in place as the
loops advance and removed as they finish.

Display defaults (fill glyph, colors, width, redraw interval) can be set
in a .nestbar.yaml file in the working directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("nestbar-demo version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// baseOptions translates the loaded display defaults into tracker options.
func baseOptions(d *config.Display) nestbar.Options {
	opts := nestbar.DefaultOptions()
	opts.Fill = d.Fill
	opts.UpdateInterval = time.Duration(d.IntervalSeconds * float64(time.Second))
	opts.NCols = d.NCols
	opts.TextColor = d.TextColor
	opts.BGColor = d.BGColor
	opts.Rainbow = d.Rainbow
	return opts
}

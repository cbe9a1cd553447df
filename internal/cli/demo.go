package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamreidsmith/nestbar/internal/config"
	"github.com/adamreidsmith/nestbar/pkg/nestbar"
)

var (
	demoRainbow bool
	demoSleep   time.Duration
	demoSkipMid bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run three nested tracked loops",
	Long: `Run three nested loops, each wrapped in a progress bar. The outer
bar stays on screen while the inner bars appear and disappear beneath it.

With --skip-middle the middle loop is wrapped with Disable set, so it runs
invisibly between the outer and innermost bars.

Example:
  nestbar-demo demo
  nestbar-demo demo --rainbow --sleep 1ms`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&demoRainbow, "rainbow", false, "Cycle a color per character")
	demoCmd.Flags().DurationVar(&demoSleep, "sleep", 500*time.Microsecond, "Simulated work per innermost item")
	demoCmd.Flags().BoolVar(&demoSkipMid, "skip-middle", false, "Disable tracking for the middle loop")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	display, err := config.Load(cwd)
	if err != nil {
		return err
	}

	base := baseOptions(display)
	if demoRainbow {
		base.Rainbow = true
	}

	outer := base
	outer.Desc = "Master"
	for i := range nestbar.EachN(30, outer) {
		mid := base
		mid.Desc = fmt.Sprintf("Sub %d", i)
		mid.Disable = demoSkipMid
		for j := range nestbar.EachN(15, mid) {
			inner := base
			inner.Desc = fmt.Sprintf("Sub Sub %d", j)
			for range nestbar.EachN(10, inner) {
				time.Sleep(demoSleep)
			}
			if err := nestbar.Default.Err(); err != nil {
				return err
			}
		}
	}
	if err := nestbar.Default.Err(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

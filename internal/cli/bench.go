package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamreidsmith/nestbar/internal/config"
	"github.com/adamreidsmith/nestbar/pkg/nestbar"
)

var benchSleep time.Duration

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure tracking overhead against a bare loop",
	Long: `Run the same nested loops twice, once wrapped in progress bars and
once bare, and report the wall-clock difference.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().DurationVar(&benchSleep, "sleep", 500*time.Microsecond, "Simulated work per innermost item")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	display, err := config.Load(cwd)
	if err != nil {
		return err
	}
	base := baseOptions(display)

	start := time.Now()
	outer := base
	outer.Desc = "Master"
	for i := range nestbar.EachN(30, outer) {
		mid := base
		mid.Desc = fmt.Sprintf("Sub %d", i)
		for j := range nestbar.EachN(15, mid) {
			inner := base
			inner.Desc = fmt.Sprintf("Sub Sub %d", j)
			for range nestbar.EachN(10, inner) {
				time.Sleep(benchSleep)
			}
		}
	}
	tracked := time.Since(start)
	if err := nestbar.Default.Err(); err != nil {
		return err
	}

	start = time.Now()
	for range 30 {
		for range 15 {
			for range 10 {
				time.Sleep(benchSleep)
			}
		}
	}
	bare := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "tracked: %v\n", tracked)
	fmt.Fprintf(out, "bare:    %v\n", bare)
	fmt.Fprintf(out, "overhead: %v (%.1f%%)\n", tracked-bare, 100*float64(tracked-bare)/float64(bare))
	return nil
}

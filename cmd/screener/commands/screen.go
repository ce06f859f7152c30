package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/quangtran88/vnscreener/internal/contracts"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a one-shot screening pass",
	Long: `Runs a full screening pass and prints the ranked results.

Example:
  go run ./cmd/screener screen
  go run ./cmd/screener screen --limit 50 --page 2`,
	RunE: runScreen,
}

var (
	screenLimit int
	screenPage  int
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().IntVar(&screenLimit, "limit", 0, "number of symbols per page (0 uses the configured default)")
	screenCmd.Flags().IntVar(&screenPage, "page", 1, "page of the universe to screen")
}

func runScreen(cmd *cobra.Command, args []string) error {
	deps, err := buildStack()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	start := time.Now()
	results, err := deps.orchestrator.Run(ctx, screenLimit, screenPage)
	if err != nil {
		return fmt.Errorf("screening run: %w", err)
	}

	printResults(results)
	fmt.Printf("\n%d symbols screened in %.1fs\n", len(results), time.Since(start).Seconds())
	return nil
}

func printResults(results []contracts.ScoreResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "#\tTICKER\tSECTOR\tFUND\tTECH\tTOTAL\tPATTERN\tRECOMMENDATION")

	for i, r := range results {
		if r.Status != contracts.StatusOK {
			fmt.Fprintf(w, "%d\t%s\t%s\t-\t-\t-\t-\t%s\n",
				i+1, r.Symbol, r.Sector, r.Recommendation)
			continue
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			i+1, r.Symbol, r.Sector,
			r.Fundamental, r.Technical, r.Total,
			r.Pattern, r.Recommendation)
	}
}

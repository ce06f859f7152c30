package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quangtran88/vnscreener/internal/scheduler"
	"github.com/quangtran88/vnscreener/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Start the job scheduler",
	Long: `Starts the background job scheduler.

Jobs:
  screening_warmup  - full screening pass after the HOSE close (18:30 MON-FRI)
  cache_sweep       - removes expired financials cache entries (hourly)

Example:
  go run ./cmd/screener scheduler`,
	RunE: runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== vnscreener Scheduler ===")

	deps, err := buildStack()
	if err != nil {
		return err
	}
	log := deps.log

	sched := scheduler.New(log)

	if err := sched.AddJob(jobs.NewWarmupJob(deps.orchestrator, log)); err != nil {
		return fmt.Errorf("register warmup job: %w", err)
	}
	if err := sched.AddJob(jobs.NewCacheSweepJob(deps.store, log)); err != nil {
		return fmt.Errorf("register cache sweep job: %w", err)
	}

	sched.Start()

	fmt.Println("Scheduler running. Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}

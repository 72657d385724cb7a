package commands

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/core/services"
	"github.com/phuture/fudashi/pkg/metrics"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Generate a schedule for the latest project",
		Long:  "Classify the roster, segment the operating grid into shifts, allocate agents and persist the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			if metricsAddr != "" {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
					app.Logger.Info("Metrics server listening", zap.String("addr", metricsAddr))
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						app.Logger.Error("Metrics server error", zap.Error(err))
					}
				}()
			}

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, dryRun)
			if err != nil {
				return fmt.Errorf("schedule generation failed: %w", err)
			}

			fmt.Printf("\n🎯 Schedule Generation Results\n\n")
			fmt.Printf("Project ID:  %s\n", result.Project.ID)
			fmt.Printf("Date Range:  %s to %s (%d days)\n", result.Project.StartDate, result.Project.EndDate, result.Days)
			fmt.Printf("Shifts:      %d (%d filled)\n", result.ShiftCount, result.FilledCount)
			fmt.Printf("Coverage:    %.1f/%.1fh", result.HoursCovered, result.HoursRequired)
			if result.HoursUnfilled > 0 {
				fmt.Printf(" (%.1fh unfilled)", result.HoursUnfilled)
			}
			fmt.Println()
			if dryRun {
				fmt.Printf("Mode:        🧪 DRY RUN (not saved)\n")
			} else {
				fmt.Printf("Status:      ✅ Saved to database\n")
			}
			fmt.Println()

			printRosterStats(result.Stats)
			renderSchedule(result.Project, result.Result)

			if dryRun {
				fmt.Println("💡 This was a dry run. Use without --dry-run to save the schedule.")
			}

			if metricsAddr != "" {
				fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
				c := make(chan os.Signal, 1)
				signal.Notify(c, os.Interrupt, syscall.SIGTERM)
				<-c
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")
	cmd.Flags().String("metrics-addr", "", "Address to expose Prometheus metrics (e.g. :9090)")

	return cmd
}

// printRosterStats summarizes the run's roster classification.
func printRosterStats(stats map[string]scheduler.AgentStats) {
	limited, flexible := 0, 0
	for _, s := range stats {
		if s.Classification == scheduler.ClassificationLimited {
			limited++
		} else {
			flexible++
		}
	}
	fmt.Printf("Roster: %d limited, %d flexible\n\n", limited, flexible)
}

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule",
		Short: "View the stored schedule for the latest project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n📅 Schedule for project %s (%s to %s)\n\n",
				result.Project.ID, result.Project.StartDate, result.Project.EndDate)

			renderSchedule(result.Project, result.Result)
			return nil
		},
	}
}

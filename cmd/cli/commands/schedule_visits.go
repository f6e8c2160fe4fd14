package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
	"github.com/caringcompass/carematch/pkg/domain"
)

// ScheduleVisitsCmd creates the scheduleVisits command
func ScheduleVisitsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduleVisits <client_id> <from> <until>",
		Short: "Expand the client's active plan into visits (dates as 2006-01-02)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("failed to parse from date: %w", err)
			}
			until, err := time.Parse("2006-01-02", args[2])
			if err != nil {
				return fmt.Errorf("failed to parse until date: %w", err)
			}

			startTimeStr, _ := cmd.Flags().GetString("start-time")
			startTime, err := domain.ParseClockTime(startTimeStr)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			result, err := services.ScheduleVisits(app.Ctx, app.Database, app.Cfg, app.Logger,
				services.ScheduleVisitsArgs{
					ClientID:  args[0],
					From:      from,
					Until:     until.AddDate(0, 0, 1),
					StartTime: startTime,
					DryRun:    dryRun,
				})
			if err != nil {
				return err
			}

			header := "✓ Visits scheduled!"
			if dryRun {
				header = "Dry run - nothing was saved."
			}
			fmt.Printf("\n%s\n\n", header)
			fmt.Printf("Plan:   %s\n", result.Plan.ID)
			fmt.Printf("Visits: %d\n\n", len(result.Visits))
			for i, v := range result.Visits {
				fmt.Printf("  %2d. %s - %s (%d tasks)\n", i+1,
					v.Window.Start.Format("2006-01-02 15:04"),
					v.Window.End.Format("15:04"),
					len(v.Tasks))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("start-time", "09:00", "Clock time each visit starts at (HH:MM)")
	cmd.Flags().Bool("dry-run", false, "Compute the expansion without saving it")

	return cmd
}

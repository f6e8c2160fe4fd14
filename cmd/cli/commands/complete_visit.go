package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
)

// CompleteVisitCmd creates the completeVisit command
func CompleteVisitCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completeVisit <visit_id> <actual_start> <actual_end>",
		Short: "Mark a visit completed with actual times (RFC 3339)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			actualStart, err := time.Parse(time.RFC3339, args[1])
			if err != nil {
				return fmt.Errorf("failed to parse actual start: %w", err)
			}
			actualEnd, err := time.Parse(time.RFC3339, args[2])
			if err != nil {
				return fmt.Errorf("failed to parse actual end: %w", err)
			}
			notes, _ := cmd.Flags().GetString("notes")

			visit, err := services.CompleteVisit(app.Ctx, app.Database, app.Logger,
				services.CompleteVisitArgs{
					VisitID:     args[0],
					ActualStart: actualStart,
					ActualEnd:   actualEnd,
					Notes:       notes,
				})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Visit completed!\n\n")
			fmt.Printf("Visit:          %s\n", visit.ID)
			fmt.Printf("Billable hours: %.2f\n\n", visit.BillableHours)
			return nil
		},
	}

	cmd.Flags().String("notes", "", "Completion notes")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
)

// AssignVisitCmd creates the assignVisit command
func AssignVisitCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignVisit <visit_id>",
		Short: "Match and assign the best eligible caregiver to a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.AssignVisit(app.Ctx, app.Database, app.Logger,
				services.AssignVisitArgs{
					VisitID:          args[0],
					CredentialPolicy: app.CredentialPolicy(),
					Weights:          app.Weights(),
				})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Caregiver assigned!\n\n")
			fmt.Printf("Visit:     %s\n", result.Visit.ID)
			fmt.Printf("Caregiver: %s\n", result.Assigned.CaregiverID)
			fmt.Printf("Score:     %.2f\n", result.Assigned.Score)
			fmt.Printf("Window:    %s - %s\n\n",
				result.Visit.Window.Start.Format("2006-01-02 15:04"),
				result.Visit.Window.End.Format("15:04"))

			return nil
		},
	}
}

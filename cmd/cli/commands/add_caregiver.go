package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddCaregiverCmd creates the addCaregiver command
func AddCaregiverCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addCaregiver <caregiver_file.yaml>",
		Short: "Register a new caregiver from a YAML definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caregiver, err := loadCaregiverFile(args[0])
			if err != nil {
				return err
			}

			resolveCoordinates(app, caregiver.Address)

			if err := app.Database.CreateCaregiver(app.Ctx, caregiver); err != nil {
				return fmt.Errorf("failed to create caregiver: %w", err)
			}

			fmt.Printf("\n✓ Caregiver registered successfully!\n\n")
			fmt.Printf("Caregiver ID: %s\n", caregiver.ID)
			fmt.Printf("Name:         %s %s\n", caregiver.FirstName, caregiver.LastName)
			fmt.Printf("Skills:       %d\n", len(caregiver.Skills))
			fmt.Printf("Credentials:  %d\n", len(caregiver.Credentials))
			fmt.Printf("Availability: %d windows\n\n", len(caregiver.Availability))

			return nil
		},
	}
}

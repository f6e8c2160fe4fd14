package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

// AddClientCmd creates the addClient command
func AddClientCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addClient <client_file.yaml>",
		Short: "Enroll a new client from a YAML definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := loadClientFile(args[0])
			if err != nil {
				return err
			}

			resolveCoordinates(app, client.Address)

			if err := app.Database.CreateClient(app.Ctx, client); err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			fmt.Printf("\n✓ Client enrolled successfully!\n\n")
			fmt.Printf("Client ID:   %s\n", client.ID)
			fmt.Printf("Name:        %s %s\n", client.FirstName, client.LastName)
			fmt.Printf("Enrolled:    %s\n", client.EnrollmentDate.Format("2006-01-02"))
			if client.Plan != nil {
				fmt.Printf("Plan:        %s (%s), %d tasks\n",
					client.Plan.ID, client.Plan.Status, len(client.Plan.Tasks))
			}
			fmt.Println()

			return nil
		},
	}
}

// resolveCoordinates geocodes an address in place. Failure leaves the
// coordinates unset; matching then treats the distance as unknown.
func resolveCoordinates(app *AppContext, address *domain.Address) {
	if address == nil || address.Geocoded() || app.Geocoder == nil {
		return
	}
	coords, err := app.Geocoder.Resolve(app.Ctx, address)
	if err != nil {
		app.Logger.Warn("Address could not be geocoded", zap.Error(err))
		return
	}
	address.Latitude = &coords.Latitude
	address.Longitude = &coords.Longitude
}

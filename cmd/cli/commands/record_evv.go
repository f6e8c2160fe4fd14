package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
	"github.com/caringcompass/carematch/pkg/domain"
)

// RecordEVVCmd creates the recordEvv command
func RecordEVVCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordEvv <visit_id> <in|out>",
		Short: "Record an electronic visit verification clock punch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var eventType domain.EVVEventType
			switch strings.ToLower(args[1]) {
			case "in":
				eventType = domain.EVVClockIn
			case "out":
				eventType = domain.EVVClockOut
			default:
				return fmt.Errorf("event must be 'in' or 'out', got %q", args[1])
			}

			lat, _ := cmd.Flags().GetFloat64("lat")
			lon, _ := cmd.Flags().GetFloat64("lon")

			event, err := services.RecordEVV(app.Ctx, app.Database, app.Logger,
				services.RecordEVVArgs{
					VisitID:   args[0],
					EventType: eventType,
					Timestamp: time.Now(),
					Latitude:  lat,
					Longitude: lon,
				})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s recorded at %s (pair %d)\n\n",
				event.Type, event.Timestamp.Format(time.RFC3339), event.Pair)
			return nil
		},
	}

	cmd.Flags().Float64("lat", 0, "Latitude of the punch location")
	cmd.Flags().Float64("lon", 0, "Longitude of the punch location")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
	"github.com/caringcompass/carematch/pkg/domain"
)

// FindMatchCmd creates the findMatch command
func FindMatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "findMatch <client_id> <start> <end>",
		Short: "Rank eligible caregivers for a visit window (RFC 3339 times)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseWindow(args[1], args[2])
			if err != nil {
				return err
			}

			result, err := services.FindEligibleCaregivers(app.Ctx, app.Database, app.Logger,
				services.FindMatchArgs{
					ClientID:         args[0],
					Window:           window,
					CredentialPolicy: app.CredentialPolicy(),
					Weights:          app.Weights(),
				})
			if err != nil {
				return err
			}

			printMatches(result)
			return nil
		},
	}
}

func parseWindow(start, end string) (domain.VisitWindow, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return domain.VisitWindow{}, fmt.Errorf("failed to parse start time: %w", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return domain.VisitWindow{}, fmt.Errorf("failed to parse end time: %w", err)
	}
	return domain.VisitWindow{Start: s, End: e}, nil
}

func printMatches(result *services.MatchResult) {
	if len(result.Matches) == 0 {
		fmt.Println("\nNo eligible caregivers for this window.")
		fmt.Println("Consider widening the window or reviewing plan requirements.")
		return
	}

	fmt.Printf("\nFound %d eligible caregivers:\n\n", len(result.Matches))
	for i, m := range result.Matches {
		distance := "unknown"
		if m.Distance != nil {
			distance = fmt.Sprintf("%.1f km", *m.Distance)
		}
		fmt.Printf("%2d. %s\n", i+1, m.CaregiverID)
		fmt.Printf("    score %.2f | rating %.1f | distance %s | preferred skills %d\n",
			m.Score, m.Rating, distance, m.PreferredMatches)
		if len(m.MissingPreferredSkills) > 0 {
			fmt.Printf("    missing preferred: %v\n", m.MissingPreferredSkills)
		}
	}
	fmt.Println()
}

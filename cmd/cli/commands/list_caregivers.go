package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/domain"
)

// ListCaregiversCmd creates the listCaregivers command
func ListCaregiversCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listCaregivers",
		Short: "Print the caregiver roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caregivers, err := app.Database.ListCaregivers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list caregivers: %w", err)
			}

			if len(caregivers) == 0 {
				fmt.Println("\nNo caregivers on file.")
				return nil
			}

			fmt.Printf("\n%d caregivers:\n\n", len(caregivers))
			for _, c := range caregivers {
				fmt.Printf("  %s %s  [%s]\n", c.FirstName, c.LastName, c.Status)
				fmt.Printf("    id: %s  rating: %.1f  skills: %s\n",
					c.ID, c.AverageRating, skillSummary(c.Skills))
			}
			fmt.Println()
			return nil
		},
	}
}

func skillSummary(skills []domain.SkillEntry) string {
	if len(skills) == 0 {
		return "none"
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = string(s.Skill)
	}
	return strings.Join(names, ", ")
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
)

// ExpiringCredentialsCmd creates the expiringCredentials command
func ExpiringCredentialsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expiringCredentials",
		Short: "List verified credentials lapsing within the alert window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			if days == 0 {
				days = app.Cfg.CredentialAlertDays
			}

			expiring, err := services.ExpiringCredentials(app.Ctx, app.Database, app.Logger,
				time.Now(), days)
			if err != nil {
				return err
			}

			if len(expiring) == 0 {
				fmt.Printf("\nNo credentials expiring in the next %d days.\n\n", days)
				return nil
			}

			fmt.Printf("\nCredentials expiring within %d days:\n\n", days)
			for _, e := range expiring {
				expires := "unknown"
				if e.Credential.ExpirationDate != nil {
					expires = e.Credential.ExpirationDate.Format("2006-01-02")
				}
				fmt.Printf("  %-24s %-18s expires %s\n",
					e.CaregiverName, e.Credential.Type, expires)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Int("days", 0, "Alert window in days (defaults to config)")

	return cmd
}

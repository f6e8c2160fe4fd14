package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caringcompass/carematch/pkg/core/services"
	"github.com/caringcompass/carematch/pkg/domain"
)

// CreateInviteCmd creates the createInvite command
func CreateInviteCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createInvite <email> <role>",
		Short: "Issue a single-use invite for a new user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := domain.Role(strings.ToUpper(args[1]))
			if !role.Valid() {
				return fmt.Errorf("unknown role %q", args[1])
			}
			invitedBy, _ := cmd.Flags().GetString("invited-by")

			invite, err := services.CreateInvite(app.Ctx, app.Database, app.Logger,
				services.CreateInviteArgs{
					Email:     args[0],
					Role:      role,
					InvitedBy: invitedBy,
					TTL:       app.Cfg.InviteTTL(),
				})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Invite created!\n\n")
			fmt.Printf("Email:   %s\n", invite.Email)
			fmt.Printf("Role:    %s\n", invite.Role)
			fmt.Printf("Code:    %s\n", invite.InviteCode)
			fmt.Printf("Expires: %s\n\n", invite.ExpiresAt.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().String("invited-by", "", "User ID of the inviter")

	return cmd
}

// AcceptInviteCmd creates the acceptInvite command
func AcceptInviteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "acceptInvite <code>",
		Short: "Redeem an invite code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invite, err := services.AcceptInvite(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Invite accepted for %s (%s)\n\n", invite.Email, invite.Role)
			return nil
		},
	}
}

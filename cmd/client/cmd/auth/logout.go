package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorlink/cmd/client/cmd/types"
	"tutorlink/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		if err := app.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

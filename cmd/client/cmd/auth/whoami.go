package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorlink/cmd/client/cmd/types"
	"tutorlink/internal/app/client"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		sess := app.Session()
		if !sess.Authenticated() {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("Login: %s\n", sess.Login)
		fmt.Printf("Role:  %s\n", sess.Role)
		fmt.Printf("ID:    %d\n", sess.UserID)
		return nil
	},
}

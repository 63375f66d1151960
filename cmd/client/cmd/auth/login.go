package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tutorlink/cmd/client/cmd/types"
	"tutorlink/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the marketplace",
	Long: `Authenticate against the marketplace backend.

The bearer token is stored locally and reused by subsequent commands until
it expires or you sign out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		fmt.Println("=== Sign in ===")
		fmt.Println()

		fmt.Print("Login: ")
		var login string
		_, _ = fmt.Scanln(&login)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Println("Authenticating...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, login, string(password)); err != nil {
			return fmt.Errorf("authentication failed: %s", client.UserMessage(err))
		}

		sess := app.Session()
		fmt.Println()
		fmt.Printf("Signed in as %s (%s)\n", sess.Login, sess.Role)
		return nil
	},
}

package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tutorlink/cmd/client/cmd/types"
	"tutorlink/internal/app/client"
	"tutorlink/internal/domain/user"
)

var (
	registerRole string
	registerBio  string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register an account on the marketplace.

Tutor accounts need a bio; pass it with --bio or you will be prompted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		fmt.Println("=== Registration ===")
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

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		role := user.Role(registerRole)
		if !role.Valid() {
			return fmt.Errorf("unknown role %q, expected learner, tutor or admin", registerRole)
		}

		bio := registerBio
		if role == user.RoleTutor && bio == "" {
			fmt.Print("Bio (50-1000 characters): ")
			// Bios contain spaces, Scanln would stop at the first one.
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			bio = strings.TrimSpace(line)
		}

		fmt.Println("Registering...")
		if err := app.Register(cmd.Context(), login, string(password), role, bio); err != nil {
			return fmt.Errorf("registration failed: %s", client.UserMessage(err))
		}

		fmt.Println()
		fmt.Println("Registration complete. Sign in with: tutorlink auth login")
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerRole, "role", "tutor", "account role: learner, tutor or admin")
	RegisterCmd.Flags().StringVar(&registerBio, "bio", "", "tutor bio")
}

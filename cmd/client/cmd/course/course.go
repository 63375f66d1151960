package course

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tutorlink/cmd/client/cmd/types"
	"tutorlink/internal/app/client"
	"tutorlink/internal/domain/user"
)

// CourseCmd is the parent command for the authoring workflow.
var CourseCmd = &cobra.Command{
	Use:   "course",
	Short: "Course authoring",
	Long:  `Create, edit and publish courses with their section and lesson tree.`,
}

// tutorApp resolves the app from the command context and runs the route
// guard for the tutor surface. Denied access names the place the user
// should go instead.
func tutorApp(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}

	decision := app.Guard(user.RoleTutor)
	if !decision.Allowed {
		return nil, fmt.Errorf("access denied: this area is for tutors, continue at %q", decision.Redirect)
	}
	return app, nil
}

// printSyncResult renders the per-entity log of a content sync run.
func printSyncResult(result *client.SyncResult) {
	if result == nil {
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, e := range result.Entities {
		switch e.Outcome {
		case client.OutcomeCreated:
			fmt.Printf("  %s %s %q (id %s)\n", green("+"), e.Kind, e.Title, e.Ref)
		case client.OutcomeUpdated:
			fmt.Printf("  %s %s %q (id %s)\n", yellow("~"), e.Kind, e.Title, e.Ref)
		case client.OutcomeFailed:
			fmt.Printf("  %s %s %q: %s\n", red("x"), e.Kind, e.Title, e.Err)
		}
	}

	fmt.Println()
	if result.Ok() {
		fmt.Printf("%s %d entities synced in %s\n", green("Done:"), len(result.Entities), result.Duration.Round(time.Millisecond))
	} else {
		fmt.Printf("%s stopped at %s %q, already-synced entities were kept\n",
			red("Failed:"), result.Failed.Kind, result.Failed.Title)
		fmt.Println("Run the push again to resume from where it stopped.")
	}
}

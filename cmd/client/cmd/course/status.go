package course

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tutorlink/cmd/client/cmd/types"
	"tutorlink/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List locally stored drafts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application not initialized")
		}

		drafts, err := app.ListDrafts()
		if err != nil {
			return fmt.Errorf("list drafts: %w", err)
		}

		if len(drafts) == 0 {
			fmt.Println("No local drafts.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Draft ID\tCourse ID\tTitle\tUpdated")
		for _, d := range drafts {
			serverID := "-"
			if d.ServerID != 0 {
				serverID = fmt.Sprintf("%d", d.ServerID)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.LocalID, serverID, d.Title, d.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

package course

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorlink/internal/app/client"
)

var PushCmd = &cobra.Command{
	Use:   "push <draft-id>",
	Short: "Sync a stored draft's content tree",
	Long: `Push the content tree of a locally stored draft to the backend.

Entities that already have a server ID are updated with their changed
fields; the rest are created. A failed push stops at the first error and
keeps everything already synced, so running it again resumes rather than
duplicating.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := tutorApp(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Syncing content...")
		result, err := app.PushDraft(cmd.Context(), args[0])
		printSyncResult(result)
		if err != nil {
			return fmt.Errorf("push failed: %s", client.UserMessage(err))
		}
		return nil
	},
}

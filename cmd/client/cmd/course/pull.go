package course

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tutorlink/internal/app/client"
)

var pullCourseID int64

var PullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch a course into a local draft",
	Long: `Pull a published course and its full content tree into the local
draft store, ready for editing and pushing back.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := tutorApp(cmd)
		if err != nil {
			return err
		}

		draft, err := app.PullCourse(cmd.Context(), pullCourseID)
		if err != nil {
			return fmt.Errorf("pull course %d: %s", pullCourseID, client.UserMessage(err))
		}

		color.Green("Pulled %q (draft %s)", draft.Title, draft.LocalID)
		for _, sec := range draft.OrderedSections() {
			fmt.Printf("  section %q (%d lessons)\n", sec.Title, len(sec.Lessons))
		}
		return nil
	},
}

func init() {
	PullCmd.Flags().Int64Var(&pullCourseID, "id", 0, "server course ID")
	_ = PullCmd.MarkFlagRequired("id")
}

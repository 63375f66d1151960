package course

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tutorlink/internal/app/client"
	"tutorlink/internal/domain/course"
)

var (
	editCourseID int64
	editForm     courseFlags
	editOutln    string
)

var EditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an existing course",
	Long: `Edit a published course.

The course and its content tree are pulled from the backend first, so only
the fields you change travel back. Flags you leave out keep their current
values. An outline file replaces the whole content tree.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := tutorApp(cmd)
		if err != nil {
			return err
		}

		wizard, err := app.NewEditWizardFor(cmd.Context(), editCourseID)
		if err != nil {
			return fmt.Errorf("load course %d: %s", editCourseID, client.UserMessage(err))
		}

		applyChangedFlags(cmd, wizard)

		fmt.Println("Saving course metadata...")
		if err := wizard.SubmitStep1(cmd.Context()); err != nil {
			if errors.Is(err, course.ErrInvalidForm) {
				printFieldErrors(wizard)
				return fmt.Errorf("course metadata is invalid")
			}
			app.HandleRemoteError(err)
			return fmt.Errorf("could not save course: %s", wizard.LastError())
		}
		color.Green("Course %d updated", editCourseID)

		if editOutln != "" {
			sections, err := LoadOutline(editOutln)
			if err != nil {
				return err
			}
			if err := wizard.SetSections(sections); err != nil {
				return err
			}

			fmt.Println("Syncing content...")
			result, err := wizard.SaveStep2(cmd.Context())
			printSyncResult(result)
			if err != nil {
				app.HandleRemoteError(err)
				return fmt.Errorf("content sync failed: %s", client.UserMessage(err))
			}
		}

		return app.SaveDraft(wizard.Draft())
	},
}

// applyChangedFlags writes only the flags the user actually set, blur-style
// through SetField so per-field validation fires.
func applyChangedFlags(cmd *cobra.Command, wizard *client.Wizard) {
	set := map[string]string{
		"title":       course.FieldTitle,
		"description": course.FieldDescription,
		"category":    course.FieldCategory,
		"language":    course.FieldLanguage,
		"duration":    course.FieldDuration,
		"price":       course.FieldPrice,
		"thumbnail":   course.FieldThumbnailURL,
	}
	for flag, field := range set {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			wizard.SetField(field, value)
		}
	}
}

func init() {
	EditCmd.Flags().Int64Var(&editCourseID, "id", 0, "server course ID")
	_ = EditCmd.MarkFlagRequired("id")
	registerCourseFlags(EditCmd, &editForm)
	EditCmd.Flags().StringVar(&editOutln, "outline", "", "JSON outline file replacing the content tree")
}

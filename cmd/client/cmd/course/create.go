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
	createForm  courseFlags
	createOutln string
)

// courseFlags mirrors the step-1 form: raw strings, validated by the form
// validators rather than by cobra.
type courseFlags struct {
	Title       string
	Description string
	Category    string
	Language    string
	Duration    string
	Price       string
	Thumbnail   string
}

func (f courseFlags) form() course.Form {
	return course.Form{
		Title:         f.Title,
		Description:   f.Description,
		CategoryID:    f.Category,
		Language:      f.Language,
		DurationHours: f.Duration,
		PriceMinor:    f.Price,
		ThumbnailURL:  f.Thumbnail,
	}
}

func registerCourseFlags(cmd *cobra.Command, f *courseFlags) {
	cmd.Flags().StringVar(&f.Title, "title", "", "course title (3-100 characters)")
	cmd.Flags().StringVar(&f.Description, "description", "", "course description (10-1000 characters)")
	cmd.Flags().StringVar(&f.Category, "category", "", "category identifier")
	cmd.Flags().StringVar(&f.Language, "language", "", "language taught")
	cmd.Flags().StringVar(&f.Duration, "duration", "", "total duration in whole hours (1-999)")
	cmd.Flags().StringVar(&f.Price, "price", "", "price in minor currency units")
	cmd.Flags().StringVar(&f.Thumbnail, "thumbnail", "", "thumbnail URL")
}

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course",
	Long: `Create a course in two steps.

Step 1 sends the course metadata. Step 2, when an outline file is given,
syncs the sections, lessons and resources one by one. Without an outline
the command stops after step 1 and the content can be pushed later.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := tutorApp(cmd)
		if err != nil {
			return err
		}

		wizard := app.NewCreateWizard()
		wizard.SetForm(createForm.form())

		fmt.Println("Saving course metadata...")
		if err := wizard.SubmitStep1(cmd.Context()); err != nil {
			if errors.Is(err, course.ErrInvalidForm) {
				printFieldErrors(wizard)
				return fmt.Errorf("course metadata is invalid")
			}
			app.HandleRemoteError(err)
			return fmt.Errorf("could not save course: %s", wizard.LastError())
		}

		draft := wizard.Draft()
		color.Green("Course created (id %d)", draft.ServerID)

		if err := app.SaveDraft(draft); err != nil {
			return fmt.Errorf("store draft: %w", err)
		}

		if createOutln == "" {
			fmt.Printf("Draft stored as %s. Add content with: tutorlink course push --outline <file> %s\n",
				draft.LocalID, draft.LocalID)
			return nil
		}

		sections, err := LoadOutline(createOutln)
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

		return app.SaveDraft(wizard.Draft())
	},
}

func printFieldErrors(wizard *client.Wizard) {
	red := color.New(color.FgRed).SprintFunc()
	for _, name := range []string{
		course.FieldTitle,
		course.FieldDescription,
		course.FieldCategory,
		course.FieldLanguage,
		course.FieldDuration,
		course.FieldPrice,
		course.FieldThumbnailURL,
	} {
		if msg := wizard.FieldError(name); msg != "" {
			fmt.Printf("  %s %s: %s\n", red("x"), name, msg)
		}
	}
}

func init() {
	registerCourseFlags(CreateCmd, &createForm)
	CreateCmd.Flags().StringVar(&createOutln, "outline", "", "JSON outline file with sections and lessons")
}

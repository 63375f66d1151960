package course

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tutorlink/internal/app/client"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your published courses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := tutorApp(cmd)
		if err != nil {
			return err
		}

		courses, err := app.MyCourses(cmd.Context())
		if err != nil {
			return fmt.Errorf("list courses: %s", client.UserMessage(err))
		}

		if len(courses) == 0 {
			fmt.Println("No courses yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTitle\tLanguage\tDuration\tPrice")
		for _, c := range courses {
			fmt.Fprintf(w, "%d\t%s\t%s\t%dh\t%d\n", c.ID, c.Title, c.Language, c.Duration, c.Price)
		}
		return w.Flush()
	},
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phuture/fudashi/pkg/core/services"
)

// DefineProjectCmd creates the defineProject command
func DefineProjectCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "defineProject <start_date> <end_date>",
		Short: "Define a new project covering an inclusive date range",
		Long:  "Create a project of up to 31 days and paint the configured operating templates onto its grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.DefineProject(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Project created!\n\n")
			fmt.Printf("Project ID: %s\n", result.Project.ID)
			fmt.Printf("Start Date: %s\n", result.Project.StartDate)
			fmt.Printf("End Date:   %s\n", result.Project.EndDate)
			fmt.Printf("Days:       %d\n", result.Days)
			fmt.Printf("Open Hours: %d\n\n", result.OpenHours)

			if result.OpenHours == 0 {
				fmt.Println("💡 No operating templates matched. Use setOperatingHours to open the grid.")
			}

			return nil
		},
	}
}

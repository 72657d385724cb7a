package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phuture/fudashi/pkg/core/services"
)

// SetAvailabilityCmd creates the setAvailability command
func SetAvailabilityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setAvailability <name> <day> <hours>",
		Short: "Block or free an agent's hours on one project day",
		Long: `Mark an agent unavailable for a half-open hour range on a zero-based project day.
hours is a range like 9-17, or ALL (available all day) / NONE (unavailable all day).
With --free, a range is marked available again.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			free, _ := cmd.Flags().GetBool("free")

			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}

			spec := strings.ToUpper(strings.TrimSpace(args[2]))
			switch spec {
			case "ALL":
				// Available for the whole day, so clear every block.
				err = services.SetDayAvailability(app.Ctx, app.Database, app.Logger, args[0], day, false)
			case "NONE":
				// Unavailable for the whole day.
				err = services.SetDayAvailability(app.Ctx, app.Database, app.Logger, args[0], day, true)
			default:
				from, to, perr := parseHourRange(spec)
				if perr != nil {
					return perr
				}
				err = services.SetAvailability(app.Ctx, app.Database, app.Logger, args[0], day, from, to, !free)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Availability updated for day %d\n\n", day)
			return nil
		},
	}

	cmd.Flags().Bool("free", false, "Mark the range available instead of blocked")

	return cmd
}

// SetOperatingHoursCmd creates the setOperatingHours command
func SetOperatingHoursCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setOperatingHours <day> <hours>",
		Short: "Open or close operating hours on one project day",
		Long: `Open a half-open hour range like 8-20 on a zero-based project day of the
latest project. With --closed, the range is closed instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			closed, _ := cmd.Flags().GetBool("closed")

			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}

			from, to, err := parseHourRange(args[1])
			if err != nil {
				return err
			}

			if err := services.SetOperatingHours(app.Ctx, app.Database, app.Logger, day, from, to, !closed); err != nil {
				return err
			}

			fmt.Printf("\n✅ Operating hours updated for day %d\n\n", day)
			return nil
		},
	}

	cmd.Flags().Bool("closed", false, "Close the range instead of opening it")

	return cmd
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phuture/fudashi/pkg/core/services"
)

// AddAgentCmd creates the addAgent command
func AddAgentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addAgent <name>",
		Short: "Add an agent to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetFloat64("target")
			max, _ := cmd.Flags().GetFloat64("max")

			agent, err := services.AddAgent(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], target, max)
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Agent %s added (target %.1fh, max %.1fh)\n\n", agent.Name, agent.TargetHours, agent.MaxHours)
			return nil
		},
	}

	cmd.Flags().Float64("target", 0, "Target hours for the project (default from config)")
	cmd.Flags().Float64("max", 0, "Maximum hours for the project (default from config)")

	return cmd
}

// SetAgentParamsCmd creates the setAgentParams command
func SetAgentParamsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setAgentParams <name>",
		Short: "Update an agent's target and maximum hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetFloat64("target")
			max, _ := cmd.Flags().GetFloat64("max")
			if target <= 0 && max <= 0 {
				return fmt.Errorf("provide --target and/or --max")
			}

			agent, err := services.SetAgentParams(app.Ctx, app.Database, app.Logger, args[0], target, max)
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Agent %s updated (target %.1fh, max %.1fh)\n\n", agent.Name, agent.TargetHours, agent.MaxHours)
			return nil
		},
	}

	cmd.Flags().Float64("target", 0, "New target hours")
	cmd.Flags().Float64("max", 0, "New maximum hours")

	return cmd
}

// RemoveAgentCmd creates the removeAgent command
func RemoveAgentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeAgent <name>",
		Short: "Remove an agent and their availability entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, err := services.RemoveAgent(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Agent %s removed\n\n", agent.Name)
			return nil
		},
	}
}

// ListAgentsCmd creates the listAgents command
func ListAgentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listAgents",
		Short: "List the roster with classification stats and scheduled hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := services.ListAgents(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Println("\nNo agents on the roster. Use addAgent to add one.")
				return nil
			}

			fmt.Printf("\nFound %d agents:\n\n", len(summaries))
			fmt.Printf("%-15s  %-10s  %6s  %6s  %6s  %10s  %9s\n",
				"Name", "Class", "Target", "Max", "Avail", "Flex Score", "Scheduled")
			fmt.Println(strings.Repeat("-", 76))

			for _, s := range summaries {
				fmt.Printf("%-15s  %-10s  %5.1fh  %5.1fh  %5dh  %9.1f%%  %8.1fh\n",
					s.Agent.Name,
					s.Classification,
					s.Agent.TargetHours,
					s.Agent.MaxHours,
					s.AvailableHours,
					s.Flexibility,
					s.ScheduledHours)
			}
			fmt.Println()

			return nil
		},
	}
}

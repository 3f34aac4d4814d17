package cli

import (
	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/state"
)

// NewRootCmd wires every command against the shared state container.
func NewRootCmd(c *state.Container, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "taskboard",
		Short:        "Personal task planner with board, category and agenda views",
		SilenceUsage: true,
	}

	root.AddCommand(
		newTaskCmd(c, cfg),
		newCategoryCmd(c),
		newBoardCmd(c, cfg),
		newOverviewCmd(c, cfg),
		newAgendaCmd(c, cfg),
		newShowCmd(c, cfg),
		newViewCmd(c),
		newRemindCmd(c, cfg),
	)

	return root
}

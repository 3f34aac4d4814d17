package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/prefs"
	"taskboard/internal/state"
	"taskboard/internal/view"
)

func newBoardCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show tasks as a status board",
		Long:  "Visual overview of tasks organized by status (todo, in-progress, completed).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderMode(cmd, c, cfg, view.ModeStatus)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func newOverviewCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show tasks grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderMode(cmd, c, cfg, view.ModeCategory)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func newAgendaCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show tasks grouped by due date",
		Long:  "Buckets tasks into overdue, today, tomorrow, upcoming and no due date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderMode(cmd, c, cfg, view.ModeDate)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

// newShowCmd renders the saved default view with the saved filter;
// flags override without persisting.
func newShowCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the default view",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := prefs.Load()
			if err != nil {
				return err
			}

			mode, err := view.ParseMode(saved.ViewMode)
			if err != nil {
				mode = view.ModeStatus
			}

			filter := saved.Filter
			if override, err := filterFromFlags(cmd, c); err != nil {
				return err
			} else if override != (view.Filter{}) {
				filter = override
			}

			printView(c, cfg, mode, filter)
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

// newViewCmd persists the default view mode and filter. Without
// arguments it prints the current settings.
func newViewCmd(c *state.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "view [status|category|date]",
		Short:     "Set or show the default view mode and filter",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"status", "category", "date"},
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := prefs.Load()
			if err != nil {
				return err
			}

			if len(args) == 0 && !cmd.Flags().Changed("search") &&
				!cmd.Flags().Changed("priority") && !cmd.Flags().Changed("category") {
				fmt.Printf("View mode: %s\n", saved.ViewMode)
				fmt.Printf("Filter: search=%q priority=%q category=%q\n",
					saved.Filter.Search, saved.Filter.Priority, saved.Filter.Category)
				return nil
			}

			if len(args) == 1 {
				mode, err := view.ParseMode(args[0])
				if err != nil {
					return err
				}
				saved.ViewMode = mode.String()
			}

			filter, err := filterFromFlags(cmd, c)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("search") {
				saved.Filter.Search = filter.Search
			}
			if cmd.Flags().Changed("priority") {
				saved.Filter.Priority = filter.Priority
			}
			if cmd.Flags().Changed("category") {
				saved.Filter.Category = filter.Category
			}

			if err := prefs.Save(saved); err != nil {
				return err
			}
			fmt.Printf("✅ Default view saved: %s\n", saved.ViewMode)
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func renderMode(cmd *cobra.Command, c *state.Container, cfg config.Config, mode view.Mode) error {
	filter, err := filterFromFlags(cmd, c)
	if err != nil {
		return err
	}
	printView(c, cfg, mode, filter)
	return nil
}

func printView(c *state.Container, cfg config.Config, mode view.Mode, filter view.Filter) {
	now := time.Now().In(cfg.Location)
	buckets := view.Build(c.Tasks(), c.Categories(), filter, mode, now)

	if mode == view.ModeStatus {
		fmt.Print(renderBoard(buckets, now))
		return
	}
	fmt.Print(renderSections(buckets, categoryNames(c), now))
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskboard/internal/state"
)

// newCategoryCmd creates the category command with all subcommands.
func newCategoryCmd(c *state.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Short:   "Category management commands",
		Aliases: []string{"cat"},
	}

	cmd.AddCommand(newCategoryAddCmd(c))
	cmd.AddCommand(newCategoryListCmd(c))
	cmd.AddCommand(newCategoryModifyCmd(c))
	cmd.AddCommand(newCategoryDeleteCmd(c))

	return cmd
}

func newCategoryAddCmd(c *state.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Create a new category",
		Aliases: []string{"create"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, _ := cmd.Flags().GetString("color")

			if _, ok := c.CategoryByName(args[0]); ok {
				return fmt.Errorf("category %q already exists", args[0])
			}

			category, err := c.AddCategory(args[0], color)
			if err != nil {
				return err
			}

			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(category.Color)).Render("■")
			fmt.Printf("✅ Created category: %s %s\n", swatch, category.Name)
			return nil
		},
	}

	cmd.Flags().String("color", "", "Display color as a hex string, e.g. #22c55e")
	return cmd
}

func newCategoryListCmd(c *state.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List categories",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := c.Categories()
			if len(categories) == 0 {
				fmt.Println("📂 No categories yet.")
				fmt.Println("💡 Create one with 'taskboard category add <name>'")
				return nil
			}

			counts := make(map[string]int)
			for _, t := range c.Tasks() {
				if t.CategoryID != nil {
					counts[*t.CategoryID]++
				}
			}

			fmt.Printf("📂 Categories (%d)\n", len(categories))
			for _, cat := range categories {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("■")
				fmt.Printf("%s %-20s %s %s\n",
					swatch, cat.Name,
					metaStyle.Render(cat.ID[:8]),
					countStyle.Render(fmt.Sprintf("%d task(s)", counts[cat.ID])))
			}
			return nil
		},
	}
}

func newCategoryModifyCmd(c *state.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify [name|id]",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := resolveCategory(c, args[0])
			if err != nil {
				return err
			}

			var patch state.CategoryPatch
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				color, _ := cmd.Flags().GetString("color")
				patch.Color = &color
			}
			if patch.Name == nil && patch.Color == nil {
				return fmt.Errorf("nothing to change, pass --name or --color")
			}

			updated, err := c.UpdateCategory(category.ID, patch)
			if err != nil {
				return err
			}
			if updated == nil {
				return nil
			}

			fmt.Printf("✅ Updated category: %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New display color")
	return cmd
}

func newCategoryDeleteCmd(c *state.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [name|id]",
		Short:   "Delete a category, leaving its tasks uncategorized",
		Aliases: []string{"rm", "del"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := resolveCategory(c, args[0])
			if err != nil {
				return err
			}

			if !askForConfirmation(fmt.Sprintf("Delete category %q? Its tasks become uncategorized.", category.Name)) {
				fmt.Println("🚫 Delete cancelled.")
				return nil
			}

			if err := c.DeleteCategory(category.ID); err != nil {
				return err
			}
			fmt.Println("✅ Category deleted.")
			return nil
		},
	}
}

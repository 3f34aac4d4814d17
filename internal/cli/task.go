package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/model"
	"taskboard/internal/state"
	"taskboard/internal/view"
)

// newTaskCmd creates the task command with all subcommands.
func newTaskCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task management commands",
		Long:  "Create, list, update, and manage tasks",
	}

	cmd.AddCommand(newTaskAddCmd(c, cfg))
	cmd.AddCommand(newTaskListCmd(c, cfg))
	cmd.AddCommand(newTaskModifyCmd(c, cfg))
	cmd.AddCommand(newTaskStartCmd(c))
	cmd.AddCommand(newTaskDoneCmd(c))
	cmd.AddCommand(newTaskDeleteCmd(c))

	return cmd
}

func newTaskAddCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Create a new task",
		Aliases: []string{"create"},
		Args: func(cmd *cobra.Command, args []string) error {
			interactive, _ := cmd.Flags().GetBool("interactive")
			if !interactive && len(args) < 1 {
				return fmt.Errorf("requires a title when not in interactive mode")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive, _ := cmd.Flags().GetBool("interactive")

			var input state.TaskInput
			if interactive {
				form, err := runTaskForm(c.Categories(), taskForm{}, false)
				if err != nil {
					return err
				}
				input, err = inputFromForm(c, form, cfg.Location)
				if err != nil {
					return err
				}
			} else {
				input.Title = strings.Join(args, " ")
				input.Description, _ = cmd.Flags().GetString("description")

				priority, _ := cmd.Flags().GetString("priority")
				if priority != "" {
					if !model.Priority(priority).Valid() {
						return fmt.Errorf("invalid priority %q, expected low, medium or high", priority)
					}
					input.Priority = model.Priority(priority)
				}

				due, _ := cmd.Flags().GetString("due")
				dueDate, err := parseDue(due, cfg.Location)
				if err != nil {
					return err
				}
				input.DueDate = dueDate

				categoryName, _ := cmd.Flags().GetString("category")
				if categoryName != "" {
					cat, err := c.GetOrCreateCategory(categoryName)
					if err != nil {
						return err
					}
					input.CategoryID = &cat.ID
				}
			}

			task, err := c.AddTask(input)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Created task: %s\n", task.Title)
			fmt.Printf("   ID: %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "Use the interactive form")
	cmd.Flags().StringP("description", "d", "", "Task description")
	cmd.Flags().StringP("priority", "p", "", "Task priority (low, medium, high)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringP("category", "c", "", "Category name (created if missing)")

	return cmd
}

func newTaskListCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filterFromFlags(cmd, c)
			if err != nil {
				return err
			}

			tasks := view.Apply(c.Tasks(), filter)
			if len(tasks) == 0 {
				fmt.Println("📋 No tasks found.")
				fmt.Println("💡 Create one with 'taskboard task add <title>'")
				return nil
			}

			now := time.Now().In(cfg.Location)
			ids := shortIDs(tasks)
			names := categoryNames(c)

			fmt.Printf("📋 Tasks (%d)\n", len(tasks))
			for _, t := range tasks {
				fmt.Println(taskLine(t, ids, names, now))
			}
			return nil
		},
	}

	addFilterFlags(cmd)
	return cmd
}

func newTaskModifyCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify [id]",
		Short: "Modify a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			interactive, _ := cmd.Flags().GetBool("interactive")
			var patch state.TaskPatch
			if interactive {
				patch, err = patchFromForm(c, task, cfg.Location)
			} else {
				patch, err = patchFromFlags(cmd, c, cfg.Location)
			}
			if err != nil {
				return err
			}

			updated, err := c.UpdateTask(task.ID, patch)
			if err != nil {
				return err
			}
			if updated == nil {
				return nil
			}

			fmt.Printf("✅ Updated task: %s\n", updated.Title)
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "Edit via the interactive form")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().StringP("description", "d", "", "New description")
	cmd.Flags().StringP("priority", "p", "", "New priority (low, medium, high)")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().StringP("category", "c", "", "New category name (created if missing)")
	cmd.Flags().Bool("no-category", false, "Remove the category")

	return cmd
}

func newTaskStartCmd(c *state.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start [id]",
		Short: "Start working on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(c, args[0], model.StatusInProgress, "▶️ Started task: %s\n")
		},
	}
}

func newTaskDoneCmd(c *state.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(c, args[0], model.StatusCompleted, "✅ Completed task: %s\n")
		},
	}
}

func newTaskDeleteCmd(c *state.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Short:   "Delete a task",
		Aliases: []string{"rm", "del"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(c, args[0])
			if err != nil {
				return err
			}

			if !askForConfirmation(fmt.Sprintf("Delete task %q?", task.Title)) {
				fmt.Println("🚫 Delete cancelled.")
				return nil
			}

			if err := c.DeleteTask(task.ID); err != nil {
				return err
			}
			fmt.Println("✅ Task deleted.")
			return nil
		},
	}
}

func setStatus(c *state.Container, ref string, status model.Status, doneMsg string) error {
	task, err := resolveTask(c, ref)
	if err != nil {
		return err
	}

	updated, err := c.UpdateTask(task.ID, state.TaskPatch{Status: &status})
	if err != nil {
		return err
	}
	if updated != nil {
		fmt.Printf(doneMsg, updated.Title)
	}
	return nil
}

// addFilterFlags registers the shared filter flags of the list and view
// commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search", "s", "", "Match title or description (case-insensitive)")
	cmd.Flags().StringP("priority", "p", "", "Filter by priority (low, medium, high, all)")
	cmd.Flags().StringP("category", "c", "", "Filter by category name, 'none' or 'all'")
}

func filterFromFlags(cmd *cobra.Command, c *state.Container) (view.Filter, error) {
	search, _ := cmd.Flags().GetString("search")
	priority, _ := cmd.Flags().GetString("priority")
	category, _ := cmd.Flags().GetString("category")

	priority, err := parsePriorityFlag(priority)
	if err != nil {
		return view.Filter{}, err
	}
	category, err = categoryFilterValue(c, category)
	if err != nil {
		return view.Filter{}, err
	}

	return view.Filter{Search: search, Priority: priority, Category: category}, nil
}

func inputFromForm(c *state.Container, form taskForm, loc *time.Location) (state.TaskInput, error) {
	input := state.TaskInput{
		Title:       form.Title,
		Description: form.Description,
		Priority:    model.Priority(form.Priority),
	}

	due, err := parseDue(form.Due, loc)
	if err != nil {
		return state.TaskInput{}, err
	}
	input.DueDate = due

	if form.Category != "" && form.Category != noCategoryOption {
		cat, err := c.GetOrCreateCategory(form.Category)
		if err != nil {
			return state.TaskInput{}, err
		}
		input.CategoryID = &cat.ID
	}

	if form.Status != "" {
		input.Status = model.Status(form.Status)
	}

	return input, nil
}

func patchFromForm(c *state.Container, task model.Task, loc *time.Location) (state.TaskPatch, error) {
	defaults := taskForm{
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
	}
	if task.DueDate != nil {
		defaults.Due = task.DueDate.In(loc).Format(dueDateLayout)
	}
	if task.CategoryID != nil {
		if cat, ok := c.CategoryByID(*task.CategoryID); ok {
			defaults.Category = cat.Name
		}
	}

	form, err := runTaskForm(c.Categories(), defaults, true)
	if err != nil {
		return state.TaskPatch{}, err
	}

	priority := model.Priority(form.Priority)
	status := model.Status(form.Status)
	patch := state.TaskPatch{
		Title:       &form.Title,
		Description: &form.Description,
		Priority:    &priority,
		Status:      &status,
	}

	if form.Due == "" {
		patch.ClearDue = true
	} else {
		due, err := parseDue(form.Due, loc)
		if err != nil {
			return state.TaskPatch{}, err
		}
		patch.DueDate = due
	}

	if form.Category == noCategoryOption {
		patch.ClearCategory = true
	} else {
		cat, err := c.GetOrCreateCategory(form.Category)
		if err != nil {
			return state.TaskPatch{}, err
		}
		patch.CategoryID = &cat.ID
	}

	return patch, nil
}

func patchFromFlags(cmd *cobra.Command, c *state.Container, loc *time.Location) (state.TaskPatch, error) {
	var patch state.TaskPatch

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		patch.Description = &description
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		if !model.Priority(raw).Valid() {
			return state.TaskPatch{}, fmt.Errorf("invalid priority %q, expected low, medium or high", raw)
		}
		priority := model.Priority(raw)
		patch.Priority = &priority
	}

	if clearDue, _ := cmd.Flags().GetBool("clear-due"); clearDue {
		patch.ClearDue = true
	} else if cmd.Flags().Changed("due") {
		raw, _ := cmd.Flags().GetString("due")
		due, err := parseDue(raw, loc)
		if err != nil {
			return state.TaskPatch{}, err
		}
		patch.DueDate = due
	}

	if noCategory, _ := cmd.Flags().GetBool("no-category"); noCategory {
		patch.ClearCategory = true
	} else if cmd.Flags().Changed("category") {
		name, _ := cmd.Flags().GetString("category")
		cat, err := c.GetOrCreateCategory(name)
		if err != nil {
			return state.TaskPatch{}, err
		}
		patch.CategoryID = &cat.ID
	}

	return patch, nil
}

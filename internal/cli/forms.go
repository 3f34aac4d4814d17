package cli

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"taskboard/internal/model"
)

const noCategoryOption = "(none)"

// taskForm holds the raw answers of the interactive task dialog.
type taskForm struct {
	Title       string `survey:"title"`
	Description string `survey:"description"`
	Priority    string `survey:"priority"`
	Due         string `survey:"due"`
	Category    string `survey:"category"`
	Status      string `survey:"status"`
}

// runTaskForm asks for every task field. Status is only asked when
// editing an existing task.
func runTaskForm(categories []model.Category, defaults taskForm, withStatus bool) (taskForm, error) {
	if defaults.Priority == "" {
		defaults.Priority = string(model.PriorityMedium)
	}
	if defaults.Category == "" {
		defaults.Category = noCategoryOption
	}

	categoryOptions := []string{noCategoryOption}
	for _, cat := range categories {
		categoryOptions = append(categoryOptions, cat.Name)
	}

	qs := []*survey.Question{
		{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Title:", Default: defaults.Title},
			Validate: survey.Required,
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description:", Default: defaults.Description},
		},
		{
			Name: "priority",
			Prompt: &survey.Select{
				Message: "Priority:",
				Options: []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh)},
				Default: defaults.Priority,
			},
		},
		{
			Name:     "due",
			Prompt:   &survey.Input{Message: "Due date (YYYY-MM-DD, empty for none):", Default: defaults.Due},
			Validate: validDueDate,
		},
		{
			Name: "category",
			Prompt: &survey.Select{
				Message: "Category:",
				Options: categoryOptions,
				Default: defaults.Category,
			},
		},
	}

	if withStatus {
		if defaults.Status == "" {
			defaults.Status = string(model.StatusTodo)
		}
		qs = append(qs, &survey.Question{
			Name: "status",
			Prompt: &survey.Select{
				Message: "Status:",
				Options: []string{string(model.StatusTodo), string(model.StatusInProgress), string(model.StatusCompleted)},
				Default: defaults.Status,
			},
		})
	}

	var form taskForm
	if err := survey.Ask(qs, &form); err != nil {
		return taskForm{}, err
	}
	return form, nil
}

// askForConfirmation shows a yes/no dialog, defaulting to no.
func askForConfirmation(message string) bool {
	confirmed := false
	if err := survey.AskOne(&survey.Confirm{Message: message}, &confirmed); err != nil {
		return false
	}
	return confirmed
}

func validDueDate(ans interface{}) error {
	s, _ := ans.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseInLocation(dueDateLayout, s, time.Local); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return nil
}

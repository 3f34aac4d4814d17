package cli

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/state"
	"taskboard/internal/view"
)

const dueDateLayout = "2006-01-02"

func parseDue(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dueDateLayout, s, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}

// resolveTask finds a task by unique ID prefix.
func resolveTask(c *state.Container, ref string) (model.Task, error) {
	var matches []model.Task
	for _, t := range c.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("no task matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, fmt.Errorf("task reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// resolveCategory finds a category by exact name, falling back to a
// unique ID prefix.
func resolveCategory(c *state.Container, ref string) (model.Category, error) {
	if cat, ok := c.CategoryByName(ref); ok {
		return cat, nil
	}

	var matches []model.Category
	for _, cat := range c.Categories() {
		if strings.HasPrefix(cat.ID, ref) {
			matches = append(matches, cat)
		}
	}
	switch len(matches) {
	case 0:
		return model.Category{}, fmt.Errorf("no category matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Category{}, fmt.Errorf("category reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func categoryNames(c *state.Container) map[string]string {
	names := make(map[string]string)
	for _, cat := range c.Categories() {
		names[cat.ID] = cat.Name
	}
	return names
}

// categoryFilterValue turns the --category flag (name, ID prefix, none,
// all or empty) into the filter's category value.
func categoryFilterValue(c *state.Container, raw string) (string, error) {
	switch raw {
	case "", view.FilterAll, view.FilterNone:
		return raw, nil
	}
	cat, err := resolveCategory(c, raw)
	if err != nil {
		return "", err
	}
	return cat.ID, nil
}

func parsePriorityFlag(raw string) (string, error) {
	if raw == "" || raw == view.FilterAll {
		return raw, nil
	}
	if !model.Priority(raw).Valid() {
		return "", fmt.Errorf("invalid priority %q, expected low, medium or high", raw)
	}
	return raw, nil
}

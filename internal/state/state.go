package state

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

// DefaultCategoryColor is used when a category is created without an
// explicit color.
const DefaultCategoryColor = "#6b7280"

// Persister is the slice of the store the container needs.
type Persister interface {
	LoadTasks() []model.Task
	LoadCategories() []model.Category
	SaveTasks([]model.Task) error
	SaveCategories([]model.Category) error
}

// Container owns the canonical task and category collections. All
// mutation funnels through its methods, and every mutation writes the
// affected collection back through the persister before returning.
type Container struct {
	store      Persister
	tasks      []model.Task
	categories []model.Category

	now   func() time.Time
	newID func() string
}

func New(store Persister) *Container {
	return &Container{
		store:      store,
		tasks:      store.LoadTasks(),
		categories: store.LoadCategories(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Reload re-reads both collections from the persister, discarding the
// in-memory state.
func (c *Container) Reload() {
	c.tasks = c.store.LoadTasks()
	c.categories = c.store.LoadCategories()
}

// Tasks returns a copy of the task collection.
func (c *Container) Tasks() []model.Task {
	return slices.Clone(c.tasks)
}

// Categories returns a copy of the category collection.
func (c *Container) Categories() []model.Category {
	return slices.Clone(c.categories)
}

func (c *Container) TaskByID(id string) (model.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (c *Container) CategoryByID(id string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}

// CategoryByName looks a category up by its display name.
func (c *Container) CategoryByName(name string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return model.Category{}, false
}

// TaskInput carries the caller-settable fields for a new task.
type TaskInput struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	DueDate     *time.Time
	CategoryID  *string
}

// AddTask creates a task with a generated identifier and equal
// creation/update timestamps. Status defaults to todo, priority to
// medium.
func (c *Container) AddTask(input TaskInput) (model.Task, error) {
	if input.Title == "" {
		return model.Task{}, fmt.Errorf("title is required")
	}
	if input.Status == "" {
		input.Status = model.StatusTodo
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}

	now := c.now()
	task := model.Task{
		ID:          c.newID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	c.tasks = append(c.tasks, task)
	return task, c.store.SaveTasks(c.tasks)
}

// TaskPatch updates only the fields that are set. The Clear flags
// distinguish "leave alone" from "unset".
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *model.Status
	Priority      *model.Priority
	DueDate       *time.Time
	ClearDue      bool
	CategoryID    *string
	ClearCategory bool
}

// UpdateTask applies the patch and refreshes the update timestamp. A
// missing identifier is tolerated and returns nil without error.
func (c *Container) UpdateTask(id string, patch TaskPatch) (*model.Task, error) {
	idx := slices.IndexFunc(c.tasks, func(t model.Task) bool { return t.ID == id })
	if idx < 0 {
		return nil, nil
	}

	task := &c.tasks[idx]
	if patch.Title != nil && *patch.Title != "" {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.ClearDue {
		task.DueDate = nil
	} else if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.ClearCategory {
		task.CategoryID = nil
	} else if patch.CategoryID != nil {
		task.CategoryID = patch.CategoryID
	}
	task.UpdatedAt = c.now()

	updated := *task
	return &updated, c.store.SaveTasks(c.tasks)
}

// DeleteTask removes a task. Absent identifiers are a no-op.
func (c *Container) DeleteTask(id string) error {
	idx := slices.IndexFunc(c.tasks, func(t model.Task) bool { return t.ID == id })
	if idx < 0 {
		return nil
	}
	c.tasks = slices.Delete(c.tasks, idx, idx+1)
	return c.store.SaveTasks(c.tasks)
}

// AddCategory creates a category. An empty color falls back to the
// default.
func (c *Container) AddCategory(name, color string) (model.Category, error) {
	if name == "" {
		return model.Category{}, fmt.Errorf("name is required")
	}
	if color == "" {
		color = DefaultCategoryColor
	}

	category := model.Category{ID: c.newID(), Name: name, Color: color}
	c.categories = append(c.categories, category)
	return category, c.store.SaveCategories(c.categories)
}

// GetOrCreateCategory resolves a category by name, creating it with the
// default color when it does not exist yet.
func (c *Container) GetOrCreateCategory(name string) (model.Category, error) {
	if cat, ok := c.CategoryByName(name); ok {
		return cat, nil
	}
	return c.AddCategory(name, "")
}

// CategoryPatch updates only the fields that are set.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// UpdateCategory applies the patch. A missing identifier is tolerated
// and returns nil without error.
func (c *Container) UpdateCategory(id string, patch CategoryPatch) (*model.Category, error) {
	idx := slices.IndexFunc(c.categories, func(cat model.Category) bool { return cat.ID == id })
	if idx < 0 {
		return nil, nil
	}

	category := &c.categories[idx]
	if patch.Name != nil && *patch.Name != "" {
		category.Name = *patch.Name
	}
	if patch.Color != nil && *patch.Color != "" {
		category.Color = *patch.Color
	}

	updated := *category
	return &updated, c.store.SaveCategories(c.categories)
}

// DeleteCategory removes a category and clears the reference on every
// task that pointed at it. Absent identifiers are a no-op.
func (c *Container) DeleteCategory(id string) error {
	idx := slices.IndexFunc(c.categories, func(cat model.Category) bool { return cat.ID == id })
	if idx < 0 {
		return nil
	}
	c.categories = slices.Delete(c.categories, idx, idx+1)

	cleared := false
	for i := range c.tasks {
		if c.tasks[i].CategoryID != nil && *c.tasks[i].CategoryID == id {
			c.tasks[i].CategoryID = nil
			c.tasks[i].UpdatedAt = c.now()
			cleared = true
		}
	}

	if err := c.store.SaveCategories(c.categories); err != nil {
		return err
	}
	if cleared {
		return c.store.SaveTasks(c.tasks)
	}
	return nil
}

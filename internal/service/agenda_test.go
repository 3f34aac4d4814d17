package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
	"taskboard/internal/state"
)

type fakeStore struct {
	tasks      []model.Task
	categories []model.Category
}

func (f *fakeStore) LoadTasks() []model.Task { return f.tasks }

func (f *fakeStore) LoadCategories() []model.Category { return f.categories }

func (f *fakeStore) SaveTasks(tasks []model.Task) error {
	f.tasks = tasks
	return nil
}

func (f *fakeStore) SaveCategories(c []model.Category) error {
	f.categories = c
	return nil
}

var _ state.Persister = (*fakeStore)(nil)

func TestSummaryMarksOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	catID := "cat-bills"

	c := state.New(&fakeStore{
		tasks: []model.Task{
			{ID: "t1", Title: "pay rent", Status: model.StatusTodo, Priority: model.PriorityHigh, DueDate: &yesterday, CategoryID: &catID},
			{ID: "t2", Title: "walk dog", Status: model.StatusTodo, Priority: model.PriorityLow},
		},
		categories: []model.Category{{ID: catID, Name: "Bills", Color: "#f00"}},
	})

	summary := NewAgenda(c).Summary(now)

	assert.Contains(t, summary, "Overdue")
	assert.Contains(t, summary, "pay rent")
	assert.Contains(t, summary, "(Bills)")
	assert.Contains(t, summary, "overdue")
	assert.Contains(t, summary, "walk dog")
}

func TestSummaryExcludesCompleted(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	c := state.New(&fakeStore{
		tasks: []model.Task{
			{ID: "t1", Title: "shipped feature", Status: model.StatusCompleted},
		},
	})

	summary := NewAgenda(c).Summary(now)
	assert.NotContains(t, summary, "shipped feature")
	assert.Contains(t, summary, "nothing open")
}

func TestSummaryHeaderShowsDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c := state.New(&fakeStore{})

	summary := NewAgenda(c).Summary(now)
	assert.True(t, strings.Contains(summary, "Tue, 10 Mar 2026"), summary)
}

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "0 30 9 * * *", spec)

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd"} {
		_, err := buildDailySpec(bad)
		assert.Error(t, err, bad)
	}
}

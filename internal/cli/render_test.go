package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
	"taskboard/internal/view"
)

func TestShortIDs(t *testing.T) {
	tasks := []model.Task{
		{ID: "aaaaaaaa-1111"},
		{ID: "aaaaaaaa-2222"},
		{ID: "bbbbbbbb-3333"},
	}

	ids := shortIDs(tasks)

	assert.Equal(t, "bbbbbbbb", ids["bbbbbbbb-3333"])
	// Colliding 8-char prefixes grow until unique.
	assert.NotEqual(t, ids["aaaaaaaa-1111"], ids["aaaaaaaa-2222"])
	assert.True(t, len(ids["aaaaaaaa-1111"]) > 8)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long ...", truncate("a long title here", 10))
	assert.Equal(t, "abc", truncate("abc", 3))
}

func TestTaskLineShowsMeta(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 2)
	catID := "cat-1"
	task := model.Task{
		ID:         "task-1234567",
		Title:      "file taxes",
		Status:     model.StatusTodo,
		Priority:   model.PriorityHigh,
		DueDate:    &due,
		CategoryID: &catID,
	}

	line := taskLine(task, shortIDs([]model.Task{task}), map[string]string{catID: "Finance"}, now)
	assert.Contains(t, line, "file taxes")
	assert.Contains(t, line, "2026-03-12")
	assert.Contains(t, line, "Finance")
}

func TestTaskLineDanglingCategory(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	catID := "gone"
	task := model.Task{ID: "task-1", Title: "orphan", CategoryID: &catID}

	line := taskLine(task, shortIDs([]model.Task{task}), map[string]string{}, now)
	assert.Contains(t, line, "uncategorized")
}

func TestRenderSectionsKeepsEmptyBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	buckets := []view.Bucket{
		{Key: "cat-1", Title: "Work", Tasks: []model.Task{{ID: "t1", Title: "standup"}}},
		{Key: "cat-2", Title: "Home"},
	}

	out := renderSections(buckets, map[string]string{}, now)
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "empty")
}

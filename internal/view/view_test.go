package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func task(title string, status model.Status) model.Task {
	return model.Task{
		ID:       "task-" + title,
		Title:    title,
		Status:   status,
		Priority: model.PriorityMedium,
	}
}

func dueIn(t model.Task, days int) model.Task {
	due := testNow.AddDate(0, 0, days)
	t.DueDate = &due
	return t
}

func withCategory(t model.Task, id string) model.Task {
	t.CategoryID = &id
	return t
}

func bucketSizes(buckets []Bucket) map[string]int {
	sizes := make(map[string]int)
	for _, b := range buckets {
		sizes[b.Key] = len(b.Tasks)
	}
	return sizes
}

func TestFilterSearch(t *testing.T) {
	tasks := []model.Task{
		task("Buy groceries", model.StatusTodo),
		task("Pay bills", model.StatusTodo),
	}

	got := Apply(tasks, Filter{Search: "groceries"})
	require.Len(t, got, 1)
	assert.Equal(t, "Buy groceries", got[0].Title)
}

func TestFilterSearchMatchesDescription(t *testing.T) {
	withDesc := task("Errands", model.StatusTodo)
	withDesc.Description = "buy GROCERIES and stamps"

	got := Apply([]model.Task{withDesc, task("Pay bills", model.StatusTodo)}, Filter{Search: "groceries"})
	require.Len(t, got, 1)
	assert.Equal(t, "Errands", got[0].Title)
}

func TestFilterPriority(t *testing.T) {
	high := task("urgent", model.StatusTodo)
	high.Priority = model.PriorityHigh
	low := task("later", model.StatusTodo)
	low.Priority = model.PriorityLow
	tasks := []model.Task{high, low}

	assert.Len(t, Apply(tasks, Filter{Priority: "high"}), 1)
	assert.Len(t, Apply(tasks, Filter{Priority: FilterAll}), 2)
	assert.Len(t, Apply(tasks, Filter{}), 2)
}

func TestFilterCategory(t *testing.T) {
	tasks := []model.Task{
		withCategory(task("work thing", model.StatusTodo), "cat-work"),
		task("loose end", model.StatusTodo),
	}

	got := Apply(tasks, Filter{Category: "cat-work"})
	require.Len(t, got, 1)
	assert.Equal(t, "work thing", got[0].Title)

	got = Apply(tasks, Filter{Category: FilterNone})
	require.Len(t, got, 1)
	assert.Equal(t, "loose end", got[0].Title)

	assert.Len(t, Apply(tasks, Filter{Category: FilterAll}), 2)
}

func TestApplySortsByDueDate(t *testing.T) {
	later := dueIn(task("later", model.StatusTodo), 5)
	soon := dueIn(task("soon", model.StatusTodo), 1)
	undated := task("undated", model.StatusTodo)

	got := Apply([]model.Task{undated, later, soon}, Filter{})
	require.Len(t, got, 3)
	assert.Equal(t, "soon", got[0].Title)
	assert.Equal(t, "later", got[1].Title)
	assert.Equal(t, "undated", got[2].Title)
}

func TestGroupByStatus(t *testing.T) {
	tasks := []model.Task{
		task("a", model.StatusTodo),
		task("b", model.StatusTodo),
		task("c", model.StatusCompleted),
	}

	buckets := Build(tasks, nil, Filter{}, ModeStatus, testNow)
	require.Len(t, buckets, 3)
	assert.Equal(t, map[string]int{
		"todo":        2,
		"in-progress": 0,
		"completed":   1,
	}, bucketSizes(buckets))
}

func TestGroupByCategory(t *testing.T) {
	categories := []model.Category{
		{ID: "cat-work", Name: "Work", Color: "#ff0000"},
		{ID: "cat-home", Name: "Home", Color: "#00ff00"},
	}
	tasks := []model.Task{
		withCategory(task("standup", model.StatusTodo), "cat-work"),
		task("loose end", model.StatusTodo),
		withCategory(task("orphan", model.StatusTodo), "cat-deleted"),
	}

	buckets := Build(tasks, categories, Filter{}, ModeCategory, testNow)
	require.Len(t, buckets, 3)

	// Empty buckets stay present; dangling references land in
	// uncategorized.
	assert.Equal(t, map[string]int{
		"cat-work":    1,
		"cat-home":    0,
		Uncategorized: 2,
	}, bucketSizes(buckets))
	assert.Equal(t, "#ff0000", buckets[0].Color)
}

func TestGroupByDate(t *testing.T) {
	tasks := []model.Task{
		dueIn(task("yesterday", model.StatusTodo), -1),
		dueIn(task("this morning", model.StatusTodo), 0),
		dueIn(task("tomorrow", model.StatusTodo), 1),
		dueIn(task("next week", model.StatusTodo), 7),
		task("someday", model.StatusTodo),
	}

	buckets := Build(tasks, nil, Filter{}, ModeDate, testNow)
	require.Len(t, buckets, 5)
	assert.Equal(t, map[string]int{
		BucketOverdue:  1,
		BucketToday:    1,
		BucketTomorrow: 1,
		BucketUpcoming: 1,
		BucketNoDate:   1,
	}, bucketSizes(buckets))
}

func TestGroupByDate_CompletedIsNotOverdue(t *testing.T) {
	open := dueIn(task("missed", model.StatusTodo), -1)
	done := dueIn(task("handled", model.StatusCompleted), -1)

	buckets := Build([]model.Task{open, done}, nil, Filter{}, ModeDate, testNow)
	sizes := bucketSizes(buckets)
	assert.Equal(t, 1, sizes[BucketOverdue])

	// The completed task is past its date and stays out of every bucket.
	total := 0
	for _, n := range sizes {
		total += n
	}
	assert.Equal(t, 1, total)
}

func TestGroupByDate_DayBoundary(t *testing.T) {
	// Due late yesterday evening: still overdue even though less than
	// 24h have passed.
	lateYesterday := testNow.Add(-16 * time.Hour)
	tsk := task("late", model.StatusTodo)
	tsk.DueDate = &lateYesterday

	buckets := Build([]model.Task{tsk}, nil, Filter{}, ModeDate, testNow)
	assert.Equal(t, 1, bucketSizes(buckets)[BucketOverdue])
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]Mode{
		"status":   ModeStatus,
		"board":    ModeStatus,
		"category": ModeCategory,
		"date":     ModeDate,
		"calendar": ModeDate,
	} {
		got, err := ParseMode(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseMode("kanban-ish")
	assert.Error(t, err)
}

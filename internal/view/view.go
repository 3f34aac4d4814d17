package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"taskboard/internal/model"
)

// Mode selects how the filtered task list is grouped for display.
type Mode int

const (
	ModeStatus Mode = iota
	ModeCategory
	ModeDate
)

func (m Mode) String() string {
	switch m {
	case ModeCategory:
		return "category"
	case ModeDate:
		return "date"
	default:
		return "status"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "status", "board":
		return ModeStatus, nil
	case "category":
		return ModeCategory, nil
	case "date", "calendar":
		return ModeDate, nil
	default:
		return ModeStatus, fmt.Errorf("unknown view mode %q, expected status, category or date", s)
	}
}

// Sentinel values for the priority and category filters.
const (
	FilterAll  = "all"
	FilterNone = "none"
)

// Filter narrows the task list before grouping. Zero values mean "no
// restriction".
type Filter struct {
	Search   string `json:"search,omitempty"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
}

// Match reports whether the task passes every predicate. Text matches
// case-insensitively against title or description.
func (f Filter) Match(t model.Task) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}

	if f.Priority != "" && f.Priority != FilterAll && string(t.Priority) != f.Priority {
		return false
	}

	switch f.Category {
	case "", FilterAll:
	case FilterNone:
		if t.CategoryID != nil {
			return false
		}
	default:
		if t.CategoryID == nil || *t.CategoryID != f.Category {
			return false
		}
	}

	return true
}

// Apply filters the collection and orders it by due date (earliest
// first, undated last, newest created breaking ties).
func Apply(tasks []model.Task, f Filter) []model.Task {
	var filtered []model.Task
	for _, t := range tasks {
		if f.Match(t) {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch {
		case filtered[i].DueDate == nil && filtered[j].DueDate == nil:
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		case filtered[i].DueDate == nil:
			return false
		case filtered[j].DueDate == nil:
			return true
		default:
			return filtered[i].DueDate.Before(*filtered[j].DueDate)
		}
	})

	return filtered
}

// Bucket is a named subset of tasks produced for display.
type Bucket struct {
	Key   string
	Title string
	Color string
	Tasks []model.Task
}

// Date bucket keys.
const (
	BucketOverdue  = "overdue"
	BucketToday    = "today"
	BucketTomorrow = "tomorrow"
	BucketUpcoming = "upcoming"
	BucketNoDate   = "no-date"
)

// Uncategorized is the bucket key for tasks without a (live) category.
const Uncategorized = "uncategorized"

// Build filters the collection and partitions it per the view mode.
// now anchors the day boundaries of the date view.
func Build(tasks []model.Task, categories []model.Category, f Filter, mode Mode, now time.Time) []Bucket {
	filtered := Apply(tasks, f)
	switch mode {
	case ModeCategory:
		return groupByCategory(filtered, categories)
	case ModeDate:
		return groupByDate(filtered, now)
	default:
		return groupByStatus(filtered)
	}
}

func groupByStatus(tasks []model.Task) []Bucket {
	titles := map[model.Status]string{
		model.StatusTodo:       "To Do",
		model.StatusInProgress: "In Progress",
		model.StatusCompleted:  "Completed",
	}

	var buckets []Bucket
	for _, status := range model.Statuses() {
		bucket := Bucket{Key: string(status), Title: titles[status]}
		for _, t := range tasks {
			if t.Status == status {
				bucket.Tasks = append(bucket.Tasks, t)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// groupByCategory emits one bucket per existing category plus an
// uncategorized bucket, all present even when empty. Tasks whose
// reference dangles land in uncategorized.
func groupByCategory(tasks []model.Task, categories []model.Category) []Bucket {
	byID := make(map[string]int, len(categories))
	buckets := make([]Bucket, 0, len(categories)+1)
	for _, cat := range categories {
		byID[cat.ID] = len(buckets)
		buckets = append(buckets, Bucket{Key: cat.ID, Title: cat.Name, Color: cat.Color})
	}

	uncategorized := Bucket{Key: Uncategorized, Title: "Uncategorized"}
	for _, t := range tasks {
		if t.CategoryID != nil {
			if idx, ok := byID[*t.CategoryID]; ok {
				buckets[idx].Tasks = append(buckets[idx].Tasks, t)
				continue
			}
		}
		uncategorized.Tasks = append(uncategorized.Tasks, t)
	}

	return append(buckets, uncategorized)
}

// groupByDate partitions on day-truncated due dates. Completed tasks
// whose date has passed stay out of the agenda.
func groupByDate(tasks []model.Task, now time.Time) []Bucket {
	loc := now.Location()
	today := dayOf(now, loc)
	tomorrow := today.AddDate(0, 0, 1)

	buckets := []Bucket{
		{Key: BucketOverdue, Title: "Overdue"},
		{Key: BucketToday, Title: "Today"},
		{Key: BucketTomorrow, Title: "Tomorrow"},
		{Key: BucketUpcoming, Title: "Upcoming"},
		{Key: BucketNoDate, Title: "No Due Date"},
	}
	byKey := make(map[string]int, len(buckets))
	for i, b := range buckets {
		byKey[b.Key] = i
	}

	for _, t := range tasks {
		key, ok := dateBucket(t, today, tomorrow, loc)
		if !ok {
			continue
		}
		idx := byKey[key]
		buckets[idx].Tasks = append(buckets[idx].Tasks, t)
	}

	return buckets
}

func dateBucket(t model.Task, today, tomorrow time.Time, loc *time.Location) (string, bool) {
	if t.DueDate == nil {
		return BucketNoDate, true
	}

	due := dayOf(*t.DueDate, loc)
	switch {
	case due.Before(today):
		if t.Status == model.StatusCompleted {
			return "", false
		}
		return BucketOverdue, true
	case due.Equal(today):
		return BucketToday, true
	case due.Equal(tomorrow):
		return BucketTomorrow, true
	default:
		return BucketUpcoming, true
	}
}

// dayOf truncates a timestamp to its date component in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

package service

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/state"
	"taskboard/internal/view"
)

// Agenda builds human-readable day summaries for the remind loop.
type Agenda struct {
	state *state.Container
}

func NewAgenda(c *state.Container) *Agenda {
	return &Agenda{state: c}
}

// Summary renders the open tasks of the day grouped by due-date bucket.
func (a *Agenda) Summary(now time.Time) string {
	catNames := make(map[string]string)
	for _, cat := range a.state.Categories() {
		catNames[cat.ID] = cat.Name
	}

	var open []model.Task
	for _, t := range a.state.Tasks() {
		if t.Status != model.StatusCompleted {
			open = append(open, t)
		}
	}

	buckets := view.Build(open, a.state.Categories(), view.Filter{}, view.ModeDate, now)

	var builder strings.Builder
	builder.WriteString("📋 Daily agenda\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n", now.Format("Mon, 02 Jan 2006")))

	total := 0
	for _, bucket := range buckets {
		if len(bucket.Tasks) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("\n%s %s\n", bucketIcon(bucket.Key), bucket.Title))
		for _, t := range bucket.Tasks {
			builder.WriteString(formatTask(t, catNames, now))
			total++
		}
	}

	if total == 0 {
		builder.WriteString("\n— nothing open, enjoy the day\n")
	}

	return strings.TrimSpace(builder.String())
}

func bucketIcon(key string) string {
	switch key {
	case view.BucketOverdue:
		return "⚠️"
	case view.BucketToday:
		return "🔥"
	case view.BucketTomorrow:
		return "⏳"
	case view.BucketUpcoming:
		return "📆"
	default:
		return "📝"
	}
}

func formatTask(t model.Task, catNames map[string]string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s", priorityMark(t.Priority), strings.TrimSpace(t.Title)))

	if t.CategoryID != nil {
		if name, ok := catNames[*t.CategoryID]; ok && strings.TrimSpace(name) != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", strings.TrimSpace(name)))
		}
	}

	if t.DueDate != nil {
		d := t.DueDate.In(now.Location())
		if now.After(d) {
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s — overdue", d.Format("2006-01-02")))
		} else {
			daysLeft := int(d.Sub(now).Hours()/24) + 1
			sb.WriteString(fmt.Sprintf("\n   ⏰ due %s · ≈%d day(s) left", d.Format("2006-01-02"), daysLeft))
		}
	}

	if t.Description != "" {
		sb.WriteString(fmt.Sprintf("\n   📝 %s", strings.TrimSpace(t.Description)))
	}

	sb.WriteByte('\n')
	return sb.String()
}

func priorityMark(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityLow:
		return "🟢"
	default:
		return "🟡"
	}
}

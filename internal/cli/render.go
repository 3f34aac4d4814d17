package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"taskboard/internal/model"
	"taskboard/internal/view"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	countStyle   = lipgloss.NewStyle().Faint(true)
	metaStyle    = lipgloss.NewStyle().Faint(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	columnStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func priorityIcon(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityLow:
		return "🟢"
	case model.PriorityMedium:
		return "🟡"
	default:
		return "⚪"
	}
}

func statusIcon(s model.Status) string {
	switch s {
	case model.StatusTodo:
		return "📋"
	case model.StatusInProgress:
		return "🚀"
	case model.StatusCompleted:
		return "✅"
	default:
		return "❓"
	}
}

// terminalWidth reports the stdout width, falling back to 80 columns.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func truncate(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// shortIDs maps every task ID to its shortest unique 8+ character
// prefix for display.
func shortIDs(tasks []model.Task) map[string]string {
	unique := make(map[string]string)
	used := make(map[string][]string)

	for _, t := range tasks {
		short := t.ID
		if len(short) > 8 {
			short = short[:8]
		}
		used[short] = append(used[short], t.ID)
	}

	for short, fullIDs := range used {
		if len(fullIDs) == 1 {
			unique[fullIDs[0]] = short
			continue
		}
		for _, fullID := range fullIDs {
			length := 8
			for length < len(fullID) {
				candidate := fullID[:length]
				collides := false
				for _, other := range fullIDs {
					if other != fullID && len(other) > length && other[:length] == candidate {
						collides = true
						break
					}
				}
				if !collides {
					break
				}
				length++
			}
			unique[fullID] = fullID[:length]
		}
	}

	return unique
}

func bucketHeader(b view.Bucket) string {
	style := headerStyle
	if b.Color != "" {
		style = style.Foreground(lipgloss.Color(b.Color))
	}
	return fmt.Sprintf("%s %s",
		style.Render(b.Title),
		countStyle.Render(fmt.Sprintf("(%d)", len(b.Tasks))))
}

// taskLine renders a one-line card for list and section views.
func taskLine(t model.Task, ids map[string]string, catNames map[string]string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s %s %s",
		priorityIcon(t.Priority), statusIcon(t.Status), ids[t.ID], t.Title))

	var meta []string
	if t.DueDate != nil {
		due := t.DueDate.In(now.Location()).Format("2006-01-02")
		if t.Status != model.StatusCompleted && t.DueDate.Before(now) {
			meta = append(meta, overdueStyle.Render("due "+due))
		} else {
			meta = append(meta, "due "+due)
		}
	}
	if t.CategoryID != nil {
		if name, ok := catNames[*t.CategoryID]; ok {
			meta = append(meta, name)
		} else {
			meta = append(meta, "uncategorized")
		}
	}
	if len(meta) > 0 {
		sb.WriteString(metaStyle.Render("  · " + strings.Join(meta, " · ")))
	}

	return sb.String()
}

// renderSections prints buckets vertically, one section per bucket.
func renderSections(buckets []view.Bucket, catNames map[string]string, now time.Time) string {
	var all []model.Task
	for _, b := range buckets {
		all = append(all, b.Tasks...)
	}
	ids := shortIDs(all)

	var sb strings.Builder
	for i, b := range buckets {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(bucketHeader(b))
		sb.WriteByte('\n')
		if len(b.Tasks) == 0 {
			sb.WriteString(metaStyle.Render("  — empty"))
			sb.WriteByte('\n')
			continue
		}
		for _, t := range b.Tasks {
			sb.WriteString("  " + taskLine(t, ids, catNames, now) + "\n")
		}
	}
	return sb.String()
}

// renderBoard prints status buckets as side-by-side columns sized to
// the terminal.
func renderBoard(buckets []view.Bucket, now time.Time) string {
	var all []model.Task
	for _, b := range buckets {
		all = append(all, b.Tasks...)
	}
	ids := shortIDs(all)

	colWidth := (terminalWidth() - 3*4) / 3
	if colWidth < 20 {
		colWidth = 20
	}

	columns := make([]string, 0, len(buckets))
	for _, b := range buckets {
		var sb strings.Builder
		sb.WriteString(bucketHeader(b))
		sb.WriteByte('\n')
		for _, t := range b.Tasks {
			line := fmt.Sprintf("%s %s %s",
				priorityIcon(t.Priority), ids[t.ID], truncate(t.Title, colWidth-14))
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if len(b.Tasks) == 0 {
			sb.WriteString(metaStyle.Render("—"))
			sb.WriteByte('\n')
		}
		columns = append(columns, columnStyle.Width(colWidth).Render(sb.String()))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	summary := make([]string, 0, len(buckets))
	for _, b := range buckets {
		summary = append(summary, fmt.Sprintf("%d %s", len(b.Tasks), b.Title))
	}

	return board + "\n" + metaStyle.Render(strings.Join(summary, " · ")) + "\n"
}

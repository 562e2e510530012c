package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daily-planner-api/internal/models"
)

// Planner CLI styles.

const (
	IconPlan   = "🗓️"
	IconPlus   = "➕"
	IconDone   = "✅"
	IconTrophy = "🏆"
	IconFire   = "🔥"
	IconTheme  = "🎨"
	IconLock   = "🔒"
	IconWarn   = "⚠️"
	IconError  = "🧨"
	IconBox    = "📦"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PriorityText colours a priority label.
func PriorityText(p models.Priority) string {
	switch strings.ToLower(string(p)) {
	case "high":
		return Bad.Render(string(p))
	case "medium":
		return Warn.Render(string(p))
	default:
		return Good.Render(string(p))
	}
}

// TaskLine renders one task as a single list row.
func TaskLine(t models.Task) string {
	box := "[ ]"
	title := t.Title
	if t.Completed {
		box = Good.Render("[x]")
		title = Muted.Render(title)
	}
	line := fmt.Sprintf("%s %s %s %s", box, title, PriorityText(t.Priority), Muted.Render(t.ID))
	if t.EstimatedTime != "" {
		line += " " + Muted.Render("~"+t.EstimatedTime)
	}
	return line
}

// NotificationText renders a reward or unlock notification.
func NotificationText(n models.Notification) string {
	switch n.Kind {
	case models.KindTheme:
		text := Gold.Render(IconTheme + " " + n.Title)
		if n.Subtitle != "" {
			text += " " + Muted.Render(n.Subtitle)
		}
		return text
	default:
		return Gold.Render(fmt.Sprintf("%s +%d points", IconTrophy, n.Points)) + " " + Muted.Render(n.Title)
	}
}

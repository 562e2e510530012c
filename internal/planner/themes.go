package planner

import (
	"fmt"
	"time"

	"daily-planner-api/internal/models"
)

var catalog = []models.Theme{
	{ID: models.ThemeDark, Name: "Dark", Group: models.GroupBase, Description: "Calm dark glass UI."},
	{ID: models.ThemeLight, Name: "Light", Group: models.GroupBase, Description: "Clean bright UI."},
	{ID: "dracula", Name: "Dracula Dev", Group: models.GroupCoder, Description: "High-contrast purple for coders.", Require: &models.Requirement{Points: 120}},
	{ID: "nord", Name: "Nord Dev", Group: models.GroupCoder, Description: "Cool nordic blues, low eye strain.", Require: &models.Requirement{Points: 220}},
	{ID: "monokai", Name: "Monokai Dev", Group: models.GroupCoder, Description: "Warm neon accents, terminal vibes.", Require: &models.Requirement{Points: 320}},
	{ID: "kawaii", Name: "Kawaii Fun", Group: models.GroupFun, Description: "Pastel playful theme.", Require: &models.Requirement{Streak: 7}},
	{ID: "pixel", Name: "Pixel Fun", Group: models.GroupFun, Description: "Candy colors and retro energy.", Require: &models.Requirement{Streak: 14}},
}

// ThemeCatalog returns a copy of the static theme catalog in display order.
func ThemeCatalog() []models.Theme {
	out := make([]models.Theme, len(catalog))
	copy(out, catalog)
	return out
}

// LookupTheme finds a catalog entry by id.
func LookupTheme(id string) (models.Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return models.Theme{}, false
}

// IsThemeID reports whether id names a catalog theme.
func IsThemeID(id string) bool {
	_, ok := LookupTheme(id)
	return ok
}

// ThemeLabel returns the display name of a theme id, or "Theme" when unknown.
func ThemeLabel(id string) string {
	if t, ok := LookupTheme(id); ok {
		return t.Name
	}
	return "Theme"
}

// Eligible reports whether stats satisfy the requirement of theme. Themes without
// a requirement are always eligible.
func Eligible(theme models.Theme, stats models.Stats) bool {
	if theme.Require == nil {
		return true
	}
	if theme.Require.Points > 0 && stats.TotalPoints < theme.Require.Points {
		return false
	}
	if theme.Require.Streak > 0 && stats.Streak < theme.Require.Streak {
		return false
	}
	return true
}

// UnlockEligibleThemes adds every eligible, not yet unlocked catalog theme to the unlocked set and
// emits one theme notification per addition, in catalog order. Unlocks are never revoked.
func UnlockEligibleThemes(stats models.Stats, now time.Time) (models.Stats, []models.Notification) {
	next := stats
	next.UnlockedThemes = append([]string(nil), stats.UnlockedThemes...)

	var events []models.Notification
	for _, theme := range catalog {
		if theme.Require == nil || next.HasTheme(theme.ID) || !Eligible(theme, next) {
			continue
		}
		next.UnlockedThemes = append(next.UnlockedThemes, theme.ID)
		events = append(events, models.Notification{
			ID:       now.UnixNano() + int64(len(events)),
			Kind:     models.KindTheme,
			Title:    "Theme unlocked: " + theme.Name,
			Subtitle: "Open Themes to apply it.",
		})
	}
	return next, events
}

// RequirementText renders the unlock condition of a theme for display.
func RequirementText(theme models.Theme) string {
	switch {
	case theme.Require == nil:
		return "Unlocked"
	case theme.Require.Points > 0:
		return fmt.Sprintf("Unlock: %d points", theme.Require.Points)
	case theme.Require.Streak > 0:
		return fmt.Sprintf("Unlock: %d-day streak", theme.Require.Streak)
	default:
		return "Unlocked"
	}
}

// ThemeStatus is one catalog entry as seen by an identity.
type ThemeStatus struct {
	Theme       models.Theme `json:"theme"`
	Unlocked    bool         `json:"unlocked"`
	Requirement string       `json:"requirement"`
	Active      bool         `json:"active"`
}

// ThemeStatuses lists the catalog with unlock state for stats and marks the active theme.
func ThemeStatuses(stats models.Stats, active string) []ThemeStatus {
	out := make([]ThemeStatus, 0, len(catalog))
	for _, theme := range catalog {
		unlocked := stats.HasTheme(theme.ID)
		text := RequirementText(theme)
		if unlocked {
			text = "Unlocked"
		}
		out = append(out, ThemeStatus{
			Theme:       theme,
			Unlocked:    unlocked,
			Requirement: text,
			Active:      theme.ID == active,
		})
	}
	return out
}

// ResolveTheme returns the theme to display: active when it is unlocked, otherwise dark.
// changed reports whether a fallback happened.
func ResolveTheme(active string, stats models.Stats) (string, bool) {
	if active != "" && stats.HasTheme(active) {
		return active, false
	}
	return models.ThemeDark, active != models.ThemeDark
}

// CanApplyTheme checks a user's theme choice against the catalog and the unlocked set.
func CanApplyTheme(id string, stats models.Stats) error {
	if !IsThemeID(id) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	if !stats.HasTheme(id) {
		return fmt.Errorf("%w: %s", ErrThemeLocked, id)
	}
	return nil
}

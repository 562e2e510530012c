package models

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// BaseThemes are unlocked for every identity.
var BaseThemes = []string{ThemeLight, ThemeDark}

// Stats holds the per-identity points and streak bookkeeping.
type Stats struct {
	TotalPoints        int      `json:"totalPoints"`
	Streak             int      `json:"streak"`
	LastCompletionDate *string  `json:"lastCompletionDate"`
	UnlockedThemes     []string `json:"unlockedThemes"`
}

// DefaultStats returns the stats of an identity with no history.
func DefaultStats() Stats {
	return Stats{
		UnlockedThemes: append([]string(nil), BaseThemes...),
	}
}

// HasTheme reports whether id is in the unlocked set.
func (s Stats) HasTheme(id string) bool {
	for _, t := range s.UnlockedThemes {
		if t == id {
			return true
		}
	}
	return false
}

// ThemeGroup groups catalog themes for display
type ThemeGroup string

const (
	GroupBase  ThemeGroup = "Base"
	GroupCoder ThemeGroup = "Coder"
	GroupFun   ThemeGroup = "Fun"
)

// Requirement is an unlock threshold. A zero field is not checked.
type Requirement struct {
	Points int `json:"points,omitempty"`
	Streak int `json:"streak,omitempty"`
}

// Theme is a static catalog entry.
type Theme struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Group       ThemeGroup   `json:"group"`
	Description string       `json:"description"`
	Require     *Requirement `json:"require"`
}

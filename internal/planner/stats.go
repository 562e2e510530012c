package planner

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"daily-planner-api/internal/models"
)

const dateLayout = "2006-01-02"

// DateKey formats the local calendar date of t.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// IsYesterday reports whether candidate is exactly the calendar day before today,
// in today's location.
func IsYesterday(candidate string, today time.Time) bool {
	if candidate == "" {
		return false
	}
	c, err := time.ParseInLocation(dateLayout, candidate, today.Location())
	if err != nil {
		return false
	}
	y, m, d := today.AddDate(0, 0, -1).Date()
	cy, cm, cd := c.Date()
	return y == cy && m == cm && d == cd
}

// LoadStats decodes stored stats. Malformed or absent content yields defaults. The base themes
// are always present in the result and a streak whose last completion is neither today nor
// yesterday is reset to zero.
func LoadStats(raw string, present bool, now time.Time) models.Stats {
	if !present || raw == "" {
		return models.DefaultStats()
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed == nil {
		return models.DefaultStats()
	}

	stats := models.DefaultStats()
	stats.TotalPoints = looseInt(parsed["totalPoints"])
	stats.Streak = looseInt(parsed["streak"])
	if last, ok := parsed["lastCompletionDate"].(string); ok && last != "" {
		stats.LastCompletionDate = &last
	}
	if list, ok := parsed["unlockedThemes"].([]any); ok {
		themes := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := v.(string); ok {
				themes = append(themes, s)
			}
		}
		stats.UnlockedThemes = themes
	}

	stats = NormalizeStats(stats)
	return DecayStreak(stats, now)
}

// NormalizeStats guarantees the base themes and drops duplicate theme ids, keeping first-seen order.
func NormalizeStats(stats models.Stats) models.Stats {
	seen := make(map[string]bool, len(stats.UnlockedThemes)+len(models.BaseThemes))
	themes := make([]string, 0, len(stats.UnlockedThemes)+len(models.BaseThemes))
	for _, id := range append(append([]string(nil), stats.UnlockedThemes...), models.BaseThemes...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		themes = append(themes, id)
	}
	stats.UnlockedThemes = themes
	return stats
}

// DecayStreak resets the streak when the last counted completion is older than yesterday.
// Points and themes are untouched.
func DecayStreak(stats models.Stats, now time.Time) models.Stats {
	if stats.LastCompletionDate == nil {
		return stats
	}
	last := *stats.LastCompletionDate
	if last != DateKey(now) && !IsYesterday(last, now) {
		stats.Streak = 0
	}
	return stats
}

// AwardCompletion credits a first-time completion.
func AwardCompletion(stats models.Stats, points int, now time.Time) models.Stats {
	today := DateKey(now)
	next := stats
	next.UnlockedThemes = append([]string(nil), stats.UnlockedThemes...)

	switch {
	case stats.LastCompletionDate != nil && *stats.LastCompletionDate == today:
		// already counted today
	case stats.LastCompletionDate != nil && IsYesterday(*stats.LastCompletionDate, now):
		next.Streak = stats.Streak + 1
	default:
		next.Streak = 1
	}

	next.TotalPoints = stats.TotalPoints + points
	next.LastCompletionDate = &today
	return next
}

// EncodeStats serialises stats for storage.
func EncodeStats(stats models.Stats) (string, error) {
	stats = NormalizeStats(stats)
	data, err := json.Marshal(stats)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func looseInt(v any) int {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return int(f)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

package app

import (
	"context"

	"daily-planner-api/internal/planner"
)

// Themes lists the catalog as seen by the active identity.
func (a *App) Themes() ([]planner.ThemeStatus, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return nil, err
	}
	return planner.ThemeStatuses(a.state.Stats, a.state.Theme), nil
}

// ApplyTheme activates an unlocked catalog theme.
func (a *App) ApplyTheme(ctx context.Context, themeID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return err
	}
	if err := planner.CanApplyTheme(themeID, a.state.Stats); err != nil {
		return err
	}
	a.state.Theme = themeID
	a.set(ctx, a.keys.Theme(), themeID)
	return nil
}

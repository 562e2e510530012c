// Package app owns the planner's application state. Each operation validates its input, computes
// the next state with the pure rules in internal/planner, persists it and hands the resulting
// notifications to the caller and to the configured Notifier.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"daily-planner-api/internal/models"
	"daily-planner-api/internal/planner"
	"daily-planner-api/internal/storage"
)

// State is the complete application state of one process.
type State struct {
	Identity *models.Identity `json:"identity"`
	Tasks    []models.Task    `json:"tasks"`
	Stats    models.Stats     `json:"stats"`
	Theme    string           `json:"theme"`
}

// Notifier receives every notification produced for an identity.
type Notifier interface {
	Notify(identity models.Identity, n models.Notification)
}

// App serialises all transitions behind one mutex.
type App struct {
	mu       sync.Mutex
	store    storage.Store
	keys     storage.Keys
	notifier Notifier
	now      func() time.Time
	log      *slog.Logger
	state    State
}

// Option configures an App.
type Option func(*App)

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func WithNotifier(n Notifier) Option {
	return func(a *App) { a.notifier = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

func WithKeys(k storage.Keys) Option {
	return func(a *App) { a.keys = k }
}

// New builds an App with no identity. Call Restore to load the persisted session.
func New(store storage.Store, opts ...Option) *App {
	a := &App{
		store: store,
		keys:  storage.NewKeys(""),
		now:   time.Now,
		log:   slog.Default(),
		state: State{
			Tasks: []models.Task{},
			Stats: models.DefaultStats(),
			Theme: models.ThemeDark,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Restore loads the active identity and theme, then the identity's tasks and stats.
func (a *App) Restore(ctx context.Context) State {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Theme = a.loadTheme(ctx)
	a.state.Identity = a.loadIdentity(ctx)
	if a.state.Identity != nil {
		a.loadIdentityData(ctx, *a.state.Identity)
		a.enforceTheme(ctx)
	}
	return a.snapshot()
}

// Snapshot returns a copy of the current state with the streak decay applied for today.
func (a *App) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

func (a *App) snapshot() State {
	s := State{
		Tasks: append([]models.Task{}, a.state.Tasks...),
		Stats: planner.DecayStreak(a.state.Stats, a.now()),
		Theme: a.state.Theme,
	}
	s.Stats.UnlockedThemes = append([]string(nil), a.state.Stats.UnlockedThemes...)
	if a.state.Identity != nil {
		id := *a.state.Identity
		s.Identity = &id
	}
	return s
}

// Identity returns the active identity.
func (a *App) Identity() (models.Identity, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state.Identity == nil {
		return models.Identity{}, false
	}
	return *a.state.Identity, true
}

// Login validates and activates an identity and loads its data.
func (a *App) Login(ctx context.Context, name, email string) (State, error) {
	id, err := planner.ValidateIdentity(name, email)
	if err != nil {
		return State{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Identity = &id
	a.saveIdentity(ctx, id)
	a.loadIdentityData(ctx, id)
	a.enforceTheme(ctx)

	a.log.Info("login", "email", id.Email)
	return a.snapshot(), nil
}

// Logout clears the active identity after confirmation. Per-identity data stays in storage.
func (a *App) Logout(ctx context.Context, c Confirmer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state.Identity == nil {
		return ErrNoSession
	}
	if err := confirm(c, logoutPrompt); err != nil {
		return err
	}

	email := a.state.Identity.Email
	a.remove(ctx, a.keys.User())
	a.state.Identity = nil
	a.state.Tasks = []models.Task{}
	a.state.Stats = models.DefaultStats()

	a.log.Info("logout", "email", email)
	return nil
}

func (a *App) requireSession() (models.Identity, error) {
	if a.state.Identity == nil {
		return models.Identity{}, ErrNoSession
	}
	return *a.state.Identity, nil
}

func (a *App) loadIdentity(ctx context.Context) *models.Identity {
	raw, ok := a.get(ctx, a.keys.User())
	if !ok || raw == "" {
		return nil
	}
	var id models.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil || id.Email == "" {
		return nil
	}
	return &id
}

func (a *App) saveIdentity(ctx context.Context, id models.Identity) {
	data, err := json.Marshal(id)
	if err != nil {
		a.log.Warn("encode identity", "error", err)
		return
	}
	a.set(ctx, a.keys.User(), string(data))
}

func (a *App) loadIdentityData(ctx context.Context, id models.Identity) {
	raw, _ := a.get(ctx, a.keys.Tasks(id.Email))
	a.state.Tasks = planner.DecodeTasks(raw)

	raw, ok := a.get(ctx, a.keys.Stats(id.Email))
	a.state.Stats = planner.LoadStats(raw, ok, a.now())
}

func (a *App) loadTheme(ctx context.Context) string {
	if raw, ok := a.get(ctx, a.keys.Theme()); ok && planner.IsThemeID(raw) {
		return raw
	}
	if raw, ok := a.get(ctx, a.keys.LegacyTheme()); ok && (raw == models.ThemeLight || raw == models.ThemeDark) {
		return raw
	}
	return models.ThemeDark
}

// enforceTheme falls back to dark when the active theme is not unlocked for the identity.
func (a *App) enforceTheme(ctx context.Context) {
	if a.state.Identity == nil {
		return
	}
	theme, changed := planner.ResolveTheme(a.state.Theme, a.state.Stats)
	if !changed {
		return
	}
	a.log.Debug("theme fallback", "from", a.state.Theme, "to", theme)
	a.state.Theme = theme
	a.set(ctx, a.keys.Theme(), theme)
}

func (a *App) persistTasks(ctx context.Context, id models.Identity) {
	raw, err := planner.EncodeTasks(a.state.Tasks)
	if err != nil {
		a.log.Warn("encode tasks", "error", err)
		return
	}
	a.set(ctx, a.keys.Tasks(id.Email), raw)
}

func (a *App) persistStats(ctx context.Context, id models.Identity) {
	raw, err := planner.EncodeStats(a.state.Stats)
	if err != nil {
		a.log.Warn("encode stats", "error", err)
		return
	}
	a.set(ctx, a.keys.Stats(id.Email), raw)
}

// Storage failures never surface to the caller; the in-memory state stays authoritative.

func (a *App) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := a.store.Get(ctx, key)
	if err != nil {
		a.log.Warn("storage read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (a *App) set(ctx context.Context, key, value string) {
	if err := a.store.Set(ctx, key, value); err != nil {
		a.log.Warn("storage write failed", "key", key, "error", err)
	}
}

func (a *App) remove(ctx context.Context, key string) {
	if err := a.store.Remove(ctx, key); err != nil {
		a.log.Warn("storage remove failed", "key", key, "error", err)
	}
}

// notify must be called without a.mu held; notifiers may block on network writes.
func (a *App) notify(id models.Identity, events []models.Notification) {
	if a.notifier == nil {
		return
	}
	for _, n := range events {
		a.notifier.Notify(id, n)
	}
}

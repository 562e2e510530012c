package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/config"
	"daily-planner-api/internal/database"
	"daily-planner-api/internal/models"
	"daily-planner-api/internal/storage"
)

// openApp opens the configured store and restores the persisted session.
func openApp(ctx context.Context) (*app.App, func(), error) {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if driver != "" {
		cfg.StoreDriver = strings.ToLower(driver)
	}

	// the CLI stays quiet unless something goes wrong
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if cfg.LogLevel == "debug" {
		log = cfg.NewLogger()
	}

	store, closeStore, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StoreDriver,
		DBPath:      cfg.DBPath,
		RedisAddr:   cfg.RedisAddr,
		RedisPrefix: cfg.RedisPrefix,
		LogLevel:    database.LogLevel("silent"),
		Logger:      log,
	})
	if err != nil {
		return nil, nil, err
	}

	a := app.New(store, app.WithKeys(storage.NewKeys(cfg.Namespace)), app.WithLogger(log))
	a.Restore(ctx)

	cleanup := func() {
		if err := closeStore(); err != nil {
			log.Warn("close store", "error", err)
		}
	}
	return a, cleanup, nil
}

// withApp runs fn against an opened app and always releases the store.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, a)
}

// promptConfirmer asks on the command's stdin. Anything but y/yes declines.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newConfirmer(cmd *cobra.Command, yes bool) app.Confirmer {
	if yes {
		return app.Yes
	}
	return &promptConfirmer{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout()}
}

func (p *promptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// explain turns sentinel errors into CLI wording.
func explain(err error) error {
	switch {
	case errors.Is(err, app.ErrNoSession):
		return errors.New("not logged in; run `planner login <name> <email>` first")
	case errors.Is(err, app.ErrNotConfirmed):
		return errors.New("cancelled")
	}
	return err
}

// resolveTaskID accepts a full id or a unique prefix of one.
func resolveTaskID(tasks []models.Task, arg string) (string, error) {
	match := ""
	for _, t := range tasks {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", app.ErrTaskNotFound, arg)
	}
	return match, nil
}

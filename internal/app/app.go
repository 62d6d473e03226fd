package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matchbook-tui/matchbook/internal/config"
	"github.com/matchbook-tui/matchbook/internal/notify"
	"github.com/matchbook-tui/matchbook/internal/persist"
	"github.com/matchbook-tui/matchbook/internal/prefs"
	"github.com/matchbook-tui/matchbook/internal/state"
	"github.com/matchbook-tui/matchbook/internal/storage"
	"github.com/matchbook-tui/matchbook/internal/ui"
)

// Options configure the matchbook application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/matchbook/config.toml
	PrefsPath  string // empty uses default ~/.config/matchbook/prefs.toml
}

// Run boots the matchbook TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	userPrefs := prefs.Load(opts.PrefsPath)

	adapter := storage.NewFileStore(cfg.DataDir, cfg.QuotaBytes)
	store, _ := bootstrap(cfg, adapter)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Resize:    notify.NewResizeThrottle(store, cfg.Throttle()),
		ThemeName: userPrefs.Theme,
		StartView: userPrefs.View,
		PrefsPath: opts.PrefsPath,
	})
}

// bootstrap resolves the initial application state and wires the
// persistence loop to the store. The startup read happens before the
// store exists, so the initial state is fully resolved before any
// action can be dispatched. Reports whether persistence is active.
func bootstrap(cfg config.Config, adapter storage.Adapter) (*state.Store, bool) {
	saver := persist.NewSaver(adapter)

	initial := state.Default()
	if adapter.Probe() {
		initial = saver.Load()
	}
	seedUser(&initial, cfg)

	store := state.New(initial)
	active := notify.Attach(store, adapter, saver)
	return store, active
}

// seedUser fills in the local identity from config on first run.
func seedUser(app *state.App, cfg config.Config) {
	if app.MyUser != (state.User{}) || cfg.UserName == "" {
		return
	}
	app.MyUser = state.User{
		ID:    uuid.NewString(),
		Name:  cfg.UserName,
		Phone: cfg.UserPhone,
	}
}

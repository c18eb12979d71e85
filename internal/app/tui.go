package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/five82/fitjourney/internal/prefs"
	"github.com/five82/fitjourney/internal/state"
	"github.com/five82/fitjourney/internal/ui"
)

// Run boots the TUI until the user quits or the context is cancelled. The
// last snapshot is flushed to disk before Run returns.
func Run(ctx context.Context, opts Options) (err error) {
	e, err := setup(opts, false)
	if err != nil {
		return err
	}
	defer func() { err = e.close(err) }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.WithError(err).Warn("load prefs")
	}

	store := state.New(e.adapter.Load(), state.Options{Saver: e.adapter, Now: opts.Now})
	defer store.Close()

	log.WithField("theme", userPrefs.Theme).Info("starting tui")
	return ui.Run(ui.Options{
		Context:      ctx,
		Store:        store,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    prefsPath,
		QuickPushups: userPrefs.QuickPushups,
	})
}

package app

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/five82/fitjourney/internal/config"
	"github.com/five82/fitjourney/internal/logging"
	"github.com/five82/fitjourney/internal/storage"
)

// Options configure every fitjourney command.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/fitjourney/prefs.toml

	In  io.Reader // confirmation answers; nil uses os.Stdin
	Out io.Writer // command output; nil uses os.Stdout

	Now func() time.Time // nil uses time.Now

	// Ready, when set, receives the proxy address once Serve is listening.
	Ready func(addr string)
}

func (o Options) in() io.Reader {
	if o.In == nil {
		return os.Stdin
	}
	return o.In
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// env is what every command needs: parsed config, a configured logger, and
// the persisted log behind an adapter.
type env struct {
	cfg     config.Config
	adapter *storage.Adapter
	logs    io.Closer
}

func setup(opts Options, logToStdout bool) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logs, err := logging.Setup(logging.Params{
		File:     cfg.LogFile,
		Level:    cfg.LogLevel,
		ToStdout: logToStdout,
		JSON:     cfg.LogFormat == "json",
	})
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	kv, err := storage.NewFileKV(cfg.DataDir, cfg.QuotaBytes)
	if err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("open data dir: %w", err)
	}

	log.WithField("dir", kv.Dir()).Debug("data dir ready")
	return &env{cfg: cfg, adapter: storage.NewAdapter(kv), logs: logs}, nil
}

func (e *env) close(err error) error {
	return multierr.Append(err, e.logs.Close())
}

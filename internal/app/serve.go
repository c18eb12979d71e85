package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/five82/fitjourney/internal/offline"
	"github.com/five82/fitjourney/internal/web"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the offline cache proxy until the context is cancelled. With no
// upstream configured the read-only dashboard is started on a loopback port
// and used as the origin.
func Serve(ctx context.Context, opts Options) (err error) {
	e, err := setup(opts, true)
	if err != nil {
		return err
	}
	defer func() { err = e.close(err) }()

	var servers []*http.Server
	defer func() {
		err = multierr.Append(err, shutdown(servers))
	}()

	upstream := e.cfg.OfflineUpstream
	if upstream == "" {
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		originSrv, addr, err := listen("127.0.0.1:0", web.NewRouter(e.adapter, now))
		if err != nil {
			return fmt.Errorf("start dashboard origin: %w", err)
		}
		servers = append(servers, originSrv)
		upstream = "http://" + addr
		log.Infof("dashboard origin listening on [%s]", addr)
	}

	var cache offline.Storage
	if e.cfg.CacheDir != "" {
		disk, err := offline.NewDiskStorage(e.cfg.CacheDir)
		if err != nil {
			return fmt.Errorf("open cache dir: %w", err)
		}
		cache = disk
	} else {
		cache = offline.NewMemoryStorage(e.cfg.CacheSizeBytes())
	}

	proxy, err := offline.New(offline.Options{Upstream: upstream, Storage: cache})
	if err != nil {
		return fmt.Errorf("create offline proxy: %w", err)
	}
	if err := proxy.Install(ctx); err != nil {
		// Install is all-or-nothing; the proxy still serves live responses.
		log.WithError(err).Warn("install offline cache")
	} else if err := proxy.Activate(); err != nil {
		log.WithError(err).Warn("activate offline cache")
	}

	proxySrv, addr, err := listen(e.cfg.OfflineListen, proxy)
	if err != nil {
		return fmt.Errorf("start offline proxy: %w", err)
	}
	servers = append(servers, proxySrv)
	log.Infof("offline proxy [%s] listening on [%s], upstream [%s]", proxy.Name(), addr, upstream)
	if opts.Ready != nil {
		opts.Ready(addr)
	}

	<-ctx.Done()
	log.Warn("shutting down")
	return nil
}

func listen(addr string, handler http.Handler) (*http.Server, string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", err
	}
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http server stopped")
		}
	}()
	return srv, ln.Addr().String(), nil
}

func shutdown(servers []*http.Server) error {
	if len(servers) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs error
	for i := len(servers) - 1; i >= 0; i-- {
		errs = multierr.Append(errs, servers[i].Shutdown(ctx))
	}
	return errs
}

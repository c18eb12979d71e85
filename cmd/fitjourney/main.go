package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/fitjourney/internal/app"
)

var commands = map[string]func(context.Context, app.Options) error{
	"tui":     app.Run,
	"serve":   app.Serve,
	"demo":    app.Demo,
	"clear":   app.Clear,
	"summary": app.Summary,
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: fitjourney [-config path] [-prefs path] [tui|serve|demo|clear|summary]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	name := "tui"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	cmd, ok := commands[name]
	if !ok || flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath}
	if err := cmd(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fitjourney %s: %v\n", name, err)
		return 1
	}
	return 0
}

// Package main provides the CLI entry point for framepipe-viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"

	"github.com/user/framepipe/pkg/adapters/ebitenview"
	"github.com/user/framepipe/pkg/adapters/ggsplash"
	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/config"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/runner"
	"github.com/user/framepipe/pkg/stream"
)

// CLI defines the viewer command line.
type CLI struct {
	Union bool `short:"U" help:"Copy stdin to stdout (pass-through / tee)."`

	Verbose int              `short:"v" type:"counter" help:"Increase diagnostic detail (repeatable)."`
	Debug   bool             `help:"Enable debug output."`
	License bool             `help:"Show the license and exit."`
	Version kong.VersionFlag `short:"V" help:"Show version information and exit."`
}

func main() {
	// Load environment variables from .env, if present.
	_ = godotenv.Load()

	cli := CLI{}
	kong.Parse(&cli,
		kong.Name("framepipe-viewer"),
		kong.Description(l10n.T("Render each incoming frame record in a window.")),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("framepipe-viewer %s", framepipe.Version)},
		kong.Exit(exitWith),
	)

	if cli.License {
		fmt.Print(framepipe.License)
		return
	}

	if err := cli.Run(); err != nil {
		os.Exit(framepipe.ExitCode(err))
	}
}

// exitWith maps kong's own exits (bad flags, --help) to sysexits.
func exitWith(code int) {
	if code != 0 {
		code = framepipe.ExUsage
	}
	os.Exit(code)
}

// Run executes the viewer. The display loop must own the main
// goroutine, so ingestion runs in the background.
func (cmd *CLI) Run() error {
	log := logger.NewConsole(ports.VerbosityLevel(cmd.Verbose, cmd.Debug))

	cfg, err := config.Load()
	if err != nil {
		log.Error("%s", err)
		return framepipe.Wrap(framepipe.CategoryUsage, "loading configuration", err)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	display := ebitenview.New(cfg.WindowTitle, ggsplash.Render(ggsplash.DefaultWidth, ggsplash.DefaultHeight))
	union := stream.NewUnionWriter(os.Stdout, cmd.Union)

	v := runner.NewViewer(display, union, log)
	if err := v.Run(ctx, os.Stdin); err != nil {
		log.Error("%s", err)
		return framepipe.Wrap(framepipe.CategoryInternal, "viewer failed", err)
	}
	return nil
}

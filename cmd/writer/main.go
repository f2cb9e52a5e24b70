// Package main provides the CLI entry point for framepipe-writer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"

	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/osfilesystem"
	"github.com/user/framepipe/pkg/adapters/stdcodec"
	"github.com/user/framepipe/pkg/config"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/runner"
	"github.com/user/framepipe/pkg/stream"
)

// CLI defines the writer command line.
type CLI struct {
	Files []string `arg:"" optional:"" name:"FILES" help:"Output file(s). Each incoming frame is saved to all of these paths; format is inferred from the extension (.png, .jpg, .bmp, ...)."`

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
		kong.Name("framepipe-writer"),
		kong.Description(l10n.T("Save each incoming frame record to one or more image files.")),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("framepipe-writer %s", framepipe.Version)},
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

// Run executes the writer.
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

	codec := stdcodec.NewWithOptions(stdcodec.Options{JPEGQuality: cfg.JPEGQuality})
	fs := osfilesystem.New()
	union := stream.NewUnionWriter(os.Stdout, cmd.Union)

	w := runner.NewWriter(codec, fs, union, log, cmd.Files)
	if err := w.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("%s", err)
		return err
	}
	return nil
}

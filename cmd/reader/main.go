// Package main provides the CLI entry point for framepipe-reader.
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

	"github.com/user/framepipe/pkg/adapters/httpsource"
	"github.com/user/framepipe/pkg/adapters/logger"
	"github.com/user/framepipe/pkg/adapters/stdcodec"
	"github.com/user/framepipe/pkg/config"
	"github.com/user/framepipe/pkg/frame"
	"github.com/user/framepipe/pkg/framepipe"
	"github.com/user/framepipe/pkg/pipeline"
	"github.com/user/framepipe/pkg/ports"
	"github.com/user/framepipe/pkg/runner"
	"github.com/user/framepipe/pkg/stream"
)

// CLI defines the reader command line.
type CLI struct {
	URL  string `arg:"" optional:"" help:"Input image file path or URL. Reads stdin when omitted."`
	Size string `short:"s" placeholder:"WxH" help:"Desired output dimensions in WxH format (e.g. 1920x1080)."`

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
		kong.Name("framepipe-reader"),
		kong.Description(l10n.T("Decode one image into a line-delimited frame record on stdout.")),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("framepipe-reader %s", framepipe.Version)},
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

// Run executes the reader.
func (cmd *CLI) Run() error {
	log := logger.NewConsole(ports.VerbosityLevel(cmd.Verbose, cmd.Debug))

	cfg, err := config.Load()
	if err != nil {
		log.Error("%s", err)
		return framepipe.Wrap(framepipe.CategoryUsage, "loading configuration", err)
	}

	var size *pipeline.Size
	if cmd.Size != "" {
		w, h, err := frame.ParseSize(cmd.Size)
		if err != nil {
			log.Error("%s", err)
			return err
		}
		size = &pipeline.Size{Width: w, Height: h}
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

	fetcher := httpsource.NewWithOptions(os.Stdin, httpsource.Options{
		Timeout:   cfg.HTTPTimeout(),
		UserAgent: cfg.UserAgent,
	})
	codec := stdcodec.NewWithOptions(stdcodec.Options{JPEGQuality: cfg.JPEGQuality})
	out := stream.NewUnionWriter(os.Stdout, false)

	r := runner.NewReader(fetcher, codec, out, log)
	if err := r.Run(ctx, cmd.URL, size); err != nil {
		log.Error("%s", err)
		return err
	}
	return nil
}

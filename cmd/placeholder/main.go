package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/placeholder-png/internal/config"
	"github.com/ironsheep/placeholder-png/internal/inject"
	"github.com/ironsheep/placeholder-png/internal/log"
	"github.com/ironsheep/placeholder-png/internal/server"
	"github.com/samber/do"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("placeholder %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("placeholder - HTTP service that renders placeholder PNG images")
			fmt.Println()
			fmt.Println("Usage: placeholder [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=%s    Listen address\n", config.EnvAddr, config.DefaultAddr)
			fmt.Printf("  %s=info          debug, info, warn or error\n", config.EnvLogLevel)
			fmt.Printf("  %s=0         Largest width or height (0 = unlimited)\n", config.EnvMaxDimension)
			fmt.Println()
			fmt.Println("Routes:")
			fmt.Println("  GET /{size}                      e.g. /200 or /320x240")
			fmt.Println("  GET /{size}/{bg}/{fg}            e.g. /200/cccccc/000000")
			fmt.Println("  GET /{size}/{bg}/{fg}/text={t}   e.g. /200/cccccc/000000/text=Hi")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, cfg.LogLevel)
	logger.Debug("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	ctx := log.NewContext(context.Background(), logger)
	injector := inject.Setup(ctx, cfg)

	srv, err := do.Invoke[*server.Server](injector)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-quit:
		if err := injector.Shutdown(); err != nil {
			logger.Error("shutdown error", "error", err)
			os.Exit(1)
		}
	}
}

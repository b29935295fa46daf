package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/CristiGvl/diskspace/api"
	"github.com/CristiGvl/diskspace/internal/config"
	"github.com/CristiGvl/diskspace/internal/disk"
	"github.com/CristiGvl/diskspace/internal/diskspace"
	"github.com/CristiGvl/diskspace/internal/log"
	"github.com/CristiGvl/diskspace/internal/platform"
)

// Exit codes for -call
const (
	exitOK          = 0
	exitFailure     = 1
	exitUnsupported = 2
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.String("port", "", "Port to run the server on (overrides config)")
	bind := flag.String("bind", "", "IP address to bind the server to (overrides config)")
	call := flag.String("call", "", "Run a single method (getTotalDiskSpace, getFreeDiskSpace) and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := applyFlags(cfg, *bind, *port); err != nil {
		log.Fatal().Err(err).Msg("Invalid flags")
	}

	if err := log.Configure(cfg.Log.Level, cfg.Log.Console, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}
	if *debug {
		log.SetDebugMode()
	}

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatal().Err(err).Msg("Platform validation failed")
	}

	query := diskspace.New(platform.DataDir())

	if *call != "" {
		os.Exit(runCall(query, *call, cfg, os.Stdout))
	}

	server, err := api.NewServer(cfg, query, disk.NewReader())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down")
		if err := server.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Error during shutdown")
		}
	}()

	if err := server.Start(cfg.Server.Address()); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

// applyFlags lets -bind and -port override the loaded configuration
func applyFlags(cfg *config.Config, bind, port string) error {
	if bind != "" {
		cfg.Server.Host = bind
	}
	if port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	return cfg.Validate()
}

// runCall performs one method call and prints the result in megabytes
func runCall(q *diskspace.Query, method string, cfg *config.Config, out io.Writer) int {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Query.Timeout)
	defer cancel()

	resp, err := q.Handle(ctx, diskspace.ParseOperation(method))
	if err != nil {
		log.Error().Str("method", method).Str("path", q.Path()).Err(err).Msg("Disk space query failed")
		return exitFailure
	}
	if !resp.Implemented {
		log.Error().Str("method", method).Err(diskspace.ErrUnsupportedOperation).Msg("Unknown method")
		return exitUnsupported
	}

	fmt.Fprintf(out, "%s\n", strconv.FormatFloat(resp.Value.MB(), 'f', -1, 64))
	return exitOK
}

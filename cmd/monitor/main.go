package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/config"
	"github.com/hamed0406/monexport/internal/logging"
	"github.com/hamed0406/monexport/internal/probe"
	"github.com/hamed0406/monexport/internal/runner"
)

// Exit codes: 0 success, 1 preflight/publish failure, 130 interrupted.
const exitInterrupted = 130

func main() {
	cfgPath := flag.String("config", os.Getenv("MONITOR_CONFIG"), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// An interrupt mid-run aborts without publishing; the previously
	// published file stays in place.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	web := probe.NewWebsiteProber(
		probe.NewWebChecker(cfg.ConnectTimeout(), cfg.TotalTimeout()),
		probe.NewTLSChecker(cfg.TLSTimeout()),
		logger, os.Stdout,
	)
	host := probe.NewHostProber(
		probe.NewPingChecker(cfg.PingCount, cfg.PingTimeout()),
		logger, os.Stdout,
	)
	r := runner.New(logger, os.Stdout, web, host, cfg.Websites, cfg.Hosts, cfg.OutputPath)

	if err := r.Preflight(); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "preflight:", e)
		}
		logger.Error("preflight_failed", zap.Error(err))
		os.Exit(1)
	}

	if err := r.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted; previous metrics file left in place")
			logger.Warn("run_interrupted")
			logger.Sync()
			os.Exit(exitInterrupted)
		}
		fmt.Fprintln(os.Stderr, "run failed:", err)
		logger.Error("run_failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hamed0406/monexport/internal/config"
	"github.com/hamed0406/monexport/internal/probe"
)

func main() {
	failed := false
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		failed = true
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	cfgPath := os.Getenv("MONITOR_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fail("config unreadable: " + err.Error())
		os.Exit(1)
	}
	if cfgPath == "" {
		warn("MONITOR_CONFIG empty — baked-in defaults will be used.")
	} else {
		ok("MONITOR_CONFIG=" + cfgPath)
	}

	if _, err := exec.LookPath(probe.PingBinary); err != nil {
		fail(probe.PingBinary + " not found on PATH (host checks will not run).")
	} else {
		ok(probe.PingBinary + " found on PATH")
	}

	dir := filepath.Dir(cfg.OutputPath)
	if info, err := os.Stat(dir); err != nil {
		fail("output directory " + dir + " does not exist; create it before scheduling runs.")
	} else if !info.IsDir() {
		fail("output path parent " + dir + " is not a directory.")
	} else {
		ok("output directory " + dir + " exists")
	}

	if len(cfg.Websites) == 0 {
		warn("no websites configured — website metrics will be omitted.")
	} else {
		ok(fmt.Sprintf("%d websites configured", len(cfg.Websites)))
	}
	if len(cfg.Hosts) == 0 {
		warn("no hosts configured — host metrics will be omitted.")
	} else {
		ok(fmt.Sprintf("%d hosts configured", len(cfg.Hosts)))
	}

	if failed {
		os.Exit(1)
	}
	ok("preflight passed")
}

// Package runner coordinates one monitoring run: preflight checks,
// the sequential probe loops, and the atomic publish.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/exposition"
	"github.com/hamed0406/monexport/internal/metrics"
	"github.com/hamed0406/monexport/internal/probe"
)

// Runner holds everything a single run needs. The accumulator is
// created per run; nothing here is shared between runs.
type Runner struct {
	Logger     *zap.Logger
	Out        io.Writer
	Websites   []string
	Hosts      []string
	Web        *probe.WebsiteProber
	Host       *probe.HostProber
	OutputPath string
	Binaries   []string // external tools the probes shell out to

	now func() time.Time // test hook
}

func New(logger *zap.Logger, out io.Writer, web *probe.WebsiteProber, host *probe.HostProber,
	websites, hosts []string, outputPath string) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		Logger:     logger,
		Out:        out,
		Websites:   websites,
		Hosts:      hosts,
		Web:        web,
		Host:       host,
		OutputPath: outputPath,
		Binaries:   []string{probe.PingBinary},
		now:        time.Now,
	}
}

// Preflight verifies the environment before any probing: every
// required external binary must be on PATH and the output directory
// must already exist. All failures are aggregated so the operator sees
// the complete missing set at once.
func (r *Runner) Preflight() error {
	var errs error
	for _, bin := range r.Binaries {
		if _, err := exec.LookPath(bin); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("required tool %q not found on PATH", bin))
		}
	}

	dir := filepath.Dir(r.OutputPath)
	info, err := os.Stat(dir)
	switch {
	case err != nil:
		errs = multierr.Append(errs,
			fmt.Errorf("output directory %s does not exist; create it and re-run", dir))
	case !info.IsDir():
		errs = multierr.Append(errs, fmt.Errorf("output path parent %s is not a directory", dir))
	}
	return errs
}

// Run executes one full pass: websites in declaration order, then
// hosts in declaration order, strictly sequentially, then the publish.
// Cancellation between probes aborts without publishing, leaving the
// previously published file in place.
func (r *Runner) Run(ctx context.Context) error {
	acc := metrics.NewAccumulator()

	fmt.Fprintf(r.Out, "Checking %d websites...\n", len(r.Websites))
	for _, url := range r.Websites {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Web.Probe(ctx, url, acc)
	}

	fmt.Fprintf(r.Out, "Checking %d hosts...\n", len(r.Hosts))
	for _, host := range r.Hosts {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Host.Probe(ctx, host, acc)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	meta := exposition.Metadata{
		Timestamp: r.now().Unix(),
		Websites:  len(r.Websites),
		Hosts:     len(r.Hosts),
	}
	doc := exposition.Render(acc, meta)
	if err := exposition.Publish(r.OutputPath, doc); err != nil {
		r.Logger.Error("publish_failed", zap.String("path", r.OutputPath), zap.Error(err))
		return err
	}

	lines := exposition.CountMetricLines(doc)
	fmt.Fprintf(r.Out, "Wrote %d metric lines to %s\n", lines, r.OutputPath)
	r.Logger.Info("run_complete",
		zap.Int("websites", len(r.Websites)),
		zap.Int("hosts", len(r.Hosts)),
		zap.Int("metric_lines", lines),
		zap.String("output", r.OutputPath),
	)
	return nil
}

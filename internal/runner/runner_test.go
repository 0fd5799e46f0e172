package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/probe"
)

type stubFetcher struct{ res probe.HTTPResult }

func (s stubFetcher) Fetch(ctx context.Context, url string) probe.HTTPResult { return s.res }

type stubInspector struct{ res probe.TLSResult }

func (s stubInspector) Inspect(ctx context.Context, host string) probe.TLSResult { return s.res }

type stubPinger struct{ res probe.PingResult }

func (s stubPinger) Ping(ctx context.Context, host string) probe.PingResult { return s.res }

func newTestRunner(t *testing.T, websites, hosts []string) (*Runner, string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "monitor.prom")
	var buf bytes.Buffer

	web := probe.NewWebsiteProber(
		stubFetcher{probe.HTTPResult{Up: true, StatusCode: 200, ResponseTime: 0.05}},
		stubInspector{probe.TLSResult{Valid: true, ExpiryDays: 30, Protocol: "TLSv1.3"}},
		zap.NewNop(), &buf,
	)
	host := probe.NewHostProber(
		stubPinger{probe.PingResult{Up: true, PingTime: 0.001, PacketLoss: 0}},
		zap.NewNop(), &buf,
	)

	r := New(zap.NewNop(), &buf, web, host, websites, hosts, path)
	r.Binaries = nil // no external tools behind the stubs
	r.now = func() time.Time { return time.Unix(1700000000, 0) }
	return r, path, &buf
}

func TestRun_PublishesDocument(t *testing.T) {
	r, path, buf := newTestRunner(t,
		[]string{"https://a.example", "http://b.example"},
		[]string{"10.0.0.5"},
	)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	doc, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read published: %v", err)
	}
	// Declaration order is preserved in the output.
	first := strings.Index(string(doc), `url="https://a.example"`)
	second := strings.Index(string(doc), `url="http://b.example"`)
	if first < 0 || second < 0 || second < first {
		t.Fatalf("website samples missing or out of declaration order:\n%s", doc)
	}
	if !strings.Contains(string(doc), "website_monitor_last_run_timestamp 1700000000\n") {
		t.Fatalf("run timestamp missing:\n%s", doc)
	}
	if !strings.Contains(string(doc), "website_monitor_websites_total 2\n") {
		t.Fatalf("website count missing:\n%s", doc)
	}
	if !strings.Contains(string(doc), "vm_host_monitor_hosts_total 1\n") {
		t.Fatalf("host count missing:\n%s", doc)
	}
	if !strings.Contains(buf.String(), "Wrote ") {
		t.Fatalf("operator confirmation line missing, got %q", buf.String())
	}
}

func TestRun_EveryTargetYieldsExactlyOneUpSample(t *testing.T) {
	r, path, _ := newTestRunner(t, []string{"https://x.example", "https://x.example"}, nil)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	doc, _ := os.ReadFile(path)
	// Duplicate declaration means duplicate samples, not deduplication.
	if got := strings.Count(string(doc), "website_up{"); got != 2 {
		t.Fatalf("want 2 website_up samples for duplicated target, got %d", got)
	}
}

func TestRun_CancelledBeforeProbingPublishesNothing(t *testing.T) {
	r, path, _ := newTestRunner(t, []string{"https://a.example"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx); err == nil {
		t.Fatalf("want context error from cancelled run")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("cancelled run must not publish, stat err = %v", err)
	}
}

func TestPreflight_ReportsAllFailuresTogether(t *testing.T) {
	r, _, _ := newTestRunner(t, nil, nil)
	r.Binaries = []string{"definitely-not-a-real-tool-47281"}
	r.OutputPath = filepath.Join(t.TempDir(), "missing-subdir", "monitor.prom")

	err := r.Preflight()
	if err == nil {
		t.Fatalf("want preflight failure")
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("want both failures reported, got %d: %v", len(errs), err)
	}
	if !strings.Contains(err.Error(), "definitely-not-a-real-tool-47281") {
		t.Fatalf("missing tool not named: %v", err)
	}
	if !strings.Contains(err.Error(), "missing-subdir") {
		t.Fatalf("missing directory not named: %v", err)
	}
}

func TestPreflight_OKWithExistingDirAndNoBinaries(t *testing.T) {
	r, _, _ := newTestRunner(t, nil, nil)
	if err := r.Preflight(); err != nil {
		t.Fatalf("preflight should pass, got %v", err)
	}
}

package probe

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/labels"
	"github.com/hamed0406/monexport/internal/metrics"
)

// WebsiteOutcome is the complete probe result for one website target.
// TLSValid and CertExpiryDays use -1 as a "not applicable" sentinel
// for plain-HTTP targets, distinguishing no-TLS from failed-TLS.
type WebsiteOutcome struct {
	URL            string
	Hostname       string
	Label          string
	HTTPS          bool
	Up             bool
	StatusCode     int
	ResponseTime   float64
	TLSValid       int
	CertExpiryDays int
	TLSProtocol    string
}

// WebsiteProber runs the HTTP and TLS checks for one website and
// appends the fixed set of samples to the accumulator. Every target
// yields exactly one outcome per run; failures are encoded as values,
// never as missing samples.
type WebsiteProber struct {
	Fetcher   Fetcher
	Inspector Inspector
	Logger    *zap.Logger
	Out       io.Writer // operator-facing progress, not the metric output
}

func NewWebsiteProber(f Fetcher, i Inspector, logger *zap.Logger, out io.Writer) *WebsiteProber {
	if out == nil {
		out = io.Discard
	}
	return &WebsiteProber{Fetcher: f, Inspector: i, Logger: logger, Out: out}
}

func (p *WebsiteProber) Probe(ctx context.Context, rawURL string, acc *metrics.Accumulator) WebsiteOutcome {
	out := WebsiteOutcome{
		URL:            rawURL,
		Hostname:       Hostname(rawURL),
		Label:          labels.Normalize(rawURL),
		HTTPS:          strings.HasPrefix(rawURL, "https://"),
		TLSValid:       -1,
		CertExpiryDays: -1,
	}

	res := p.Fetcher.Fetch(ctx, rawURL)
	out.Up = res.Up
	out.StatusCode = res.StatusCode
	out.ResponseTime = res.ResponseTime

	switch {
	case res.Up:
		fmt.Fprintf(p.Out, "  %s is UP (HTTP %d)\n", rawURL, res.StatusCode)
	case res.StatusCode != 0:
		fmt.Fprintf(p.Out, "  %s is DOWN (HTTP %d)\n", rawURL, res.StatusCode)
	default:
		fmt.Fprintf(p.Out, "  %s is DOWN (no response)\n", rawURL)
	}

	if out.HTTPS {
		t := p.Inspector.Inspect(ctx, out.Hostname)
		if t.Valid {
			out.TLSValid = 1
			out.CertExpiryDays = t.ExpiryDays
			out.TLSProtocol = t.Protocol
		} else {
			out.TLSValid = 0
			out.CertExpiryDays = 0
		}
	}

	p.Logger.Info("website_checked",
		zap.String("url", rawURL),
		zap.Bool("up", out.Up),
		zap.Int("status", out.StatusCode),
		zap.Float64("response_time_s", out.ResponseTime),
		zap.Int("ssl_valid", out.TLSValid),
		zap.Int("cert_expiry_days", out.CertExpiryDays),
		zap.String("tls_version", out.TLSProtocol),
	)

	ls := metrics.WebsiteLabels(out.URL, out.Hostname, out.Label)
	acc.Add(metrics.WebsiteUp, metrics.Sample{Labels: ls, Value: boolValue(out.Up)})
	acc.Add(metrics.WebsiteHTTPStatusCode, metrics.Sample{Labels: ls, Value: float64(out.StatusCode)})
	acc.Add(metrics.WebsiteResponseTimeSeconds, metrics.Sample{Labels: ls, Value: out.ResponseTime})
	acc.Add(metrics.WebsiteSSLValid, metrics.Sample{Labels: ls, Value: float64(out.TLSValid)})
	acc.Add(metrics.WebsiteSSLCertExpiryDays, metrics.Sample{Labels: ls, Value: float64(out.CertExpiryDays)})
	if out.TLSProtocol != "" {
		acc.Add(metrics.WebsiteTLSVersionInfo, metrics.Sample{
			Labels: metrics.WebsiteTLSLabels(out.URL, out.Hostname, out.Label, out.TLSProtocol),
			Value:  1,
		})
	}
	return out
}

// Hostname pulls the bare hostname from a URL string: scheme, path and
// port are stripped. Falls back to the raw string when it does not
// parse as a URL.
func Hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

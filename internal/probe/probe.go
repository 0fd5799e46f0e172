// Package probe runs the per-target checks and converts their
// outcomes into metric samples.
//
// Each external check sits behind a small interface so the probers can
// be exercised against deterministic fixtures without touching the
// network.
package probe

import "context"

// HTTPResult is the outcome of the reachability/timing fetch.
// StatusCode and ResponseTime are both 0 when no response was
// received at all (DNS failure, refused connection, timeout).
type HTTPResult struct {
	Up           bool
	StatusCode   int
	ResponseTime float64 // seconds
}

// TLSResult is the outcome of the certificate inspection.
// Protocol is empty when the negotiated version could not be
// determined.
type TLSResult struct {
	Valid      bool
	ExpiryDays int
	Protocol   string
}

// PingResult is the outcome of the ICMP check.
type PingResult struct {
	Up         bool
	PingTime   float64 // seconds, average round trip
	PacketLoss int     // percent, 0-100
}

// Fetcher performs the HTTP reachability fetch for a website target.
type Fetcher interface {
	Fetch(ctx context.Context, url string) HTTPResult
}

// Inspector retrieves certificate and protocol details for an HTTPS
// host.
type Inspector interface {
	Inspect(ctx context.Context, host string) TLSResult
}

// Pinger checks ICMP reachability of a network host.
type Pinger interface {
	Ping(ctx context.Context, host string) PingResult
}

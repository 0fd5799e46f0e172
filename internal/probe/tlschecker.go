package probe

import (
	"context"
	"crypto/tls"
	"net"
	"time"
)

// TLSChecker opens a TLS handshake to host:port and reports the leaf
// certificate's remaining validity plus the negotiated protocol.
// A failed handshake (including an invalid or expired certificate)
// yields the zero TLSResult: not valid, 0 expiry days, no protocol.
type TLSChecker struct {
	Timeout time.Duration
	Port    string
	Config  *tls.Config // optional; tests inject trust roots here
}

func NewTLSChecker(timeout time.Duration) *TLSChecker {
	return &TLSChecker{Timeout: timeout, Port: "443"}
}

func (c *TLSChecker) Inspect(ctx context.Context, host string) TLSResult {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	d := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: c.Timeout},
		Config:    c.Config,
	}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, c.Port))
	if err != nil {
		return TLSResult{}
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return TLSResult{}
	}

	// Truncation is floor here: the value is clamped before it can go
	// negative, and an already-expired certificate reports 0 days.
	days := int(time.Until(state.PeerCertificates[0].NotAfter).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return TLSResult{Valid: true, ExpiryDays: days, Protocol: protocolName(state.Version)}
}

// protocolName reports versions in the openssl-style form the
// consuming dashboards expect.
func protocolName(v uint16) string {
	switch v {
	case tls.VersionTLS13:
		return "TLSv1.3"
	case tls.VersionTLS12:
		return "TLSv1.2"
	case tls.VersionTLS11:
		return "TLSv1.1"
	case tls.VersionTLS10:
		return "TLSv1.0"
	}
	return ""
}

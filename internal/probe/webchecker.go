package probe

import (
	"context"
	"net"
	"net/http"
	"time"
)

// WebChecker performs the HTTP reachability and timing check.
//
// Redirects are followed with the client's default policy (10 hops)
// and the final status decides up/down, so a 3xx only survives to the
// result when the redirect limit is exhausted; it still classifies as
// up under the [200,400) rule.
type WebChecker struct {
	Client *http.Client
}

func NewWebChecker(connectTimeout, totalTimeout time.Duration) *WebChecker {
	return &WebChecker{
		Client: &http.Client{
			Timeout: totalTimeout,
			Transport: &http.Transport{
				DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
				TLSHandshakeTimeout: connectTimeout,
			},
		},
	}
}

func (c *WebChecker) Fetch(ctx context.Context, target string) HTTPResult {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return HTTPResult{}
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		// No response at all: status and response time stay 0.
		return HTTPResult{}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Seconds()
	up := resp.StatusCode >= 200 && resp.StatusCode < 400
	return HTTPResult{Up: up, StatusCode: resp.StatusCode, ResponseTime: elapsed}
}

package probe

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PingBinary is the external tool the host check shells out to. Raw
// ICMP sockets need elevated privileges; the system ping binary has
// them already, so using it keeps the monitor unprivileged.
const PingBinary = "ping"

// PingChecker probes hosts with the system ping binary and parses the
// iputils summary output.
type PingChecker struct {
	Count   int           // echo requests per probe
	Timeout time.Duration // per-packet wait
}

func NewPingChecker(count int, timeout time.Duration) *PingChecker {
	if count < 1 {
		count = 1
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &PingChecker{Count: count, Timeout: timeout}
}

func (c *PingChecker) Ping(ctx context.Context, host string) PingResult {
	// Hard stop a little past the worst case so a wedged ping cannot
	// stall the whole run.
	deadline := time.Duration(c.Count)*c.Timeout + 2*time.Second
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	secs := strconv.Itoa(int(c.Timeout.Round(time.Second) / time.Second))
	cmd := exec.CommandContext(ctx, PingBinary,
		"-c", strconv.Itoa(c.Count),
		"-W", secs,
		host,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// ping exits non-zero both when every packet is lost and when
		// the host cannot be resolved; either way the host is down.
		return PingResult{Up: false, PingTime: 0, PacketLoss: 100}
	}

	res := PingResult{Up: true}
	if loss, ok := parsePacketLoss(string(out)); ok {
		res.PacketLoss = loss
	}
	if avgMS, ok := parseAvgRTT(string(out)); ok {
		res.PingTime = avgMS / 1000
	}
	return res
}

var (
	lossRe = regexp.MustCompile(`(\d+(?:\.\d+)?)% packet loss`)
	rttRe  = regexp.MustCompile(`= ([0-9.]+)/([0-9.]+)/([0-9.]+)`)
)

// parsePacketLoss extracts the loss percentage from the ping summary
// line, e.g. "3 packets transmitted, 2 received, 33.3% packet loss".
func parsePacketLoss(out string) (int, bool) {
	m := lossRe.FindStringSubmatch(out)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseAvgRTT extracts the average round trip in milliseconds from the
// statistics line, e.g. "rtt min/avg/max/mdev = 0.041/0.049/0.058/0.007 ms".
func parseAvgRTT(out string) (float64, bool) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "min/avg/max") {
			continue
		}
		m := rttRe.FindStringSubmatch(line)
		if m == nil {
			return 0, false
		}
		f, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

package probe

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/labels"
	"github.com/hamed0406/monexport/internal/metrics"
)

// HostProber runs the ICMP check for one host and appends its samples
// to the accumulator.
type HostProber struct {
	Pinger Pinger
	Logger *zap.Logger
	Out    io.Writer
}

func NewHostProber(pinger Pinger, logger *zap.Logger, out io.Writer) *HostProber {
	if out == nil {
		out = io.Discard
	}
	return &HostProber{Pinger: pinger, Logger: logger, Out: out}
}

func (p *HostProber) Probe(ctx context.Context, host string, acc *metrics.Accumulator) PingResult {
	res := p.Pinger.Ping(ctx, host)

	if res.Up {
		fmt.Fprintf(p.Out, "  %s is UP (avg %.1f ms, %d%% loss)\n", host, res.PingTime*1000, res.PacketLoss)
	} else {
		fmt.Fprintf(p.Out, "  %s is DOWN (%d%% packet loss)\n", host, res.PacketLoss)
	}

	p.Logger.Info("host_checked",
		zap.String("host", host),
		zap.Bool("up", res.Up),
		zap.Float64("ping_time_s", res.PingTime),
		zap.Int("packet_loss_pct", res.PacketLoss),
	)

	ls := metrics.HostLabels(host, labels.NormalizeHost(host))
	acc.Add(metrics.VMHostUp, metrics.Sample{Labels: ls, Value: boolValue(res.Up)})
	acc.Add(metrics.VMHostPingResponseTimeSeconds, metrics.Sample{Labels: ls, Value: res.PingTime})
	acc.Add(metrics.VMHostPacketLossPercentage, metrics.Sample{Labels: ls, Value: float64(res.PacketLoss)})
	return res
}

package probe

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hamed0406/monexport/internal/metrics"
)

func TestHostProber_Reachable(t *testing.T) {
	p := NewHostProber(fakePinger{PingResult{Up: true, PingTime: 0.000407, PacketLoss: 0}}, zap.NewNop(), nil)
	acc := metrics.NewAccumulator()
	p.Probe(context.Background(), "192.168.1.10", acc)

	if v := acc.Samples(metrics.VMHostUp)[0].Value; v != 1 {
		t.Fatalf("want vm_host_up 1, got %v", v)
	}
	if v := acc.Samples(metrics.VMHostPingResponseTimeSeconds)[0].Value; v != 0.000407 {
		t.Fatalf("want ping time 0.000407, got %v", v)
	}
	ls := acc.Samples(metrics.VMHostUp)[0].Labels
	if ls[0].Key != "hostname" || ls[0].Value != "192.168.1.10" {
		t.Fatalf("want hostname label first, got %+v", ls)
	}
	if ls[1].Key != "host_label" || ls[1].Value != "192_168_1_10" {
		t.Fatalf("want normalized host_label, got %+v", ls)
	}
}

func TestHostProber_TotalLoss(t *testing.T) {
	var buf bytes.Buffer
	p := NewHostProber(fakePinger{PingResult{Up: false, PingTime: 0, PacketLoss: 100}}, zap.NewNop(), &buf)
	acc := metrics.NewAccumulator()
	p.Probe(context.Background(), "10.0.0.5", acc)

	if v := acc.Samples(metrics.VMHostUp)[0].Value; v != 0 {
		t.Fatalf("want vm_host_up 0, got %v", v)
	}
	if v := acc.Samples(metrics.VMHostPacketLossPercentage)[0].Value; v != 100 {
		t.Fatalf("want 100%% loss, got %v", v)
	}
	if v := acc.Samples(metrics.VMHostPingResponseTimeSeconds)[0].Value; v != 0 {
		t.Fatalf("want ping time 0 when down, got %v", v)
	}
	if !strings.Contains(buf.String(), "DOWN") {
		t.Fatalf("want operator DOWN line, got %q", buf.String())
	}
}

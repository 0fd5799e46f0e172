// Package exposition serializes an accumulator into the Prometheus
// text exposition format and publishes it atomically.
package exposition

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hamed0406/monexport/internal/metrics"
)

// Metadata describes one monitoring run.
type Metadata struct {
	Timestamp int64 // seconds since epoch
	Websites  int
	Hosts     int
}

// Render produces the full exposition document: a preamble comment
// block, then each catalog metric that collected at least one sample
// (HELP, TYPE, sample lines, blank separator), then the four
// run-metadata gauges. Metrics with zero samples are omitted entirely,
// header comments included.
func Render(acc *metrics.Accumulator, meta Metadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Website and host monitoring metrics\n")
	fmt.Fprintf(&b, "# Generated at %s\n", time.Unix(meta.Timestamp, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Websites: %d, Hosts: %d\n\n", meta.Websites, meta.Hosts)

	for _, d := range metrics.Catalog {
		ss := acc.Samples(d.Name)
		if len(ss) == 0 {
			continue
		}
		fmt.Fprintf(&b, "# HELP %s %s\n", d.Name, d.Help)
		fmt.Fprintf(&b, "# TYPE %s gauge\n", d.Name)
		for _, s := range ss {
			writeSample(&b, d.Name, s)
		}
		b.WriteByte('\n')
	}

	writeMetaGauge(&b, metrics.WebsiteMonitorLastRunTimestamp,
		"Unix timestamp of the last website monitoring run", float64(meta.Timestamp))
	writeMetaGauge(&b, metrics.WebsiteMonitorWebsitesTotal,
		"Number of websites monitored", float64(meta.Websites))
	writeMetaGauge(&b, metrics.VMHostMonitorLastRunTimestamp,
		"Unix timestamp of the last host monitoring run", float64(meta.Timestamp))
	writeMetaGauge(&b, metrics.VMHostMonitorHostsTotal,
		"Number of hosts monitored", float64(meta.Hosts))

	return b.String()
}

func writeSample(b *strings.Builder, name string, s metrics.Sample) {
	b.WriteString(name)
	if len(s.Labels) > 0 {
		b.WriteByte('{')
		for i, l := range s.Labels {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(l.Key)
			b.WriteString(`="`)
			b.WriteString(escapeLabelValue(l.Value))
			b.WriteByte('"')
		}
		b.WriteByte('}')
	}
	b.WriteByte(' ')
	b.WriteString(formatValue(s.Value))
	b.WriteByte('\n')
}

func writeMetaGauge(b *strings.Builder, name, help string, v float64) {
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s gauge\n", name)
	fmt.Fprintf(b, "%s %s\n", name, formatValue(v))
}

// formatValue renders integers without a fractional part and floats
// with their shortest exact decimal form, never scientific notation.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeLabelValue(v string) string {
	return labelEscaper.Replace(v)
}

// Publish writes doc to a staging file in the output directory and
// renames it onto path. The rename is an atomic replace on the target
// filesystems, so a concurrent scrape sees either the previous or the
// new document, never a partial one. On any failure the previously
// published file is left untouched.
func Publish(path, doc string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("stage metrics file: %w", err)
	}
	staged := tmp.Name()

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		os.Remove(staged)
		return fmt.Errorf("write staged metrics: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(staged)
		return fmt.Errorf("sync staged metrics: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(staged)
		return fmt.Errorf("close staged metrics: %w", err)
	}

	if err := os.Rename(staged, path); err != nil {
		os.Remove(staged)
		return fmt.Errorf("publish metrics file: %w", err)
	}
	return nil
}

// CountMetricLines counts the sample lines in a rendered document,
// identified by the two known metric-name prefixes. Used only for the
// operator's final confirmation message.
func CountMetricLines(doc string) int {
	n := 0
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "website_") || strings.HasPrefix(line, "vm_host_") {
			n++
		}
	}
	return n
}

// Package metrics holds the per-run sample model: a fixed catalog of
// gauge metrics and an insertion-ordered accumulator the probers fill.
package metrics

// Label is a single key/value annotation on a sample. Labels are kept
// as a slice because their output order is part of the file contract.
type Label struct {
	Key   string
	Value string
}

// Sample is one metric observation. The metric name is implied by the
// accumulator bucket the sample is added under.
type Sample struct {
	Labels []Label
	Value  float64
}

// WebsiteLabels builds the standard label set for website metrics.
func WebsiteLabels(url, hostname, urlLabel string) []Label {
	return []Label{
		{Key: "url", Value: url},
		{Key: "hostname", Value: hostname},
		{Key: "url_label", Value: urlLabel},
	}
}

// WebsiteTLSLabels is WebsiteLabels plus the negotiated protocol.
func WebsiteTLSLabels(url, hostname, urlLabel, tlsVersion string) []Label {
	return []Label{
		{Key: "url", Value: url},
		{Key: "hostname", Value: hostname},
		{Key: "url_label", Value: urlLabel},
		{Key: "tls_version", Value: tlsVersion},
	}
}

// HostLabels builds the standard label set for host metrics.
func HostLabels(hostname, hostLabel string) []Label {
	return []Label{
		{Key: "hostname", Value: hostname},
		{Key: "host_label", Value: hostLabel},
	}
}

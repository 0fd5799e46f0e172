package metrics

// Metric names for per-target samples.
const (
	WebsiteUp                     = "website_up"
	WebsiteHTTPStatusCode         = "website_http_status_code"
	WebsiteResponseTimeSeconds    = "website_response_time_seconds"
	WebsiteSSLValid               = "website_ssl_valid"
	WebsiteSSLCertExpiryDays      = "website_ssl_cert_expiry_days"
	WebsiteTLSVersionInfo         = "website_tls_version_info"
	VMHostUp                      = "vm_host_up"
	VMHostPingResponseTimeSeconds = "vm_host_ping_response_time_seconds"
	VMHostPacketLossPercentage    = "vm_host_packet_loss_percentage"
)

// Metric names for the run-metadata gauges appended after the
// per-target sections.
const (
	WebsiteMonitorLastRunTimestamp = "website_monitor_last_run_timestamp"
	WebsiteMonitorWebsitesTotal    = "website_monitor_websites_total"
	VMHostMonitorLastRunTimestamp  = "vm_host_monitor_last_run_timestamp"
	VMHostMonitorHostsTotal        = "vm_host_monitor_hosts_total"
)

// Descriptor pairs a metric name with its HELP text. Every exported
// metric is a gauge.
type Descriptor struct {
	Name string
	Help string
}

// Catalog fixes the order in which per-target metric sections appear
// in the output file. The writer walks this slice, never the
// accumulator's map.
var Catalog = []Descriptor{
	{WebsiteUp, "Website availability (1 = up, 0 = down)"},
	{WebsiteHTTPStatusCode, "HTTP status code returned by the website (0 = no response)"},
	{WebsiteResponseTimeSeconds, "Website response time in seconds"},
	{WebsiteSSLValid, "SSL certificate validity (1 = valid, 0 = invalid, -1 = not applicable)"},
	{WebsiteSSLCertExpiryDays, "Days until the SSL certificate expires (-1 = not applicable)"},
	{WebsiteTLSVersionInfo, "Negotiated TLS protocol version, carried in the tls_version label (value is always 1)"},
	{VMHostUp, "Host ICMP reachability (1 = up, 0 = down)"},
	{VMHostPingResponseTimeSeconds, "Average ping round-trip time in seconds"},
	{VMHostPacketLossPercentage, "Ping packet loss percentage"},
}

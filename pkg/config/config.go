package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	DB                string // connection string for the database (optional)
	WaitForServices   string // duration to wait for other services to be ready
	LogLevel          string // sets the log level (zap log level values)
	SQLLogLevel       string // sets the log level for sql subsystem
	LogFormat         string // text vs json
	LogFilter         string // zapfilter rules, e.g. "*:* debug:schedule*"
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // OTLP gRPC endpoint, stdout exporters when empty
	ProfilingPort     int    // port for profiling
	ServerAddr        string // listen addr of the HTTP API
	TLSServerAddr     string // listen addr of the HTTP API (tls)
	TLSCertFile       string // path to TLS certificate
	TLSKeyFile        string // path to TLS key
	TLSCAFile         string // path to TLS CA for client certificates
	TraefikCerts      string // path to traefik acme.json
	TraefikCertDomain string // the domain to lookup within the traefik certs
	LookupFile        string // yaml file with lookup table overrides
	LocationRounds    []int  // rounds displayed by location instead of country
	DateStyle         string // month-day or day-month
	LocalZone         string // zone of "my" mode, host zone when empty
)

// Config holds the configuration values which are used by the application
type Config struct {
	RecordUnresolved bool // store unresolved timezone diagnostics
}

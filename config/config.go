package config

var (
	CfgFile string

	Verbose bool
)

const (
	DefaultVerbose bool = false

	DefaultLogLevel     string = "info"
	DefaultReportFormat string = "json"
)

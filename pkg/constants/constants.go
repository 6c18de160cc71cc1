// Package constants provides shared constants for the bizvet application.
package constants

// Financial modeling defaults
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultProjectionYears is the default horizon for financial projections
	DefaultProjectionYears = 5

	// DefaultOperatingMargin is the default operating margin applied to
	// projected revenue when none is supplied
	DefaultOperatingMargin = 0.2

	// DefaultTaxRate is the default tax rate applied to projected EBITDA
	DefaultTaxRate = 0.25

	// SustainableLTVCACRatio is the industry-benchmark LTV:CAC ratio that
	// separates sustainable from unsustainable unit economics
	SustainableLTVCACRatio = 3.0

	// MaxHealthScore caps the unit-economics health score
	MaxHealthScore = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the tool API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// tool calls (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Monitoring defaults
const (
	// DefaultErrorWindowHours is the default window for error-rate summaries
	DefaultErrorWindowHours = 24

	// DefaultSummarySchedule is the default cron schedule for the periodic
	// health summary job
	DefaultSummarySchedule = "@hourly"

	// DefaultMaxTrackedErrors is the default capacity of the error tracker
	DefaultMaxTrackedErrors = 100
)

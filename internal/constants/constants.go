package constants

import "os"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm os.FileMode = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm os.FileMode = 0600
)

// HTTP request constants.
const (
	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "hypergraph-go/1.0"

	// FormContentType is the content type of POST bodies.
	FormContentType = "application/x-www-form-urlencoded"

	// HTTPSScheme prefixes every API URL.
	HTTPSScheme = "https://"

	// HTTPScheme is stripped from configured hosts.
	HTTPScheme = "http://"

	// TrueBody is the literal body some POST operations answer with.
	TrueBody = "true"
)

// API path constants.
const (
	// APIPathSearch is the search endpoint.
	APIPathSearch = "search"

	// APIPathAccessToken is the authorization code exchange endpoint.
	APIPathAccessToken = "/oauth/access_token"

	// APIPathAuthorize is the user authorization endpoint.
	APIPathAuthorize = "/oauth/authorize"
)

// Parameter values.
const (
	// MethodOverrideDelete is sent as method= to simulate DELETE over POST.
	MethodOverrideDelete = "delete"
)

// Environment variables.
const (
	// DevModeEnv gates insecure TLS.
	DevModeEnv = "HYPERGRAPH_DEV_MODE"

	// EnvPrefix is the viper environment prefix for the CLI.
	EnvPrefix = "HYPERGRAPH"
)

// UI and display constants.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// JSONIndent is the indentation for JSON output.
	JSONIndent = "  "

	// TokenPreviewLength is the number of token characters shown before masking.
	TokenPreviewLength = 8
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// DevModeOne is the alternative truthy value for DevModeEnv.
	DevModeOne = "1"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Validation and limits.
const (
	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2
)

package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the timeout of the default HTTP client.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used by the CLI for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// HTTP status codes.
const (
	// HTTPStatusBadRequest is the first status treated as an error.
	HTTPStatusBadRequest = 400
)

// HTTP header values.
const (
	// ContentTypeJSON is sent as Accept and Content-Type.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "burgers-go/1.0.0"
)

// API path constants.
const (
	// APIPathBurgers is the collection path of the burger resource group.
	APIPathBurgers = "/burger/"

	// APIPathOrders is the collection path of the order resource group.
	APIPathOrders = "/order/"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is printed for empty optional values.
	NotAvailable = "N/A"

	// MinDescriptionWidth is the narrowest description column before truncation stops.
	MinDescriptionWidth = 20

	// TableChromeWidth approximates borders and the non-description columns.
	TableChromeWidth = 40

	// Ellipsis marks truncated table cells.
	Ellipsis = "..."
)

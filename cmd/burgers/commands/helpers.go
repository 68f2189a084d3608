package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
	"github.com/fivetwenty-io/burgers/pkg/burgersclient"
)

const defaultTerminalWidth = 120

// CreateClient builds a burgers client from the global flags, the config
// file and BURGERS_* environment variables.
func CreateClient(cmd *cobra.Command) (burgers.Client, error) {
	config, err := buildClientConfig(cmd)
	if err != nil {
		return nil, err
	}

	client, err := burgersclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func buildClientConfig(cmd *cobra.Command) (*burgers.Config, error) {
	params, err := resolveURLParams(cmd)
	if err != nil {
		return nil, err
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = constants.ShortHTTPTimeout

	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		httpClient.Timeout = timeout
	}

	config := &burgers.Config{
		ServerIndex: viper.GetInt("server_index"),
		ServerURL:   viper.GetString("server_url"),
		URLParams:   params,
		HTTPClient:  httpClient,
	}

	if viper.GetBool("verbose") {
		config.Logger = NewLogger(cmd.ErrOrStderr(), true)
		config.Debug = true
	}

	return config, nil
}

// resolveURLParams returns the --url-param values, falling back to the
// url_params map of the config file. It returns nil when neither is set so
// the server URL is used verbatim.
func resolveURLParams(cmd *cobra.Command) (map[string]string, error) {
	if flag := cmd.Flags().Lookup("url-param"); flag != nil && flag.Changed {
		values, err := cmd.Flags().GetStringArray("url-param")
		if err != nil {
			return nil, fmt.Errorf("reading url params: %w", err)
		}

		return parseURLParams(values)
	}

	params := viper.GetStringMapString("url_params")
	if len(params) == 0 {
		return nil, nil //nolint:nilnil // nil params select the verbatim server URL
	}

	return restorePlaceholderCase(viper.GetString("server_url"), params), nil
}

// restorePlaceholderCase maps the lowercased keys viper reports for
// url_params back onto the placeholder names used in serverURL.
func restorePlaceholderCase(serverURL string, params map[string]string) map[string]string {
	restored := make(map[string]string, len(params))
	for key, value := range params {
		restored[key] = value
	}

	for _, name := range burgers.Placeholders(serverURL) {
		if _, ok := restored[name]; ok {
			continue
		}

		if value, ok := params[strings.ToLower(name)]; ok {
			restored[name] = value
		}
	}

	return restored
}

func parseURLParams(values []string) (map[string]string, error) {
	params := make(map[string]string, len(values))

	for _, value := range values {
		key, val, found := strings.Cut(value, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidURLParam, value)
		}

		params[key] = val
	}

	return params, nil
}

func parseID(arg string, errInvalid error) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalid, arg)
	}

	return id, nil
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	output := viper.GetString("output")
	switch output {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnknownOutput, output)
	}
}

// render writes data as JSON or YAML, or calls table for table output.
func render(writer io.Writer, data interface{}, table func() error) error {
	output, err := outputFormat()
	if err != nil {
		return err
	}

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		return table()
	}
}

func renderTable(writer io.Writer, header []string, rows [][]string) error {
	cells := make([]any, 0, len(header))
	for _, cell := range header {
		cells = append(cells, cell)
	}

	table := tablewriter.NewWriter(writer)
	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// terminalWidth returns the width of stdout, or a default when stdout is not
// a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}

	return width
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	if width <= len(constants.Ellipsis) {
		return string(runes[:width])
	}

	return string(runes[:width-len(constants.Ellipsis)]) + constants.Ellipsis
}

func descriptionWidth() int {
	return max(terminalWidth()-constants.TableChromeWidth, constants.MinDescriptionWidth)
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return constants.NotAvailable
	}

	return *s
}

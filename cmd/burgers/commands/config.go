package commands

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// EffectiveConfig is the configuration the CLI would build a client from.
type EffectiveConfig struct {
	ConfigFile  string            `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	ServerURL   string            `json:"server_url"            yaml:"server_url"`
	ServerIndex int               `json:"server_index"          yaml:"server_index"`
	URLParams   map[string]string `json:"url_params,omitempty"  yaml:"url_params,omitempty"`
	ResolvedURL string            `json:"resolved_url"          yaml:"resolved_url"`
	Timeout     string            `json:"timeout"               yaml:"timeout"`
	Output      string            `json:"output"                yaml:"output"`
	Verbose     bool              `json:"verbose"               yaml:"verbose"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  "Inspect the burgers CLI configuration assembled from flags, config file and environment",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration and the server URL it resolves to",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildClientConfig(cmd)
			if err != nil {
				return err
			}

			// Resolving does not touch the network, so a bad template or
			// server index is reported here too.
			configuration, err := burgers.NewConfiguration(config)
			if err != nil {
				return err
			}

			effective := EffectiveConfig{
				ConfigFile:  viper.ConfigFileUsed(),
				ServerURL:   config.ServerURL,
				ServerIndex: config.ServerIndex,
				URLParams:   config.URLParams,
				ResolvedURL: configuration.ServerURL(),
				Timeout:     viper.GetDuration("timeout").String(),
				Output:      viper.GetString("output"),
				Verbose:     viper.GetBool("verbose"),
			}

			return render(cmd.OutOrStdout(), effective, func() error {
				return renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, configRows(effective))
			})
		},
	}
}

func configRows(config EffectiveConfig) [][]string {
	configFile := config.ConfigFile
	if configFile == "" {
		configFile = constants.NotAvailable
	}

	serverURL := config.ServerURL
	if serverURL == "" {
		serverURL = constants.NotAvailable
	}

	params := make([]string, 0, len(config.URLParams))
	for key, value := range config.URLParams {
		params = append(params, key+"="+value)
	}

	sort.Strings(params)

	urlParams := strings.Join(params, ", ")
	if urlParams == "" {
		urlParams = constants.NotAvailable
	}

	return [][]string{
		{"Config File", configFile},
		{"Server URL", serverURL},
		{"Server Index", strconv.Itoa(config.ServerIndex)},
		{"URL Params", urlParams},
		{"Resolved URL", config.ResolvedURL},
		{"Timeout", config.Timeout},
		{"Output", config.Output},
		{"Verbose", strconv.FormatBool(config.Verbose)},
	}
}

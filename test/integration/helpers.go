//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	ServerURL  string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ServerURL:  os.Getenv("BURGERS_SERVER_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("BURGERS_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the burgers binary
func getBinaryPath() string {
	if path := os.Getenv("BURGERS_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../burgers",
		"./burgers",
		"../burgers",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "burgers" // Fallback to PATH
}

// SkipIfMissingServer skips test if no API server is configured
func (config *TestConfig) SkipIfMissingServer(t *testing.T) {
	if config.ServerURL == "" {
		t.Skip("BURGERS_SERVER_URL not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the CLI has not been built
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	config.SkipIfMissingServer(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("burgers binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner provides utilities for running burgers commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a burgers command against the configured server
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--server-url", runner.config.ServerURL}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a burgers command with JSON output and decodes it into v
func (runner *CommandRunner) RunJSON(v interface{}, args ...string) {
	args = append(args, "--output", "json")

	stdout, stderr, err := runner.Run(args...)
	require.NoError(runner.t, err, "command failed: %s", stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), v), "output is not JSON: %s", stdout)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupBurger attempts to delete a test burger
func CleanupBurger(t *testing.T, client burgers.Client, burgerID int) {
	t.Helper()

	err := client.Burger().Delete(t.Context(), burgerID)
	if err != nil && !burgers.IsNotFound(err) {
		t.Logf("Cleanup warning for burger %d: %v", burgerID, err)
	}
}

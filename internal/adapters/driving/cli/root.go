// Package cli is the cobra command tree for the relay binary.
//
// Commands talk to the core exclusively through the driving ports.
// Services are injected once at startup via SetServices; commands guard
// against a nil service so the tree stays testable in isolation.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay-cli/internal/core/ports/driving"
	"github.com/custodia-labs/relay-cli/internal/logger"
)

// version is stamped by the linker in release builds.
var version = "dev"

var (
	resourceService    driving.ResourceService
	credentialsService driving.CredentialsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "Query Notion and Linear through one interface",
	Long: `Relay aggregates resources from multiple providers behind a single
query interface. Pages from Notion and issues from Linear come back as
uniform resources with provider-prefixed IDs.

Configure credentials with 'relay config set' or via the NOTION_API_KEY
and LINEAR_API_KEY environment variables.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles the driving ports the command tree depends on.
type Services struct {
	Resource    driving.ResourceService
	Credentials driving.CredentialsService
}

// SetServices injects the core services. Call before Execute.
func SetServices(s Services) {
	resourceService = s.Resource
	credentialsService = s.Credentials
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

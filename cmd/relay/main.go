// Command relay is the multi-provider resource aggregation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/relay-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/relay-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/relay-cli/internal/core/domain"
	"github.com/custodia-labs/relay-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relay-cli/internal/core/services"
	"github.com/custodia-labs/relay-cli/internal/logger"
	"github.com/custodia-labs/relay-cli/internal/providers/linear"
	"github.com/custodia-labs/relay-cli/internal/providers/notion"
)

// version is stamped by the linker in release builds.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	credentials := services.NewCredentialsService(configStore)
	resources := services.NewResourceService()

	for _, p := range buildProviders(credentials) {
		resources.AddProvider(p)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Resource:    resources,
		Credentials: credentials,
	})

	return cli.Execute()
}

// buildProviders constructs an adapter for every provider with a resolved
// credential. A provider whose key is missing or rejected is skipped, not
// fatal: the registry simply stays smaller.
func buildProviders(credentials *services.CredentialsService) []driven.ResourceProvider {
	var providers []driven.ResourceProvider

	if key := credentials.APIKey(domain.ProviderNotion); key != "" {
		p, err := notion.NewProvider(notion.Config{APIKey: key})
		if err != nil {
			logger.Warn("notion provider disabled: %v", err)
		} else {
			providers = append(providers, p)
		}
	}

	if key := credentials.APIKey(domain.ProviderLinear); key != "" {
		p, err := linear.NewProvider(linear.Config{APIKey: key})
		if err != nil {
			logger.Warn("linear provider disabled: %v", err)
		} else {
			providers = append(providers, p)
		}
	}

	return providers
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

var (
	fetchSource  string
	fetchLimit   int
	fetchFilters []string
	fetchJSON    bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch resources from providers",
	Long: `Bulk-fetches resources from a provider, or from all of them.

With --source all (the default), every configured provider is queried and
failures are skipped. With a specific --source, that provider's error is
reported as-is.

Some providers require filters: Notion needs --filter database_id=<id>.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchSource, "source", "s", "all", "provider to fetch from (notion, linear, all)")
	fetchCmd.Flags().IntVarP(&fetchLimit, "limit", "n", 0, "maximum number of resources (0 = provider default)")
	fetchCmd.Flags().StringArrayVarP(&fetchFilters, "filter", "f", nil, "provider filter as key=value (repeatable)")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "output resources as JSON")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}

	filters, err := parseFilters(fetchFilters)
	if err != nil {
		return err
	}

	query := &domain.Query{
		Source:  domain.ParseQuerySource(fetchSource),
		Filters: filters,
		Limit:   fetchLimit,
	}

	resources, err := resourceService.FetchResources(context.Background(), query)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if fetchJSON {
		return outputResourcesJSON(cmd, resources)
	}

	return outputResourcesTable(cmd, resources)
}

// parseFilters converts repeated key=value flags into a filter map.
func parseFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

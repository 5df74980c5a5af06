package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

var (
	searchSources []string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search resources across providers",
	Long: `Performs free-text search across the selected providers.

Without --source the search fans out to every configured provider;
providers that fail are skipped. Repeat --source to search a subset.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchSources, "source", "s", nil, "provider to search (repeatable; default all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}

	sources := domain.ParseQuerySources(searchSources)

	results, err := resourceService.Search(context.Background(), args[0], sources)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResourcesJSON(cmd, results)
	}

	return outputResourcesTable(cmd, results)
}

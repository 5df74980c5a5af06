package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get [resource-id]",
	Short: "Fetch a single resource by ID",
	Long: `Resolves a resource ID to its full resource, content included.

IDs carrying a provider prefix (notion_..., linear_...) route directly to
that provider. Unprefixed IDs are tried against every provider in turn.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output the resource as JSON")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}

	resource, err := resourceService.FetchResourceByID(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	if getJSON {
		data, err := json.MarshalIndent(resource, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resource: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputResourceDetail(cmd, resource)
	return nil
}

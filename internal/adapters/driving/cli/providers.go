package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured providers",
	Long:  `Lists the providers registered with the aggregator, in registry order.`,
	Args:  cobra.NoArgs,
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, _ []string) error {
	if resourceService == nil {
		return errors.New("resource service not configured")
	}

	names := resourceService.ListProviders()
	if len(names) == 0 {
		cmd.Println("No providers configured.")
		cmd.Println("Set NOTION_API_KEY or LINEAR_API_KEY, or run 'relay config set'.")
		return nil
	}

	cmd.Println("Configured providers:")
	for _, name := range names {
		cmd.Printf("  - %s\n", name)
	}
	return nil
}

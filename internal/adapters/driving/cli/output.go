package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

func outputResourcesJSON(cmd *cobra.Command, resources []domain.Resource) error {
	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resources: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResourcesTable(cmd *cobra.Command, resources []domain.Resource) error {
	if len(resources) == 0 {
		cmd.Println("No resources found.")
		return nil
	}

	cmd.Println("Resources:")
	cmd.Println()
	for i := range resources {
		title := resources[i].Title
		if title == "" {
			title = resources[i].ID
		}

		cmd.Printf("  [%d] %s\n", i+1, title)
		cmd.Printf("      ID: %s\n", resources[i].ID)
		cmd.Printf("      Source: %s\n", resources[i].Source)
		cmd.Println()
	}

	cmd.Printf("Total: %d resources\n", len(resources))
	return nil
}

func outputResourceDetail(cmd *cobra.Command, r *domain.Resource) {
	cmd.Printf("Resource: %s\n\n", r.ID)
	cmd.Printf("  Title:    %s\n", r.Title)
	cmd.Printf("  Source:   %s\n", r.Source)
	cmd.Printf("  Created:  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", r.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(r.Metadata) > 0 {
		cmd.Println("\n  Metadata:")
		for k, v := range r.Metadata {
			cmd.Printf("    %s: %v\n", k, v)
		}
	}

	if r.Content != "" {
		cmd.Println("\n  Content:")
		cmd.Println(r.Content)
	}
}

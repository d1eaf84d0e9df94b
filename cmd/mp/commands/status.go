package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fairground-io/mpapi/internal/constants"
	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check API health",
		Long:  "Query the /_status endpoint of the Data API, and of the Search API when one is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			status, err := client.GetStatus(ctx)
			if err != nil {
				return fmt.Errorf("failed to get Data API status: %w", err)
			}

			results := map[string]*mpapi.Status{"data-api": status}

			// Search API is optional; only checked when configured.
			if viper.GetString("search_api") != "" {
				searchClient, err := CreateSearchClient()
				if err != nil {
					return err
				}

				searchStatus, err := searchClient.GetStatus(ctx)
				if err != nil {
					return fmt.Errorf("failed to get Search API status: %w", err)
				}

				results["search-api"] = searchStatus
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(results)
			case OutputFormatYAML:
				return StandardYAMLRenderer(results)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("API", "Status", "Version")

				for name, apiStatus := range results {
					_ = table.Append(name, apiStatus.Status, apiStatus.Version)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

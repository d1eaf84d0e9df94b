package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// NewSearchCommand creates the search command group.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Query the Search API",
		Long:  "Run full-text queries against a search index and manage index aliases",
	}

	cmd.AddCommand(newSearchQueryCommand())
	cmd.AddCommand(newSearchAliasCommand())

	return cmd
}

func newSearchQueryCommand() *cobra.Command {
	var (
		all      bool
		maxItems int
		filters  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "query INDEX [QUERY]",
		Short: "Search an index",
		Long:  "Run a full-text query against a search index and print the matching documents",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexName := args[0]

			query := ""
			if len(args) > 1 {
				query = args[1]
			}

			return runSearchQueryCommand(indexName, query, all, maxItems, filters)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fetch all result pages")
	cmd.Flags().IntVar(&maxItems, "max", 0, "stop after this many documents (0 = no limit)")
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "filter parameters (key=value)")

	return cmd
}

func runSearchQueryCommand(indexName, query string, all bool, maxItems int, filters map[string]string) error {
	client, err := CreateSearchClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := mpapi.NewQueryParams()
	if query != "" {
		params.WithQuery(query)
	}

	for key, value := range filters {
		params.WithFilter(key, value)
	}

	var documents []mpapi.Document

	if all || maxItems > 0 {
		path := "/" + indexName + "/search"
		iterator := mpapi.NewPageIterator[mpapi.Document](ctx, client, path, params)

		documents, err = collectPages(iterator, maxItems)
	} else {
		var page *mpapi.Page[mpapi.Document]

		page, err = client.Search(ctx, indexName, params)
		if page != nil {
			documents = page.Items
		}
	}

	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(documents)
	case OutputFormatYAML:
		return StandardYAMLRenderer(documents)
	default:
		if len(documents) == 0 {
			_, _ = os.Stdout.WriteString("No documents found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name")

		for _, document := range documents {
			name, _ := document["serviceName"].(string)
			_ = table.Append(document.ID(), name)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newSearchAliasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-alias ALIAS INDEX",
		Short: "Point an alias at an index",
		Long:  "Atomically repoint a search alias at a concrete index generation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateSearchClient()
			if err != nil {
				return err
			}

			err = client.SetAlias(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to set alias: %w", err)
			}

			fmt.Printf("Alias %s now points at %s\n", args[0], args[1])

			return nil
		},
	}
}

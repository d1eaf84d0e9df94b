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

// NewServicesCommand creates the services command group.
func NewServicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "services",
		Aliases: []string{"service"},
		Short:   "Manage services",
		Long:    "List, inspect, and update marketplace service listings",
	}

	cmd.AddCommand(newServicesListCommand())
	cmd.AddCommand(newServicesGetCommand())
	cmd.AddCommand(newServicesSetStatusCommand())

	return cmd
}

func newServicesListCommand() *cobra.Command {
	var (
		all        bool
		maxItems   int
		supplierID string
		framework  string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List services",
		Long:  "List service listings, optionally filtered by supplier, framework, or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServicesListCommand(all, maxItems, supplierID, framework, status)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&maxItems, "max", 0, "stop after this many services (0 = no limit)")
	cmd.Flags().StringVar(&supplierID, "supplier-id", "", "filter by supplier ID")
	cmd.Flags().StringVar(&framework, "framework", "", "filter by framework slug")
	cmd.Flags().StringVar(&status, "status", "", "filter by lifecycle status")

	return cmd
}

func runServicesListCommand(all bool, maxItems int, supplierID, framework, status string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := mpapi.NewQueryParams()
	if supplierID != "" {
		params.WithFilter("supplier_id", supplierID)
	}

	if framework != "" {
		params.WithFilter("framework", framework)
	}

	if status != "" {
		params.WithFilter("status", status)
	}

	var services []mpapi.Service

	if all || maxItems > 0 {
		iterator := mpapi.NewPageIterator[mpapi.Service](ctx, client.Services(), "/services", params)

		services, err = collectPages(iterator, maxItems)
		if err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}
	} else {
		page, err := client.Services().List(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}

		services = page.Items
	}

	return outputServices(services)
}

func outputServices(services []mpapi.Service) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(services)
	case OutputFormatYAML:
		return StandardYAMLRenderer(services)
	default:
		return renderServicesTable(services)
	}
}

func renderServicesTable(services []mpapi.Service) error {
	if len(services) == 0 {
		_, _ = os.Stdout.WriteString("No services found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Supplier", "Framework", "Lot", "Status")

	for _, service := range services {
		_ = table.Append(service.ID, service.Title,
			fmt.Sprintf("%d", service.SupplierID),
			service.FrameworkSlug, service.Lot, service.Status)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newServicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVICE_ID",
		Short: "Get service details",
		Long:  "Display detailed information about a specific service listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			service, err := client.Services().Get(context.Background(), args[0])
			if err != nil {
				if mpapi.IsNotFound(err) {
					return fmt.Errorf("service '%s' not found", args[0])
				}

				return fmt.Errorf("failed to get service: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(service)
			case OutputFormatYAML:
				return StandardYAMLRenderer(service)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", service.ID)
				_ = table.Append("Name", service.Title)
				_ = table.Append("Supplier", fmt.Sprintf("%d", service.SupplierID))
				_ = table.Append("Framework", service.FrameworkSlug)
				_ = table.Append("Lot", service.Lot)
				_ = table.Append("Status", service.Status)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newServicesSetStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status SERVICE_ID STATUS",
		Short: "Change a service's lifecycle status",
		Long:  "Transition a service to a new lifecycle status (published, enabled, disabled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			service, err := client.Services().UpdateStatus(context.Background(), args[0], args[1], "")
			if err != nil {
				return fmt.Errorf("failed to update service status: %w", err)
			}

			fmt.Printf("Service %s is now %s\n", service.ID, service.Status)

			return nil
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// NewSuppliersCommand creates the suppliers command group.
func NewSuppliersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suppliers",
		Aliases: []string{"supplier"},
		Short:   "Manage suppliers",
		Long:    "List and inspect registered supplier organisations",
	}

	cmd.AddCommand(newSuppliersListCommand())
	cmd.AddCommand(newSuppliersGetCommand())

	return cmd
}

func newSuppliersListCommand() *cobra.Command {
	var (
		all       bool
		framework string
		prefix    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		Long:  "List suppliers, optionally restricted to a framework or a name prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuppliersListCommand(all, framework, prefix)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&framework, "framework", "", "list suppliers on a framework")
	cmd.Flags().StringVar(&prefix, "prefix", "", "filter by name prefix")

	return cmd
}

func runSuppliersListCommand(all bool, framework, prefix string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := mpapi.NewQueryParams()
	if prefix != "" {
		params.WithFilter("prefix", prefix)
	}

	var suppliers []mpapi.Supplier

	switch {
	case framework != "" && all:
		path := "/frameworks/" + framework + "/suppliers"
		iterator := mpapi.NewPageIterator[mpapi.Supplier](ctx, client.Suppliers(), path, params)

		suppliers, err = collectPages(iterator, 0)
	case framework != "":
		var page *mpapi.Page[mpapi.Supplier]

		page, err = client.Suppliers().ListForFramework(ctx, framework, params)
		if page != nil {
			suppliers = page.Items
		}
	case all:
		iterator := mpapi.NewPageIterator[mpapi.Supplier](ctx, client.Suppliers(), "/suppliers", params)

		suppliers, err = collectPages(iterator, 0)
	default:
		var page *mpapi.Page[mpapi.Supplier]

		page, err = client.Suppliers().List(ctx, params)
		if page != nil {
			suppliers = page.Items
		}
	}

	if err != nil {
		return fmt.Errorf("failed to list suppliers: %w", err)
	}

	return outputSuppliers(suppliers)
}

func outputSuppliers(suppliers []mpapi.Supplier) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(suppliers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(suppliers)
	default:
		if len(suppliers) == 0 {
			_, _ = os.Stdout.WriteString("No suppliers found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "DUNS")

		for _, supplier := range suppliers {
			_ = table.Append(strconv.Itoa(supplier.ID), supplier.Name, supplier.DunsNumber)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newSuppliersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUPPLIER_ID",
		Short: "Get supplier details",
		Long:  "Display detailed information about a specific supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			supplierID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid supplier ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			supplier, err := client.Suppliers().Get(context.Background(), supplierID)
			if err != nil {
				if mpapi.IsNotFound(err) {
					return fmt.Errorf("supplier %d not found", supplierID)
				}

				return fmt.Errorf("failed to get supplier: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(supplier)
			case OutputFormatYAML:
				return StandardYAMLRenderer(supplier)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(supplier.ID))
				_ = table.Append("Name", supplier.Name)
				_ = table.Append("DUNS", supplier.DunsNumber)
				_ = table.Append("Description", supplier.Description)

				for _, contact := range supplier.ContactInformation {
					_ = table.Append("Contact", fmt.Sprintf("%s <%s>", contact.ContactName, contact.Email))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

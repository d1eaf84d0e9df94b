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

// NewFrameworksCommand creates the frameworks command group.
func NewFrameworksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "frameworks",
		Aliases: []string{"framework"},
		Short:   "Manage frameworks",
		Long:    "List procurement frameworks and manage supplier interest",
	}

	cmd.AddCommand(newFrameworksListCommand())
	cmd.AddCommand(newFrameworksGetCommand())
	cmd.AddCommand(newFrameworksInterestCommand())

	return cmd
}

func newFrameworksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List frameworks",
		Long:  "List all procurement framework iterations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Frameworks().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list frameworks: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(page.Items)
			case OutputFormatYAML:
				return StandardYAMLRenderer(page.Items)
			default:
				if len(page.Items) == 0 {
					_, _ = os.Stdout.WriteString("No frameworks found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Slug", "Name", "Status")

				for _, framework := range page.Items {
					_ = table.Append(framework.Slug, framework.Name, framework.Status)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newFrameworksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FRAMEWORK_SLUG",
		Short: "Get framework details",
		Long:  "Display detailed information about a framework iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			framework, err := client.Frameworks().Get(context.Background(), args[0])
			if err != nil {
				if mpapi.IsNotFound(err) {
					return fmt.Errorf("framework '%s' not found", args[0])
				}

				return fmt.Errorf("failed to get framework: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(framework)
			case OutputFormatYAML:
				return StandardYAMLRenderer(framework)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Slug", framework.Slug)
				_ = table.Append("Name", framework.Name)
				_ = table.Append("Status", framework.Status)
				_ = table.Append("Clarifications open", strconv.FormatBool(framework.ClarificationsOpen))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newFrameworksInterestCommand() *cobra.Command {
	var register bool

	cmd := &cobra.Command{
		Use:   "interest FRAMEWORK_SLUG SUPPLIER_ID",
		Short: "Show or register framework interest",
		Long:  "Show a supplier's interest record for a framework, or register interest with --register",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			supplierID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid supplier ID %q: %w", args[1], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var interest *mpapi.FrameworkInterest

			if register {
				interest, err = client.Frameworks().RegisterInterest(ctx, args[0], supplierID, "")
				if err != nil {
					return fmt.Errorf("failed to register interest: %w", err)
				}

				fmt.Printf("Registered supplier %d on framework %s\n", supplierID, args[0])
			} else {
				interest, err = client.Frameworks().GetInterest(ctx, args[0], supplierID)
				if err != nil {
					if mpapi.IsNotFound(err) {
						return fmt.Errorf("supplier %d has no interest record for '%s'", supplierID, args[0])
					}

					return fmt.Errorf("failed to get interest: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(interest)
			case OutputFormatYAML:
				return StandardYAMLRenderer(interest)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Supplier", strconv.Itoa(interest.SupplierID))
				_ = table.Append("Framework", interest.FrameworkSlug)
				_ = table.Append("On framework", strconv.FormatBool(interest.OnFramework))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&register, "register", false, "register interest instead of showing it")

	return cmd
}

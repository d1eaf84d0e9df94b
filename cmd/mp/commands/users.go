package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fairground-io/mpapi/pkg/mpapi"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "Look up and deactivate marketplace accounts",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersDeactivateCommand())

	return cmd
}

// getUser resolves a numeric ID or an email address to a user record.
func getUser(ctx context.Context, client mpapi.Client, idOrEmail string) (*mpapi.User, error) {
	if strings.Contains(idOrEmail, "@") {
		return client.Users().GetByEmail(ctx, idOrEmail)
	}

	userID, err := strconv.Atoi(idOrEmail)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID or email %q: %w", idOrEmail, err)
	}

	return client.Users().Get(ctx, userID)
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID_OR_EMAIL",
		Short: "Get user details",
		Long:  "Display a user account, looked up by numeric ID or email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := getUser(context.Background(), client, args[0])
			if err != nil {
				if mpapi.IsNotFound(err) {
					return fmt.Errorf("user '%s' not found", args[0])
				}

				return fmt.Errorf("failed to get user: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(user)
			case OutputFormatYAML:
				return StandardYAMLRenderer(user)
			default:
				active := "no"
				if user.Active {
					active = "yes"
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(user.ID))
				_ = table.Append("Name", user.Name)
				_ = table.Append("Email", user.EmailAddress)
				_ = table.Append("Role", user.Role)
				_ = table.Append("Active", active)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newUsersDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate USER_ID_OR_EMAIL",
		Short: "Deactivate a user account",
		Long:  "Mark a user account as inactive so it can no longer log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			user, err := getUser(ctx, client, args[0])
			if err != nil {
				return fmt.Errorf("failed to find user: %w", err)
			}

			updated, err := client.Users().Update(ctx, user.ID, &mpapi.UserUpdateRequest{
				User: map[string]interface{}{"active": false},
			})
			if err != nil {
				return fmt.Errorf("failed to deactivate user: %w", err)
			}

			fmt.Printf("Deactivated user %d (%s)\n", updated.ID, updated.EmailAddress)

			return nil
		},
	}
}

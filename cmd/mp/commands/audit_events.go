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

// NewAuditEventsCommand creates the audit-events command group.
func NewAuditEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "audit-events",
		Aliases: []string{"audit"},
		Short:   "Inspect audit events",
		Long:    "List and acknowledge audit events recorded by the Data API",
	}

	cmd.AddCommand(newAuditEventsListCommand())
	cmd.AddCommand(newAuditEventsAckCommand())

	return cmd
}

func newAuditEventsListCommand() *cobra.Command {
	var (
		all       bool
		maxItems  int
		eventType string
		unacked   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit events",
		Long:  "List audit events, optionally filtered by type or acknowledgement state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuditEventsListCommand(all, maxItems, eventType, unacked)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&maxItems, "max", 0, "stop after this many events (0 = no limit)")
	cmd.Flags().StringVar(&eventType, "type", "", "filter by event type")
	cmd.Flags().BoolVar(&unacked, "unacknowledged", false, "only unacknowledged events")

	return cmd
}

func runAuditEventsListCommand(all bool, maxItems int, eventType string, unacked bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := mpapi.NewQueryParams()
	if eventType != "" {
		params.WithFilter("audit-type", eventType)
	}

	if unacked {
		params.WithFilter("acknowledged", "false")
	}

	var events []mpapi.AuditEvent

	if all || maxItems > 0 {
		iterator := mpapi.NewPageIterator[mpapi.AuditEvent](ctx, client.AuditEvents(), "/audit-events", params)

		events, err = collectPages(iterator, maxItems)
	} else {
		var page *mpapi.Page[mpapi.AuditEvent]

		page, err = client.AuditEvents().List(ctx, params)
		if page != nil {
			events = page.Items
		}
	}

	if err != nil {
		return fmt.Errorf("failed to list audit events: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(events)
	case OutputFormatYAML:
		return StandardYAMLRenderer(events)
	default:
		if len(events) == 0 {
			_, _ = os.Stdout.WriteString("No audit events found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Type", "User", "Object", "Acked", "Created")

		for _, event := range events {
			object := event.ObjectType
			if event.ObjectID != "" {
				object = fmt.Sprintf("%s/%s", event.ObjectType, event.ObjectID)
			}

			_ = table.Append(strconv.Itoa(event.ID), event.Type, event.User, object,
				strconv.FormatBool(event.Acknowledged),
				event.CreatedAt.Format("2006-01-02 15:04"))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newAuditEventsAckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "acknowledge EVENT_ID",
		Short: "Acknowledge an audit event",
		Long:  "Mark an audit event as processed; requires an attribution identity (--updated-by or config)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid event ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.AuditEvents().Acknowledge(context.Background(), eventID, viper.GetString("updated_by"))
			if err != nil {
				return fmt.Errorf("failed to acknowledge audit event: %w", err)
			}

			fmt.Printf("Acknowledged audit event %d\n", eventID)

			return nil
		},
	}
}

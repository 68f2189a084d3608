package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// NewOrderCommand creates the order command group.
func NewOrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order",
		Aliases: []string{"orders", "o"},
		Short:   "Manage orders",
		Long:    "List, place and update the orders of the restaurant",
	}

	cmd.AddCommand(newOrderListCommand())
	cmd.AddCommand(newOrderGetCommand())
	cmd.AddCommand(newOrderCreateCommand())
	cmd.AddCommand(newOrderUpdateCommand())

	return cmd
}

// OrderFlags holds the flags shared by order create and update.
type OrderFlags struct {
	BurgerIDs []int
	Time      string
	Table     int
	Status    string
	Note      string
}

func (f *OrderFlags) register(cmd *cobra.Command) {
	statuses := make([]string, 0, len(burgers.OrderStatuses()))
	for _, status := range burgers.OrderStatuses() {
		statuses = append(statuses, string(status))
	}

	cmd.Flags().IntSliceVarP(&f.BurgerIDs, "burger-id", "b", nil, "burger ID, repeatable or comma separated")
	cmd.Flags().StringVar(&f.Time, "time", "", "order time in RFC 3339 format")
	cmd.Flags().IntVarP(&f.Table, "table", "t", 0, "table number")
	cmd.Flags().StringVar(&f.Status, "status", "", "order status ("+strings.Join(statuses, ", ")+")")
	cmd.Flags().StringVar(&f.Note, "note", "", "free-form note for the kitchen")
}

func (f *OrderFlags) parseStatus() (burgers.OrderStatus, error) {
	status := burgers.OrderStatus(f.Status)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOrderStatus, f.Status)
	}

	return status, nil
}

func (f *OrderFlags) parseTime() (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, f.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", constants.ErrInvalidOrderTime, f.Time)
	}

	return parsed, nil
}

func newOrderListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List every order",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			orders, err := client.Order().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			return renderOrders(cmd, orders)
		},
	}
}

func newOrderGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID(args[0], constants.ErrInvalidOrderID)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Order().Get(cmd.Context(), orderID)
			if err != nil {
				return fmt.Errorf("failed to get order %d: %w", orderID, err)
			}

			return renderOrders(cmd, order)
		},
	}
}

func newOrderCreateCommand() *cobra.Command {
	var flags OrderFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order",
		Long:  "Place a new order for a table. The time defaults to now and the status to pending.",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := buildOrderCreate(cmd, &flags)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Order().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}

			return renderOrders(cmd, order)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("burger-id")

	return cmd
}

func buildOrderCreate(cmd *cobra.Command, flags *OrderFlags) (*burgers.OrderCreate, error) {
	request := &burgers.OrderCreate{
		BurgerIDs: flags.BurgerIDs,
		Time:      time.Now().UTC().Truncate(time.Second),
		Table:     flags.Table,
		Status:    burgers.OrderStatusPending,
	}

	if cmd.Flags().Changed("time") {
		orderTime, err := flags.parseTime()
		if err != nil {
			return nil, err
		}

		request.Time = orderTime
	}

	if cmd.Flags().Changed("status") {
		status, err := flags.parseStatus()
		if err != nil {
			return nil, err
		}

		request.Status = status
	}

	if cmd.Flags().Changed("note") {
		request.Note = &flags.Note
	}

	return request, nil
}

func newOrderUpdateCommand() *cobra.Command {
	var flags OrderFlags

	cmd := &cobra.Command{
		Use:   "update ORDER_ID",
		Short: "Update an order",
		Long:  "Change an existing order. Only the given flags are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID(args[0], constants.ErrInvalidOrderID)
			if err != nil {
				return err
			}

			request, err := buildOrderUpdate(cmd, &flags)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Order().Update(cmd.Context(), orderID, request)
			if err != nil {
				return fmt.Errorf("failed to update order %d: %w", orderID, err)
			}

			return renderOrders(cmd, order)
		},
	}

	flags.register(cmd)

	return cmd
}

func buildOrderUpdate(cmd *cobra.Command, flags *OrderFlags) (*burgers.OrderUpdate, error) {
	request := &burgers.OrderUpdate{}
	changed := false

	if cmd.Flags().Changed("burger-id") {
		request.BurgerIDs = flags.BurgerIDs
		changed = true
	}

	if cmd.Flags().Changed("time") {
		orderTime, err := flags.parseTime()
		if err != nil {
			return nil, err
		}

		request.Time = &orderTime
		changed = true
	}

	if cmd.Flags().Changed("table") {
		request.Table = &flags.Table
		changed = true
	}

	if cmd.Flags().Changed("status") {
		status, err := flags.parseStatus()
		if err != nil {
			return nil, err
		}

		request.Status = &status
		changed = true
	}

	if cmd.Flags().Changed("note") {
		request.Note = &flags.Note
		changed = true
	}

	if !changed {
		return nil, constants.ErrNothingToUpdate
	}

	return request, nil
}

// renderOrders prints an order or a list of orders.
func renderOrders(cmd *cobra.Command, data interface{}) error {
	var orders []burgers.Order

	switch value := data.(type) {
	case []burgers.Order:
		orders = value
	case *burgers.Order:
		orders = []burgers.Order{*value}
	}

	return render(cmd.OutOrStdout(), data, func() error {
		if len(orders) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No orders found")

			return nil
		}

		width := descriptionWidth()
		rows := make([][]string, 0, len(orders))

		for _, order := range orders {
			burgerIDs := make([]string, 0, len(order.BurgerIDs))
			for _, burgerID := range order.BurgerIDs {
				burgerIDs = append(burgerIDs, strconv.Itoa(burgerID))
			}

			rows = append(rows, []string{
				strconv.Itoa(order.ID),
				strconv.Itoa(order.Table),
				string(order.Status),
				strings.Join(burgerIDs, ","),
				order.Time.Format(time.RFC3339),
				truncate(optional(order.Note), width),
			})
		}

		return renderTable(cmd.OutOrStdout(), []string{"ID", "Table", "Status", "Burgers", "Time", "Note"}, rows)
	})
}

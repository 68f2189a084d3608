package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// NewBurgerCommand creates the burger command group.
func NewBurgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "burger",
		Aliases: []string{"burgers", "b"},
		Short:   "Manage burgers",
		Long:    "List, create, update and delete the burgers on the menu",
	}

	cmd.AddCommand(newBurgerListCommand())
	cmd.AddCommand(newBurgerGetCommand())
	cmd.AddCommand(newBurgerCreateCommand())
	cmd.AddCommand(newBurgerUpdateCommand())
	cmd.AddCommand(newBurgerDeleteCommand())

	return cmd
}

func newBurgerListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List burgers",
		Long:  "List every burger on the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			menu, err := client.Burger().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list burgers: %w", err)
			}

			return renderBurgers(cmd, menu)
		},
	}
}

func newBurgerGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BURGER_ID",
		Short: "Get burger details",
		Long:  "Display a single burger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			burgerID, err := parseID(args[0], constants.ErrInvalidBurgerID)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			burger, err := client.Burger().Get(cmd.Context(), burgerID)
			if err != nil {
				return fmt.Errorf("failed to get burger %d: %w", burgerID, err)
			}

			return renderBurgers(cmd, burger)
		},
	}
}

func newBurgerCreateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a burger",
		Long:  "Add a new burger to the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &burgers.BurgerCreate{Name: name}
			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			burger, err := client.Burger().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create burger: %w", err)
			}

			return renderBurgers(cmd, burger)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "burger name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "burger description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBurgerUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update BURGER_ID",
		Short: "Update a burger",
		Long:  "Change the name or description of a burger. Only the given flags are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			burgerID, err := parseID(args[0], constants.ErrInvalidBurgerID)
			if err != nil {
				return err
			}

			request := &burgers.BurgerUpdate{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if request.Name == nil && request.Description == nil {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			burger, err := client.Burger().Update(cmd.Context(), burgerID, request)
			if err != nil {
				return fmt.Errorf("failed to update burger %d: %w", burgerID, err)
			}

			return renderBurgers(cmd, burger)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new burger name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new burger description")

	return cmd
}

func newBurgerDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BURGER_ID",
		Short: "Delete a burger",
		Long:  "Remove a burger from the menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			burgerID, err := parseID(args[0], constants.ErrInvalidBurgerID)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Burger().Delete(cmd.Context(), burgerID)
			if err != nil {
				return fmt.Errorf("failed to delete burger %d: %w", burgerID, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Burger %d deleted\n", burgerID)

			return nil
		},
	}
}

// renderBurgers prints a burger or a list of burgers.
func renderBurgers(cmd *cobra.Command, data interface{}) error {
	var menu []burgers.Burger

	switch value := data.(type) {
	case []burgers.Burger:
		menu = value
	case *burgers.Burger:
		menu = []burgers.Burger{*value}
	}

	return render(cmd.OutOrStdout(), data, func() error {
		if len(menu) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No burgers found")

			return nil
		}

		width := descriptionWidth()
		rows := make([][]string, 0, len(menu))

		for _, burger := range menu {
			rows = append(rows, []string{
				strconv.Itoa(burger.ID),
				burger.Name,
				truncate(optional(burger.Description), width),
			})
		}

		return renderTable(cmd.OutOrStdout(), []string{"ID", "Name", "Description"}, rows)
	})
}

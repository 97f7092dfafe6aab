package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	cmd.AddCommand(c.newCartAddCmd())
	cmd.AddCommand(c.newCartRemoveCmd())
	cmd.AddCommand(c.newCartSetCmd())
	cmd.AddCommand(c.newCartClearCmd())
	cmd.AddCommand(c.newCartShowCmd())
	cmd.AddCommand(c.newCartWatchCmd())

	return cmd
}

func (c *CLI) newCartAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, _ := cmd.Flags().GetInt("qty")
			pairs, _ := cmd.Flags().GetStringArray("variant")

			variant, err := parseVariant(pairs)
			if err != nil {
				return err
			}

			return c.app.AddToCart(cmd.Context(), domain.ProductID(args[0]), variant, qty)
		},
	}
	cmd.Flags().IntP("qty", "q", 1, "Quantity to add")
	cmd.Flags().StringArrayP("variant", "v", nil, "Variant option as key=value (repeatable)")
	return cmd
}

func (c *CLI) newCartRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("variant")

			variant, err := parseVariant(pairs)
			if err != nil {
				return err
			}

			return c.app.RemoveFromCart(cmd.Context(), domain.ProductID(args[0]), variant)
		},
	}
	cmd.Flags().StringArrayP("variant", "v", nil, "Variant option as key=value (repeatable)")
	return cmd
}

func (c *CLI) newCartSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set the quantity of a cart line (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return zerr.With(domain.ErrInvalidQuantity, "quantity", args[1])
			}
			pairs, _ := cmd.Flags().GetStringArray("variant")

			variant, err := parseVariant(pairs)
			if err != nil {
				return err
			}

			return c.app.SetQuantity(cmd.Context(), domain.ProductID(args[0]), variant, qty)
		},
	}
	cmd.Flags().StringArrayP("variant", "v", nil, "Variant option as key=value (repeatable)")
	return cmd
}

func (c *CLI) newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ClearCart(cmd.Context())
		},
	}
}

func (c *CLI) newCartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ShowCart(cmd.Context())
		},
	}
}

func (c *CLI) newCartWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the cart as it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Watch(cmd.Context(), outputMode)
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}

// parseVariant turns repeated key=value flags into a variant selection.
func parseVariant(pairs []string) (domain.Variant, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	variant := make(domain.Variant, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, zerr.With(domain.ErrInvalidVariant, "option", pair)
		}
		variant[key] = value
	}
	return variant, nil
}

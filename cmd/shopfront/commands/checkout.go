package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Check out the cart and empty it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Checkout(cmd.Context())
		},
	}
}

// Package commands implements the CLI commands for the shopfront tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shopfront/internal/build"
	"go.trai.ch/shopfront/internal/core/domain"
)

// CLI represents the command line interface for shopfront.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Browse(ctx context.Context) error
	AddToCart(ctx context.Context, id domain.ProductID, variant domain.Variant, quantity int) error
	RemoveFromCart(ctx context.Context, id domain.ProductID, variant domain.Variant) error
	SetQuantity(ctx context.Context, id domain.ProductID, variant domain.Variant, quantity int) error
	ClearCart(ctx context.Context) error
	ShowCart(ctx context.Context) error
	Watch(ctx context.Context, outputMode string) error
	Checkout(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "shopfront",
		Short:         "A terminal storefront with a durable shopping cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBrowseCmd())
	rootCmd.AddCommand(c.newCartCmd())
	rootCmd.AddCommand(c.newCheckoutCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

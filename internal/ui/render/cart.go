// Package render formats cart and catalog state for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(style.Iris)
	dimStyle   = lipgloss.NewStyle().Foreground(style.Slate)
	totalStyle = lipgloss.NewStyle().Bold(true)
)

// currencySymbols maps ISO codes to their display symbol. Codes without an
// entry render as a prefix, e.g. "CHF 12.00".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Money formats an amount of minor currency units for display.
func Money(cents int64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	return fmt.Sprintf("%s%d.%02d", symbol, cents/100, cents%100)
}

// lineLabel names a cart line for display. An unresolved product renders
// its raw identifier so the cart stays readable during hydration.
func lineLabel(line domain.HydratedLine) string {
	label := line.ProductID.String()
	if line.Product != nil {
		label = line.Product.Title
	}
	if len(line.Variant) > 0 {
		label += " (" + line.Variant.Canonical() + ")"
	}
	if line.Product == nil {
		label += " " + dimStyle.Render("(loading)")
	}
	return label
}

// Cart renders the cart lines with per-line subtotals and a grand total.
func Cart(lines []domain.HydratedLine, currency string) string {
	if len(lines) == 0 {
		return dimStyle.Render("Your cart is empty.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart") + "\n")

	var totalItems int
	var totalCents int64
	for _, line := range lines {
		totalItems += line.Quantity
		totalCents += line.SubtotalCents()

		b.WriteString(fmt.Sprintf("  %3d x %-42s %10s %12s\n",
			line.Quantity,
			lineLabel(line),
			Money(line.UnitPriceCents, currency),
			Money(line.SubtotalCents(), currency),
		))
	}

	b.WriteString(dimStyle.Render(strings.Repeat("-", 72)) + "\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("  %s, total %s",
		itemCount(totalItems), Money(totalCents, currency))) + "\n")

	return b.String()
}

// CheckoutSummary renders the order confirmation for a completed checkout.
func CheckoutSummary(lines []domain.HydratedLine, currency string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order summary") + "\n")

	var totalItems int
	var totalCents int64
	for _, line := range lines {
		totalItems += line.Quantity
		totalCents += line.SubtotalCents()

		b.WriteString(fmt.Sprintf("  %3d x %-42s %12s\n",
			line.Quantity,
			lineLabel(line),
			Money(line.SubtotalCents(), currency),
		))
	}

	b.WriteString(fmt.Sprintf("\n%s %s\n",
		style.Check,
		totalStyle.Render(fmt.Sprintf("checked out %s for %s",
			itemCount(totalItems), Money(totalCents, currency)))))

	return b.String()
}

// Products renders the catalog listing for browsing.
func Products(products []domain.Product, currency string) string {
	if len(products) == 0 {
		return dimStyle.Render("The catalog is empty.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Catalog") + "\n")
	for _, p := range products {
		b.WriteString(fmt.Sprintf("  %-12s %-36s %10s\n",
			p.ID, p.Title, Money(p.PriceCents, currency)))
		if p.Description != "" {
			b.WriteString("    " + dimStyle.Render(p.Description) + "\n")
		}
		if len(p.Tags) > 0 {
			b.WriteString("    " + dimStyle.Render(strings.Join(p.Tags, ", ")) + "\n")
		}
	}
	return b.String()
}

// WatchLine renders the compact single-line summary used by the plain
// watch mode.
func WatchLine(lines []domain.HydratedLine, currency string) string {
	var totalItems int
	var totalCents int64
	for _, line := range lines {
		totalItems += line.Quantity
		totalCents += line.SubtotalCents()
	}
	return fmt.Sprintf("cart: %s, %s", itemCount(totalItems), Money(totalCents, currency))
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

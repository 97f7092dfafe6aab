// Package toast implements cart mutation notifications as styled one-line
// messages on the terminal.
package toast

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/shopfront/internal/ui/output"
	"go.trai.ch/shopfront/internal/ui/style"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier implements ports.Notifier by printing a short confirmation line
// for every cart mutation. Writes go to stderr so piped command output
// stays clean.
type Notifier struct {
	out *termenv.Output
}

// New creates a notifier writing to stderr.
func New() *Notifier {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a notifier writing to the given writer.
func NewWithWriter(w io.Writer) *Notifier {
	return &Notifier{out: output.New(w)}
}

// Notify prints a one-line toast for the event. Write failures are ignored;
// notifications are best-effort.
func (n *Notifier) Notify(event ports.CartEvent) {
	msg, color := n.format(event)
	if msg == "" {
		return
	}
	styled := n.out.String(msg).Foreground(termenv.RGBColor(string(color)))
	_, _ = n.out.WriteString(styled.String() + "\n")
}

func (n *Notifier) format(event ports.CartEvent) (string, lipgloss.Color) {
	subject := event.ProductID.String()
	if len(event.Variant) > 0 {
		subject += " (" + event.Variant.Canonical() + ")"
	}

	switch event.Kind {
	case ports.EventLineAdded:
		return fmt.Sprintf("%s added %d x %s, cart now holds %s",
			style.Check, event.Quantity, subject, itemCount(event.TotalItems)), style.Green
	case ports.EventLineRemoved:
		return fmt.Sprintf("%s removed %s, cart now holds %s",
			style.Tilde, subject, itemCount(event.TotalItems)), style.Yellow
	case ports.EventQuantityChanged:
		return fmt.Sprintf("%s set %s to %d, cart now holds %s",
			style.Tilde, subject, event.Quantity, itemCount(event.TotalItems)), style.Yellow
	case ports.EventCartCleared:
		return style.Check + " cart cleared", style.Green
	default:
		return "", style.Slate
	}
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

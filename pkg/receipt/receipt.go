package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Line is a single product block on a ticket.
type Line struct {
	Name           string
	Quantity       int
	UnitPriceCents int64
	TotalCents     int64
}

// Ticket holds everything needed to render a bill ticket.
// Amounts are in cents; rendering converts them to decimals.
type Ticket struct {
	Date          time.Time
	Cashier       string
	Lines         []Line
	SubtotalCents int64
	DiscountCents int64
	TaxCents      int64
	TotalCents    int64
	PaymentMethod string
}

const separator = "-------------------------"

// Render produces the human-readable ticket body.
func (t *Ticket) Render() string {
	var b strings.Builder

	b.WriteString("BILL TICKET\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Date: %s\n", t.Date.Format("2006-01-02 15:04:05"))
	if t.Cashier != "" {
		fmt.Fprintf(&b, "Cashier: %s\n", t.Cashier)
	}
	b.WriteString(separator + "\n")

	for _, line := range t.Lines {
		fmt.Fprintf(&b, "Product: %s\n", line.Name)
		fmt.Fprintf(&b, "Quantity: %d\n", line.Quantity)
		fmt.Fprintf(&b, "Price per Unit: %s USD\n", FormatCents(line.UnitPriceCents))
		fmt.Fprintf(&b, "Total Price: %s USD\n", FormatCents(line.TotalCents))
		b.WriteString(separator + "\n")
	}

	fmt.Fprintf(&b, "Subtotal: %s USD\n", FormatCents(t.SubtotalCents))
	fmt.Fprintf(&b, "Discount: %s USD\n", FormatCents(t.DiscountCents))
	fmt.Fprintf(&b, "Tax: %s USD\n", FormatCents(t.TaxCents))
	fmt.Fprintf(&b, "Total: %s USD\n", FormatCents(t.TotalCents))
	fmt.Fprintf(&b, "Payment: %s\n", t.PaymentMethod)
	b.WriteString(separator + "\n")

	return b.String()
}

// Totals holds the amounts recovered from a rendered ticket.
type Totals struct {
	LineTotals []float64
	Subtotal   float64
	Discount   float64
	Tax        float64
	Total      float64
}

// ParseTotals reads the amounts back out of a rendered ticket body.
func ParseTotals(text string) (*Totals, error) {
	totals := &Totals{}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Total Price: "):
			v, err := parseAmount(line, "Total Price: ")
			if err != nil {
				return nil, err
			}
			totals.LineTotals = append(totals.LineTotals, v)
		case strings.HasPrefix(line, "Subtotal: "):
			v, err := parseAmount(line, "Subtotal: ")
			if err != nil {
				return nil, err
			}
			totals.Subtotal = v
		case strings.HasPrefix(line, "Discount: "):
			v, err := parseAmount(line, "Discount: ")
			if err != nil {
				return nil, err
			}
			totals.Discount = v
		case strings.HasPrefix(line, "Tax: "):
			v, err := parseAmount(line, "Tax: ")
			if err != nil {
				return nil, err
			}
			totals.Tax = v
		case strings.HasPrefix(line, "Total: "):
			v, err := parseAmount(line, "Total: ")
			if err != nil {
				return nil, err
			}
			totals.Total = v
		}
	}

	return totals, nil
}

func parseAmount(line, prefix string) (float64, error) {
	s := strings.TrimSuffix(strings.TrimPrefix(line, prefix), " USD")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	return v, nil
}

// FormatCents renders a cent amount as a 2-decimal string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

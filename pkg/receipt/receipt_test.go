package receipt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTicket() *Ticket {
	return &Ticket{
		Date:    time.Date(2026, 3, 10, 14, 30, 5, 0, time.UTC),
		Cashier: "alice",
		Lines: []Line{
			{Name: "Milk", Quantity: 2, UnitPriceCents: 250, TotalCents: 500},
			{Name: "Bread", Quantity: 3, UnitPriceCents: 199, TotalCents: 597},
		},
		SubtotalCents: 1097,
		DiscountCents: 100,
		TaxCents:      100,
		TotalCents:    1097,
		PaymentMethod: "cash",
	}
}

func TestRenderTicket(t *testing.T) {
	text := sampleTicket().Render()

	assert.True(t, strings.HasPrefix(text, "BILL TICKET\n"))
	assert.Contains(t, text, "Date: 2026-03-10 14:30:05")
	assert.Contains(t, text, "Cashier: alice")
	assert.Contains(t, text, "Product: Milk")
	assert.Contains(t, text, "Quantity: 2")
	assert.Contains(t, text, "Price per Unit: 2.50 USD")
	assert.Contains(t, text, "Total Price: 5.97 USD")
	assert.Contains(t, text, "Subtotal: 10.97 USD")
	assert.Contains(t, text, "Discount: 1.00 USD")
	assert.Contains(t, text, "Tax: 1.00 USD")
	assert.Contains(t, text, "Total: 10.97 USD")
	assert.Contains(t, text, "Payment: cash")
}

func TestRenderOmitsEmptyCashier(t *testing.T) {
	ticket := sampleTicket()
	ticket.Cashier = ""
	assert.NotContains(t, ticket.Render(), "Cashier:")
}

func TestParseTotalsRoundTrip(t *testing.T) {
	ticket := sampleTicket()
	totals, err := ParseTotals(ticket.Render())
	require.NoError(t, err)

	require.Len(t, totals.LineTotals, 2)
	assert.InDelta(t, 5.00, totals.LineTotals[0], 0.001)
	assert.InDelta(t, 5.97, totals.LineTotals[1], 0.001)
	assert.InDelta(t, 10.97, totals.Subtotal, 0.001)
	assert.InDelta(t, 1.00, totals.Discount, 0.001)
	assert.InDelta(t, 1.00, totals.Tax, 0.001)
	assert.InDelta(t, float64(ticket.TotalCents)/100, totals.Total, 0.01)
}

func TestParseTotalsMalformedAmount(t *testing.T) {
	_, err := ParseTotals("Total: abc USD\n")
	require.Error(t, err)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "12.07", FormatCents(1207))
}

func TestStoreWrite(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	at := time.Date(2026, 3, 10, 14, 30, 5, 0, time.UTC)
	path, err := store.Write("hello", at)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "bill_ticket_20260310_143005.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestStoreWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "bills")
	store := NewStore(dir)

	_, err := store.Write("hello", time.Now())
	require.NoError(t, err)
}

func TestStoreWriteFailsOnBadPath(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	store := NewStore(blocked)
	_, err := store.Write("hello", time.Now())
	require.Error(t, err)
}

package reporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantbay/simex/libs/num"
	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/matching"
	"github.com/quantbay/simex/types"
)

func getTestReporter(buf *bytes.Buffer) *Reporter {
	return New(buf, Config{NoColor: true})
}

func getCrossedBook(t *testing.T) *matching.OrderBook {
	t.Helper()
	book := matching.NewOrderBook(logging.NewTestLogger(), matching.NewDefaultConfig(), "ACME")

	_, err := matching.SendOrders(book, []*types.Order{
		book.NewOrder(types.SideSell, num.MustDecimalFromString("10.50"), 1500),
		book.NewOrder(types.SideBuy, num.MustDecimalFromString("10.50"), 400),
	})
	require.NoError(t, err)
	return book
}

func TestPrintBookRendersRestingOrders(t *testing.T) {
	buf := &bytes.Buffer{}
	book := getCrossedBook(t)

	getTestReporter(buf).PrintBook(book)

	out := buf.String()
	assert.Contains(t, out, "ORDER BOOK ACME (1 resting orders)")
	assert.Contains(t, out, "SELL")
	assert.Contains(t, out, "10.50")
	// quantities go through the thousands separator
	assert.Contains(t, out, "1,100")
	assert.Contains(t, out, "1,500")
}

func TestPrintTradesRendersExecutions(t *testing.T) {
	buf := &bytes.Buffer{}
	book := getCrossedBook(t)

	getTestReporter(buf).PrintTrades(book)

	out := buf.String()
	assert.Contains(t, out, "EXECUTED TRADES ACME")
	assert.Contains(t, out, "10.50")
	assert.Contains(t, out, "400")
	assert.Contains(t, out, "BUY")
}

func TestPrintTradesEmptyBook(t *testing.T) {
	buf := &bytes.Buffer{}
	book := matching.NewOrderBook(logging.NewTestLogger(), matching.NewDefaultConfig(), "ACME")

	getTestReporter(buf).PrintTrades(book)

	assert.Contains(t, buf.String(), "no trades executed")
}

func TestPrintPositions(t *testing.T) {
	buf := &bytes.Buffer{}
	book := getCrossedBook(t)

	getTestReporter(buf).PrintPositions(book)

	out := buf.String()
	assert.Contains(t, out, "POSITIONS ACME")
	assert.Contains(t, out, "400")
}

func TestPrintAllPositionsNetsAcrossBooks(t *testing.T) {
	buf := &bytes.Buffer{}
	registry := matching.NewRegistry()
	registry.Add(getCrossedBook(t))
	registry.Add(getCrossedBook(t))

	getTestReporter(buf).PrintAllPositions(registry)

	out := buf.String()
	assert.Contains(t, out, "NET ACROSS BOOKS")
	// two identical books, 400 bought on each
	assert.Contains(t, out, "800")
}

func TestPrintingDoesNotMutateTheBook(t *testing.T) {
	buf := &bytes.Buffer{}
	book := getCrossedBook(t)
	reporter := getTestReporter(buf)

	reporter.PrintBook(book)
	reporter.PrintTrades(book)
	reporter.PrintPositions(book)

	require.Equal(t, 1, len(book.Trades()))
	require.Equal(t, 1, len(book.OfferOrders()))
	assert.Equal(t, uint64(1100), book.OfferOrders()[0].Remaining)
	assert.Equal(t, int64(400), book.Position("ACME"))
}

package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/types"
)

func TestRegistryEnumeratesBooksInRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	log := logging.NewTestLogger()

	a := registry.NewOrderBook(log, NewDefaultConfig(), "AAA")
	b := registry.NewOrderBook(log, NewDefaultConfig(), "BBB")

	books := registry.Books()
	require.Equal(t, 2, len(books))
	assert.Same(t, a, books[0])
	assert.Same(t, b, books[1])
}

func TestRegistryBooksReturnsACopy(t *testing.T) {
	registry := NewRegistry()
	registry.NewOrderBook(logging.NewTestLogger(), NewDefaultConfig(), "AAA")

	books := registry.Books()
	books[0] = nil
	require.NotNil(t, registry.Books()[0])
}

func TestRegistryAllTradesGroupedByBook(t *testing.T) {
	registry := NewRegistry()
	log := logging.NewTestLogger()

	a := registry.NewOrderBook(log, NewDefaultConfig(), "AAA")
	b := registry.NewOrderBook(log, NewDefaultConfig(), "BBB")

	_, err := SendOrders(a, []*types.Order{
		a.NewOrder(types.SideSell, price(t, "100.00"), 10),
		a.NewOrder(types.SideBuy, price(t, "100.00"), 10),
	})
	require.NoError(t, err)

	_, err = SendOrders(b, []*types.Order{
		b.NewOrder(types.SideBuy, price(t, "50.00"), 5),
		b.NewOrder(types.SideSell, price(t, "50.00"), 5),
	})
	require.NoError(t, err)

	trades := registry.AllTrades()
	require.Equal(t, 2, len(trades))
	assert.Equal(t, "AAA", trades[0].Symbol)
	assert.Equal(t, "BBB", trades[1].Symbol)
}

func TestRegistryAllPositionsSumsAcrossBooks(t *testing.T) {
	registry := NewRegistry()
	log := logging.NewTestLogger()

	a := registry.NewOrderBook(log, NewDefaultConfig(), "AAA")
	b := registry.NewOrderBook(log, NewDefaultConfig(), "BBB")

	_, err := SendOrders(a, []*types.Order{
		a.NewOrder(types.SideSell, price(t, "100.00"), 10),
		a.NewOrder(types.SideBuy, price(t, "100.00"), 10), // buy aggressor, +10
	})
	require.NoError(t, err)

	_, err = SendOrders(b, []*types.Order{
		b.NewOrder(types.SideBuy, price(t, "50.00"), 5),
		b.NewOrder(types.SideSell, price(t, "50.00"), 5), // sell aggressor, -5
	})
	require.NoError(t, err)

	all := registry.AllPositions()
	assert.Equal(t, int64(10), all["AAA"])
	assert.Equal(t, int64(-5), all["BBB"])
}

func TestSendOrdersStopsAtFirstRejection(t *testing.T) {
	book := getTestOrderBook(t, "AAA")

	good := book.NewOrder(types.SideBuy, price(t, "100.00"), 10)
	bad := types.NewOrder("BBB", types.SideBuy, price(t, "100.00"), 10)
	bad.ID = 99
	never := book.NewOrder(types.SideSell, price(t, "100.00"), 10)

	confirmations, err := SendOrders(book, []*types.Order{good, bad, never})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSymbolMismatch)
	assert.Contains(t, err.Error(), "order 99")
	assert.Contains(t, err.Error(), "book AAA")

	// the first order made it in, the third was never submitted
	require.Equal(t, 1, len(confirmations))
	assert.Equal(t, 0, len(book.Trades()))
	assert.Equal(t, uint64(10), book.getTotalBuyVolume())
	assert.Equal(t, uint64(0), book.getTotalSellVolume())
}

package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/matching"
	"github.com/quantbay/simex/types"
)

func runScenario(t *testing.T, file *File) *matching.Registry {
	t.Helper()
	registry := matching.NewRegistry()
	err := Run(file, registry, logging.NewTestLogger(), matching.NewDefaultConfig())
	require.NoError(t, err)
	return registry
}

func TestBuiltinScenarioEndState(t *testing.T) {
	registry := runScenario(t, Builtin())

	books := registry.Books()
	require.Equal(t, 3, len(books))

	tesla, toyota, byd := books[0], books[1], books[2]
	assert.Equal(t, "TESLA", tesla.Symbol())
	assert.Equal(t, "TOYOTA", toyota.Symbol())
	assert.Equal(t, "BYD", byd.Symbol())

	// the closing sell sweeps both bids and leaves its tail resting
	trades := tesla.Trades()
	require.Equal(t, 6, len(trades))
	assert.Equal(t, "101.00", trades[0].Price.StringFixed(2))
	assert.Equal(t, types.SideBuy, trades[0].Aggressor)
	last := trades[5]
	assert.Equal(t, uint64(1), last.BuyOrderID)
	assert.Equal(t, uint64(7), last.SellOrderID)
	assert.Equal(t, "100.00", last.Price.StringFixed(2))
	assert.Equal(t, uint64(35), last.Size)
	assert.Equal(t, types.SideSell, last.Aggressor)

	assert.Equal(t, 0, len(tesla.BidOrders()))
	offers := tesla.OfferOrders()
	require.Equal(t, 1, len(offers))
	assert.Equal(t, uint64(7), offers[0].ID)
	assert.Equal(t, uint64(15), offers[0].Remaining)
	assert.Equal(t, "100.00", offers[0].Price.StringFixed(2))
	assert.Equal(t, int64(-5), tesla.Position("TESLA"))

	require.Equal(t, 2, len(toyota.Trades()))
	toffers := toyota.OfferOrders()
	require.Equal(t, 1, len(toffers))
	assert.Equal(t, uint64(2), toffers[0].ID)
	assert.Equal(t, "101.00", toffers[0].Price.StringFixed(2))
	assert.Equal(t, int64(-20), toyota.Position("TOYOTA"))

	assert.Equal(t, 0, len(byd.Trades()))
	bids := byd.BidOrders()
	require.Equal(t, 1, len(bids))
	assert.Equal(t, uint64(10), bids[0].Remaining)

	all := registry.AllPositions()
	assert.Equal(t, int64(-5), all["TESLA"])
	assert.Equal(t, int64(-20), all["TOYOTA"])
	assert.Equal(t, 8, len(registry.AllTrades()))
}

func TestLoadScenarioFromFile(t *testing.T) {
	doc := `
[[book]]
symbol = "ACME"

  [[book.order]]
  side = "SELL"
  price = "10.50"
  quantity = 100

  [[book.order]]
  side = "BUY"
  price = "10.50"
  quantity = 40
`
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	file, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, len(file.Books))
	require.Equal(t, 2, len(file.Books[0].Orders))
	assert.Equal(t, "10.50", file.Books[0].Orders[0].Price)

	registry := runScenario(t, file)
	book := registry.Books()[0]
	require.Equal(t, 1, len(book.Trades()))
	assert.Equal(t, uint64(40), book.Trades()[0].Size)
	assert.Equal(t, int64(40), book.Position("ACME"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading scenario")
}

func TestRunRejectsBadPrice(t *testing.T) {
	file := &File{
		Books: []Book{{
			Symbol: "ACME",
			Orders: []Order{{Side: "BUY", Price: "not-a-price", Quantity: 1}},
		}},
	}
	err := Run(file, matching.NewRegistry(), logging.NewTestLogger(), matching.NewDefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price")
}

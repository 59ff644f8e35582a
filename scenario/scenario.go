// Package scenario loads and runs ordered sequences of order submissions
// against freshly constructed books. Scenarios come from TOML files or
// the built-in demo, and submission order is preserved faithfully since
// it affects matching outcomes.
package scenario

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/quantbay/simex/libs/num"
	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/matching"
	"github.com/quantbay/simex/types"
)

// File is the root of a scenario document.
type File struct {
	Books []Book `toml:"book"`
}

// Book describes one order book and the orders fed to it, in order.
type Book struct {
	// Symbol may be empty, the book then gets a random token.
	Symbol string  `toml:"symbol"`
	Orders []Order `toml:"order"`
}

// Order is one submission. Prices are strings so the file carries exact
// decimals, a TOML float would round-trip through binary floating point.
type Order struct {
	// ID is optional, zero lets the book assign the next id in sequence.
	ID       uint64 `toml:"id"`
	Side     string `toml:"side"`
	Price    string `toml:"price"`
	Quantity uint64 `toml:"quantity"`
}

// Load reads a scenario from a TOML file.
func Load(path string) (*File, error) {
	file := &File{}
	if _, err := toml.DecodeFile(path, file); err != nil {
		return nil, errors.Wrapf(err, "loading scenario %s", path)
	}
	return file, nil
}

// Run constructs one book per scenario book, registers it, and feeds the
// orders through one at a time. It stops at the first rejection.
func Run(file *File, registry *matching.Registry, log *logging.Logger, config matching.Config) error {
	for _, spec := range file.Books {
		book := registry.NewOrderBook(log, config, spec.Symbol)

		orders := make([]*types.Order, 0, len(spec.Orders))
		for _, o := range spec.Orders {
			price, err := num.DecimalFromString(o.Price)
			if err != nil {
				return errors.Wrapf(err, "invalid price %q in scenario book %s", o.Price, book.Symbol())
			}
			order := types.NewOrder(book.Symbol(), types.SideFromString(o.Side), price, o.Quantity)
			order.ID = o.ID
			orders = append(orders, order)
		}

		if _, err := matching.SendOrders(book, orders); err != nil {
			return err
		}
	}
	return nil
}

// Builtin returns the demo scenario: three books, crossing orders on the
// first two, an untouched resting bid on the third.
func Builtin() *File {
	return &File{
		Books: []Book{
			{
				Symbol: "TESLA",
				Orders: []Order{
					{Side: "BUY", Price: "100.00", Quantity: 35},
					{Side: "SELL", Price: "102.00", Quantity: 10},
					{Side: "SELL", Price: "101.00", Quantity: 30},
					{Side: "BUY", Price: "103.00", Quantity: 10},
					{Side: "BUY", Price: "103.00", Quantity: 10},
					{Side: "BUY", Price: "103.00", Quantity: 30},
					{Side: "SELL", Price: "100.00", Quantity: 60},
				},
			},
			{
				Symbol: "TOYOTA",
				Orders: []Order{
					{Side: "BUY", Price: "100.00", Quantity: 10},
					{Side: "SELL", Price: "101.00", Quantity: 10},
					{Side: "BUY", Price: "100.00", Quantity: 10},
					{Side: "SELL", Price: "100.00", Quantity: 20},
				},
			},
			{
				Symbol: "BYD",
				Orders: []Order{
					{Side: "BUY", Price: "100.00", Quantity: 10},
				},
			},
		},
	}
}

package matching

import (
	"github.com/pkg/errors"

	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/types"
)

// Registry is an append-only collection of order books, owned by whatever
// top level context constructs them and passed explicitly to reporting.
// It holds non-owning references and never mutates its members.
type Registry struct {
	books []*OrderBook
}

func NewRegistry() *Registry {
	return &Registry{books: []*OrderBook{}}
}

// Add registers a book. Books are enumerated in registration order.
func (r *Registry) Add(book *OrderBook) {
	r.books = append(r.books, book)
}

// NewOrderBook constructs a book and registers it in one step.
func (r *Registry) NewOrderBook(log *logging.Logger, config Config, symbol string) *OrderBook {
	book := NewOrderBook(log, config, symbol)
	r.Add(book)
	return book
}

// Books returns the registered books in registration order.
func (r *Registry) Books() []*OrderBook {
	out := make([]*OrderBook, len(r.books))
	copy(out, r.books)
	return out
}

// AllTrades returns every trade across all registered books, grouped by
// book in registration order, insertion order within a book.
func (r *Registry) AllTrades() []*types.Trade {
	var out []*types.Trade
	for _, book := range r.books {
		out = append(out, book.Trades()...)
	}
	return out
}

// AllPositions sums the net position per instrument across all books.
func (r *Registry) AllPositions() map[string]int64 {
	out := map[string]int64{}
	for _, book := range r.books {
		for symbol, net := range book.Positions() {
			out[symbol] += net
		}
	}
	return out
}

// SendOrders submits a sequence of orders to the book one at a time,
// preserving the given order, submission order affects matching outcomes.
// It stops at the first rejection.
func SendOrders(book *OrderBook, orders []*types.Order) ([]*OrderConfirmation, error) {
	confirmations := make([]*OrderConfirmation, 0, len(orders))
	for _, order := range orders {
		confirmation, err := book.SubmitOrder(order)
		if err != nil {
			return confirmations, errors.Wrapf(err, "submitting order %d to book %s", order.ID, book.Symbol())
		}
		confirmations = append(confirmations, confirmation)
	}
	return confirmations, nil
}

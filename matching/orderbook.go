package matching

import (
	"strings"

	"github.com/google/uuid"

	"github.com/quantbay/simex/libs/num"
	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/types"
)

// OrderBook is the matching core for a single instrument. It owns the two
// resting sides, the trade ledger and the position tally, and processes
// one order to completion before accepting the next. It is not safe for
// concurrent use.
type OrderBook struct {
	log *logging.Logger
	cfg Config

	symbol string
	buy    *OrderBookSide
	sell   *OrderBookSide

	trades    []*types.Trade
	positions map[string]int64

	// next order id handed out for this book, starts at 1
	sequence uint64
}

// OrderConfirmation holds the result of submitting one order: the order
// itself with its final remaining quantity, and the trades it produced.
type OrderConfirmation struct {
	Order  *types.Order
	Trades []*types.Trade
}

// NewOrderBook creates a book for the given instrument. An empty symbol
// gets a random three character token, matching what the scenario tooling
// has always generated for throwaway books.
func NewOrderBook(log *logging.Logger, config Config, symbol string) *OrderBook {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	if symbol == "" {
		symbol = randomSymbol()
	}
	return &OrderBook{
		log:       log,
		cfg:       config,
		symbol:    strings.ToUpper(symbol),
		buy:       newSide(log, types.SideBuy),
		sell:      newSide(log, types.SideSell),
		trades:    []*types.Trade{},
		positions: map[string]int64{},
		sequence:  1,
	}
}

func randomSymbol() string {
	// the first three characters of a uuid string are hex digits
	return strings.ToUpper(uuid.NewString()[:3])
}

// Symbol returns the instrument this book trades.
func (b *OrderBook) Symbol() string {
	return b.symbol
}

// NewOrder builds an order for this book's instrument, stamped with the
// next id in the book's sequence.
func (b *OrderBook) NewOrder(side types.Side, price num.Decimal, size uint64) *types.Order {
	o := types.NewOrder(b.symbol, side, price, size)
	o.ID = b.nextID()
	return o
}

func (b *OrderBook) nextID() uint64 {
	id := b.sequence
	b.sequence++
	return id
}

// SubmitOrder attempts to match the order against the opposite side and
// rests any unfilled remainder on its own side. Validation happens before
// any mutation, a rejected order leaves the book completely unchanged.
func (b *OrderBook) SubmitOrder(order *types.Order) (*OrderConfirmation, error) {
	if err := b.validateOrder(order); err != nil {
		return nil, err
	}
	if order.ID == 0 {
		order.ID = b.nextID()
	}

	if b.log.GetLevel() <= logging.DebugLevel {
		b.log.Debug("submitting order", logging.Order(order))
	}

	var trades []*types.Trade
	if order.Side == types.SideBuy {
		trades = b.sell.uncross(order)
	} else {
		trades = b.buy.uncross(order)
	}
	for _, trade := range trades {
		b.recordTrade(trade)
	}

	if !order.IsFilled() {
		if order.Side == types.SideBuy {
			b.buy.addOrder(order)
		} else {
			b.sell.addOrder(order)
		}
	}

	if b.cfg.LogPriceLevelsDebug && b.log.GetLevel() <= logging.DebugLevel {
		b.log.Debug("order book state",
			logging.String("symbol", b.symbol),
			logging.Int64("buy-levels", int64(len(b.buy.getLevels()))),
			logging.Int64("sell-levels", int64(len(b.sell.getLevels()))),
		)
	}

	return &OrderConfirmation{Order: order, Trades: trades}, nil
}

// recordTrade appends to the ledger and applies the position delta,
// signed by the aggressor side only.
func (b *OrderBook) recordTrade(trade *types.Trade) {
	b.trades = append(b.trades, trade)
	if trade.Aggressor == types.SideBuy {
		b.positions[trade.Symbol] += int64(trade.Size)
	} else {
		b.positions[trade.Symbol] -= int64(trade.Size)
	}

	if b.log.GetLevel() <= logging.DebugLevel {
		b.log.Debug("trade executed", logging.Trade(trade))
	}
}

// BestBidPriceAndVolume returns the top of the buy side.
func (b *OrderBook) BestBidPriceAndVolume() (num.Decimal, uint64, error) {
	return b.buy.BestPriceAndVolume()
}

// BestOfferPriceAndVolume returns the top of the sell side.
func (b *OrderBook) BestOfferPriceAndVolume() (num.Decimal, uint64, error) {
	return b.sell.BestPriceAndVolume()
}

// BidOrders returns the resting buy orders in priority order, highest
// price first, earliest id first at equal price.
func (b *OrderBook) BidOrders() []*types.Order {
	return b.buy.Orders()
}

// OfferOrders returns the resting sell orders in priority order, lowest
// price first, earliest id first at equal price.
func (b *OrderBook) OfferOrders() []*types.Order {
	return b.sell.Orders()
}

// Trades returns the executed trades in insertion order.
func (b *OrderBook) Trades() []*types.Trade {
	out := make([]*types.Trade, len(b.trades))
	copy(out, b.trades)
	return out
}

// Position returns the net position accumulated for the given symbol.
func (b *OrderBook) Position(symbol string) int64 {
	return b.positions[strings.ToUpper(symbol)]
}

// Positions returns a copy of the per-symbol net positions.
func (b *OrderBook) Positions() map[string]int64 {
	out := make(map[string]int64, len(b.positions))
	for k, v := range b.positions {
		out[k] = v
	}
	return out
}

func (b *OrderBook) getNumberOfBuyLevels() int {
	return len(b.buy.getLevels())
}

func (b *OrderBook) getNumberOfSellLevels() int {
	return len(b.sell.getLevels())
}

func (b *OrderBook) getTotalBuyVolume() uint64 {
	return b.buy.getTotalVolume()
}

func (b *OrderBook) getTotalSellVolume() uint64 {
	return b.sell.getTotalVolume()
}

package matching

import (
	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/types"
)

// validateOrder runs every rejection check before anything mutates, so a
// failed submission leaves trades, positions and both sides untouched.
func (b *OrderBook) validateOrder(order *types.Order) error {
	if order.Symbol != b.symbol {
		b.log.Error("symbol mismatch",
			logging.String("order-symbol", order.Symbol),
			logging.String("order-book", b.symbol),
			logging.Order(order))
		return types.ErrSymbolMismatch
	}
	if order.Side != types.SideBuy && order.Side != types.SideSell {
		b.log.Error("unknown order side",
			logging.String("side", order.Side.String()),
			logging.Order(order))
		return types.ErrUnknownSide
	}
	return nil
}

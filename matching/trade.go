package matching

import (
	"fmt"

	"github.com/quantbay/simex/types"
)

// newTrade creates a trade of a given size between two orders, priced at
// the passive (resting) order's price.
func newTrade(agg, pass *types.Order, size uint64) *types.Trade {
	buy := getOrderForSide(types.SideBuy, agg, pass)
	sell := getOrderForSide(types.SideSell, agg, pass)
	return &types.Trade{
		Symbol:      pass.Symbol,
		BuyOrderID:  buy.ID,
		SellOrderID: sell.ID,
		Price:       pass.Price,
		Size:        size,
		Aggressor:   agg.Side,
	}
}

// Work out which of the aggressive & passive orders is the buyer/seller.
func getOrderForSide(side types.Side, agg, pass *types.Order) *types.Order {
	if agg.Side == pass.Side {
		panic(fmt.Sprintf("agg.side == pass.side (agg: %v, pass: %v)", agg, pass))
	}
	if agg.Side == side {
		return agg
	}
	return pass
}

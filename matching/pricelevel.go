package matching

import (
	"sort"

	"github.com/quantbay/simex/libs/num"
	"github.com/quantbay/simex/types"
)

// PriceLevel holds the resting orders at one price, in ascending order-id
// order so the earliest submission at this price always trades first.
type PriceLevel struct {
	price  num.Decimal
	orders []*types.Order
	volume uint64
}

func NewPriceLevel(price num.Decimal) *PriceLevel {
	return &PriceLevel{
		price:  price,
		orders: []*types.Order{},
	}
}

func (l *PriceLevel) addOrder(o *types.Order) {
	i := sort.Search(len(l.orders), func(i int) bool { return l.orders[i].ID > o.ID })
	l.orders = append(l.orders, nil)
	copy(l.orders[i+1:], l.orders[i:])
	l.orders[i] = o
	l.volume += o.Remaining
}

func (l *PriceLevel) removeOrder(index int) {
	copy(l.orders[index:], l.orders[index+1:])
	l.orders[len(l.orders)-1] = nil
	l.orders = l.orders[:len(l.orders)-1]
}

// uncross traded the aggressive order against the resting orders at this
// level, earliest id first. A resting order left with remaining quantity
// means the aggressor was exhausted, which ends the pass. Returns whether
// the aggressor is now fully filled and the trades produced.
func (l *PriceLevel) uncross(agg *types.Order) (bool, []*types.Trade) {
	var trades []*types.Trade
	for len(l.orders) > 0 && agg.Remaining > 0 {
		pass := l.orders[0]

		size := agg.Remaining
		if pass.Remaining < size {
			size = pass.Remaining
		}

		// the aggressor executes first, the actual quantity it reports
		// then drives the passive execution so the trade size is fixed
		// before the resting side mutates
		actual, err := agg.Execute(size)
		if err != nil {
			// size is the min of two positive remainders
			panic(err)
		}
		if _, err := pass.Execute(actual); err != nil {
			panic(err)
		}

		trades = append(trades, newTrade(agg, pass, actual))
		l.volume -= actual

		if !pass.IsFilled() {
			break
		}
		l.removeOrder(0)
	}
	return agg.IsFilled(), trades
}

package matching

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/quantbay/simex/libs/num"
	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/types"
)

// ErrNoOrdersOnSide signals a best price query against an empty side.
var ErrNoOrdersOnSide = errors.New("no orders on the book side")

// OrderBookSide represents a side of the book, either Sell or Buy.
// Levels are kept sorted with the best price at the end of the slice:
// buy levels ascend, sell levels descend. That keeps removal of consumed
// levels at the back of the slice.
type OrderBookSide struct {
	side   types.Side
	log    *logging.Logger
	levels []*PriceLevel
}

func newSide(log *logging.Logger, side types.Side) *OrderBookSide {
	return &OrderBookSide{
		side: side,
		log:  log,
	}
}

func (s *OrderBookSide) addOrder(o *types.Order) {
	s.getPriceLevel(o.Price).addOrder(o)
}

// BestPriceAndVolume returns the top of book price and volume,
// or an error if the side is empty.
func (s *OrderBookSide) BestPriceAndVolume() (num.Decimal, uint64, error) {
	if len(s.levels) <= 0 {
		return num.DecimalZero(), 0, ErrNoOrdersOnSide
	}
	last := len(s.levels) - 1
	return s.levels[last].price, s.levels[last].volume, nil
}

func (s *OrderBookSide) getPriceLevel(price num.Decimal) *PriceLevel {
	var i int
	if s.side == types.SideBuy {
		// buy side levels are ordered in ascending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.GreaterThanOrEqual(price) })
	} else {
		// sell side levels are ordered in descending
		i = sort.Search(len(s.levels), func(i int) bool { return s.levels[i].price.LessThanOrEqual(price) })
	}

	// we found the level just return it.
	if i < len(s.levels) && s.levels[i].price.Equal(price) {
		return s.levels[i]
	}

	// append new elem first to make sure we have enough place
	// this would reallocate sufficiently then
	level := NewPriceLevel(price)
	s.levels = append(s.levels, nil)
	copy(s.levels[i+1:], s.levels[i:])
	s.levels[i] = level
	return level
}

// crossed reports whether an incoming order priced at aggPrice trades
// against a resting level on this side at levelPrice. The comparison is
// written out per side rather than injected, s.side is the RESTING side.
func (s *OrderBookSide) crossed(aggPrice, levelPrice num.Decimal) bool {
	if s.side == types.SideSell {
		// an incoming buy trades when it bids at least the resting offer
		return aggPrice.GreaterThanOrEqual(levelPrice)
	}
	// an incoming sell trades when it offers at most the resting bid
	return aggPrice.LessThanOrEqual(levelPrice)
}

// uncross matches the aggressive order against this side, best price
// level first. Matching stops at the first level that does not cross,
// the priority order guarantees no worse-priced level can trade.
func (s *OrderBookSide) uncross(agg *types.Order) []*types.Trade {
	var trades []*types.Trade

	// iterate from the end, the best level sits there and removing
	// emptied levels from the back avoids shifting the slice
	for agg.Remaining > 0 && len(s.levels) > 0 {
		idx := len(s.levels) - 1
		level := s.levels[idx]
		if !s.crossed(agg.Price, level.price) {
			break
		}

		filled, ntrades := level.uncross(agg)
		trades = append(trades, ntrades...)

		if len(level.orders) <= 0 {
			s.levels[idx] = nil
			s.levels = s.levels[:idx]
		}
		if filled {
			break
		}
	}
	return trades
}

// Orders returns the resting orders on this side in priority order,
// best price first, earliest id first within a price.
func (s *OrderBookSide) Orders() []*types.Order {
	orders := make([]*types.Order, 0, s.getOrderCount())
	for i := len(s.levels) - 1; i >= 0; i-- {
		orders = append(orders, s.levels[i].orders...)
	}
	return orders
}

func (s *OrderBookSide) getLevels() []*PriceLevel {
	return s.levels
}

func (s *OrderBookSide) getOrderCount() int {
	var count int
	for _, level := range s.levels {
		count += len(level.orders)
	}
	return count
}

func (s *OrderBookSide) getTotalVolume() uint64 {
	var volume uint64
	for _, level := range s.levels {
		volume += level.volume
	}
	return volume
}

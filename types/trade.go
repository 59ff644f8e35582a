package types

import (
	"fmt"

	"github.com/quantbay/simex/libs/num"
)

// Trade records one execution between a buy and a sell order. It is
// immutable once appended to a book's ledger.
type Trade struct {
	Symbol      string
	BuyOrderID  uint64
	SellOrderID uint64
	// Price is always the resting order's price, regardless of which
	// side was the aggressor.
	Price num.Decimal
	Size  uint64
	// Aggressor is the side of the incoming order that triggered the
	// trade. Position tracking is signed by this side only.
	Aggressor Side
}

func (t *Trade) String() string {
	return fmt.Sprintf("trade{symbol=%s buy=%d sell=%d price=%s size=%d aggressor=%s}",
		t.Symbol, t.BuyOrderID, t.SellOrderID, t.Price.StringFixed(PricePrecision), t.Size, t.Aggressor)
}

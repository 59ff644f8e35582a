package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantbay/simex/libs/num"
)

var (
	// ErrInvalidExecutionQuantity signals that Order.Execute was asked to
	// execute a non-positive quantity.
	ErrInvalidExecutionQuantity = errors.New("execution quantity must be positive")
	// ErrSymbolMismatch signals that an order was submitted to a book
	// trading a different instrument.
	ErrSymbolMismatch = errors.New("order symbol does not match order book symbol")
	// ErrUnknownSide signals that an order's side is neither buy nor sell.
	ErrUnknownSide = errors.New("unknown order side")
)

// PricePrecision is the number of fractional digits every order price is
// normalised to at construction time.
const PricePrecision = 2

type Side int8

const (
	SideUnspecified Side = iota
	SideBuy
	SideSell
)

// SideFromString maps a side label onto a Side, case insensitively.
// Anything other than buy/sell comes back as SideUnspecified and is
// rejected by the book at submission.
func SideFromString(s string) Side {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return SideBuy
	case "SELL":
		return SideSell
	default:
		return SideUnspecified
	}
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNSPECIFIED"
	}
}

// Opposite returns the other trading side, unspecified stays unspecified.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		return SideUnspecified
	}
}

// Order is a single buy or sell intent at one price. Its identity never
// changes after creation, only Remaining does, and only downwards.
type Order struct {
	ID     uint64
	Symbol string
	Side   Side
	Price  num.Decimal
	// Size is the original quantity, fixed at creation.
	Size uint64
	// Remaining is the unexecuted quantity, Remaining <= Size always.
	Remaining uint64
}

// NewOrder builds an order with a normalised symbol and a price rounded
// half-up to PricePrecision fractional digits. The ID is left at zero so
// the book assigns the next one in sequence at submission; callers that
// need an explicit ID set it on the returned order.
func NewOrder(symbol string, side Side, price num.Decimal, size uint64) *Order {
	return &Order{
		Symbol:    strings.ToUpper(strings.TrimSpace(symbol)),
		Side:      side,
		Price:     price.Round(PricePrecision),
		Size:      size,
		Remaining: size,
	}
}

// Execute applies a fill of up to qty against the order and returns the
// quantity actually executed, capped at whatever remains. Callers must use
// the returned value, not the requested one.
func (o *Order) Execute(qty uint64) (uint64, error) {
	if qty == 0 {
		return 0, ErrInvalidExecutionQuantity
	}
	actual := qty
	if actual > o.Remaining {
		actual = o.Remaining
	}
	o.Remaining -= actual
	return actual, nil
}

// IsFilled returns true once the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Remaining == 0
}

func (o *Order) String() string {
	return fmt.Sprintf("order{id=%d symbol=%s side=%s price=%s size=%d remaining=%d}",
		o.ID, o.Symbol, o.Side, o.Price.StringFixed(PricePrecision), o.Size, o.Remaining)
}

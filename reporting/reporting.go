// Package reporting renders the final state of order books for the
// console. Everything here is a read-only view, nothing in this package
// mutates a book, a ledger or a position.
package reporting

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/quantbay/simex/matching"
	"github.com/quantbay/simex/types"
)

// Reporter writes human readable tables describing books, trades and
// positions to a single destination writer.
type Reporter struct {
	w      io.Writer
	header *color.Color
}

func New(w io.Writer, config Config) *Reporter {
	header := color.New(color.FgCyan, color.Bold)
	if config.NoColor {
		header.DisableColor()
	}
	return &Reporter{
		w:      w,
		header: header,
	}
}

func (r *Reporter) printHeader(format string, args ...interface{}) {
	r.header.Fprintf(r.w, format+"\n", args...)
}

func (r *Reporter) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(r.w)
	table.SetAutoFormatHeaders(false)
	return table
}

// PrintBook renders the resting orders of both sides in priority order.
func (r *Reporter) PrintBook(book *matching.OrderBook) {
	bids := book.BidOrders()
	offers := book.OfferOrders()

	r.printHeader("ORDER BOOK %s (%d resting orders)", book.Symbol(), len(bids)+len(offers))
	table := r.newTable()
	table.SetHeader([]string{"SIDE", "ID", "PRICE", "REMAINING", "ORIGINAL"})
	for _, o := range bids {
		table.Append(orderRow(o))
	}
	for _, o := range offers {
		table.Append(orderRow(o))
	}
	table.Render()
}

func orderRow(o *types.Order) []string {
	return []string{
		o.Side.String(),
		fmt.Sprintf("%d", o.ID),
		o.Price.StringFixed(types.PricePrecision),
		humanize.Comma(int64(o.Remaining)),
		humanize.Comma(int64(o.Size)),
	}
}

// PrintTrades renders a book's executed trades in insertion order.
func (r *Reporter) PrintTrades(book *matching.OrderBook) {
	trades := book.Trades()
	r.printHeader("EXECUTED TRADES %s", book.Symbol())
	if len(trades) == 0 {
		fmt.Fprintln(r.w, "no trades executed")
		return
	}
	table := r.newTable()
	table.SetHeader([]string{"SYMBOL", "BUY ID", "SELL ID", "PRICE", "QUANTITY", "AGGRESSOR"})
	for _, t := range trades {
		table.Append(tradeRow(t))
	}
	table.Render()
}

func tradeRow(t *types.Trade) []string {
	return []string{
		t.Symbol,
		fmt.Sprintf("%d", t.BuyOrderID),
		fmt.Sprintf("%d", t.SellOrderID),
		t.Price.StringFixed(types.PricePrecision),
		humanize.Comma(int64(t.Size)),
		t.Aggressor.String(),
	}
}

// PrintPositions renders a book's per-symbol net positions.
func (r *Reporter) PrintPositions(book *matching.OrderBook) {
	r.printHeader("POSITIONS %s", book.Symbol())
	positions := book.Positions()
	if len(positions) == 0 {
		fmt.Fprintln(r.w, "no positions")
		return
	}
	table := r.newTable()
	table.SetHeader([]string{"SYMBOL", "NET"})
	for _, symbol := range sortedKeys(positions) {
		table.Append([]string{symbol, humanize.Comma(positions[symbol])})
	}
	table.Render()
}

// PrintAllTrades renders every registered book's trades, grouped by book
// in registration order.
func (r *Reporter) PrintAllTrades(registry *matching.Registry) {
	r.printHeader("ALL EXECUTED TRADES")
	for _, book := range registry.Books() {
		r.PrintTrades(book)
	}
}

// PrintAllPositions renders each book's positions followed by the net
// position per instrument across all books.
func (r *Reporter) PrintAllPositions(registry *matching.Registry) {
	r.printHeader("ALL POSITIONS")
	for _, book := range registry.Books() {
		r.PrintPositions(book)
	}

	all := registry.AllPositions()
	if len(all) == 0 {
		return
	}
	r.printHeader("NET ACROSS BOOKS")
	table := r.newTable()
	table.SetHeader([]string{"SYMBOL", "NET"})
	for _, symbol := range sortedKeys(all) {
		table.Append([]string{symbol, humanize.Comma(all[symbol])})
	}
	table.Render()
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

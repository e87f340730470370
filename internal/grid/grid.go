// Package grid describes the fixed physical layout of the aircraft cabin.
// The cabin is a 12 row by 4 column grid; seats are coordinates, not
// persisted entities.  Pricing depends only on the column: window and
// aisle-adjacent columns carry different tiers, and every row prices
// identically.
package grid

// Rows and Cols define the cabin dimensions.  Seat coordinates are
// 1-based: row in [1,Rows], column in [1,Cols].
const (
	Rows = 12
	Cols = 4
)

// columnPrices holds the per-column price tier, identical for every row.
var columnPrices = [Cols]int{100, 75, 50, 100}

// InBounds reports whether (row, col) addresses a real seat.
func InBounds(row, col int) bool {
	return row >= 1 && row <= Rows && col >= 1 && col <= Cols
}

// PriceOf returns the price of the seat at (row, col).  The boolean is
// false when the coordinate lies outside the cabin, in which case the
// price is zero.
func PriceOf(row, col int) (int, bool) {
	if !InBounds(row, col) {
		return 0, false
	}
	return columnPrices[col-1], true
}

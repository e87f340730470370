package grid

import "testing"

func TestPriceOf(t *testing.T) {
	t.Parallel()

	t.Run("column tiers identical on every row", func(t *testing.T) {
		want := [4]int{100, 75, 50, 100}
		for row := 1; row <= Rows; row++ {
			for col := 1; col <= Cols; col++ {
				price, ok := PriceOf(row, col)
				if !ok {
					t.Fatalf("expected (%d,%d) in bounds", row, col)
				}
				if price != want[col-1] {
					t.Fatalf("price at (%d,%d) = %d, want %d", row, col, price, want[col-1])
				}
			}
		}
	})

	t.Run("out of bounds returns zero and false", func(t *testing.T) {
		cases := [][2]int{{0, 1}, {1, 0}, {13, 1}, {1, 5}, {-3, 2}, {4, -1}}
		for _, c := range cases {
			if price, ok := PriceOf(c[0], c[1]); ok || price != 0 {
				t.Fatalf("PriceOf(%d,%d) = (%d,%v), want (0,false)", c[0], c[1], price, ok)
			}
		}
	})
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	if !InBounds(1, 1) || !InBounds(Rows, Cols) {
		t.Fatalf("expected corners in bounds")
	}
	if InBounds(Rows+1, 1) || InBounds(1, Cols+1) || InBounds(0, 0) {
		t.Fatalf("expected out-of-range coordinates rejected")
	}
}

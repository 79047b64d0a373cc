package domain

import "testing"

func TestNormalizeQuantity(t *testing.T) {
	p := Product{MinOrderQuantity: 1000, MaxOrderQuantity: 100000}

	cases := []struct {
		name string
		in   int64
		want int64
	}{
		{"already a lot multiple", 3000, 3000},
		{"rounds down below midpoint", 3400, 3000},
		{"rounds up at midpoint", 3500, 4000},
		{"below one lot -> one lot", 1, 1000},
		{"zero -> one lot", 0, 1000},
		{"negative -> one lot", -5, 1000},
		{"clamped to max", 250000, 100000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeQuantity(p, c.in); got != c.want {
				t.Fatalf("NormalizeQuantity(%d) = %d, want %d", c.in, got, c.want)
			}
		})
	}

	t.Run("min above one lot clamps upward", func(t *testing.T) {
		strict := Product{MinOrderQuantity: 5000, MaxOrderQuantity: 100000}
		if got := NormalizeQuantity(strict, 1000); got != 5000 {
			t.Fatalf("NormalizeQuantity(1000) = %d, want 5000", got)
		}
	})
}

package domain

// LotSize is the required increment for wholesale order quantities.
const LotSize int64 = 1000

// NormalizeQuantity rounds a requested quantity to the nearest lot
// multiple (never below one lot) and clamps it to the product's order
// bounds. This is the one quantity-legality policy: every caller that
// accepts user input goes through here, the pricing engine and cart
// store stay permissive.
func NormalizeQuantity(p Product, quantity int64) int64 {
	q := ((quantity + LotSize/2) / LotSize) * LotSize
	if q < LotSize {
		q = LotSize
	}

	if min := p.MinOrderQuantity; min > 0 && q < min {
		q = min
	}
	if max := p.MaxOrderQuantity; max > 0 && q > max {
		q = max
	}

	return q
}

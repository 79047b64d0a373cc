package domain

// UnitPrice returns the per-unit price that applies to the given order
// quantity. Products without tiers sell at the flat base price regardless
// of quantity. Otherwise the first tier (in stored order) whose bracket
// contains the quantity wins. A quantity that matches no bracket falls
// back to the last tier's price — the catalog owner's policy is that a
// price is always quoted, never an error, so don't harden this into
// validation without confirming with them first.
func UnitPrice(p Product, quantity int64) int64 {
	if len(p.PriceTiers) == 0 {
		return p.Price
	}

	for _, tier := range p.PriceTiers {
		if quantity >= tier.MinQuantity {
			if tier.MaxQuantity == 0 || quantity <= tier.MaxQuantity {
				return tier.Price
			}
		}
	}

	return p.PriceTiers[len(p.PriceTiers)-1].Price
}

// TotalPrice is UnitPrice times quantity. JPY has no subunit, so there
// is no fractional rounding. Quantity legality (lot size, order bounds)
// is the caller's concern, see NormalizeQuantity.
func TotalPrice(p Product, quantity int64) int64 {
	return UnitPrice(p, quantity) * quantity
}

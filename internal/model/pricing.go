package model

// PriceTierInfo describes one pricing bucket.  Lower tier numbers are
// more expensive: tier 1 is the premium price in this venue's table.
type PriceTierInfo struct {
	Tier       int    `json:"tier"`
	Label      string `json:"label"`
	PriceCents uint32 `json:"price_cents"`
}

// priceTable lists the known tiers in ascending tier order.
var priceTable = []PriceTierInfo{
	{Tier: 1, Label: "Premium", PriceCents: 20000},
	{Tier: 2, Label: "Standard", PriceCents: 12500},
	{Tier: 3, Label: "Value", PriceCents: 7500},
}

// PriceTiers returns a copy of the price table.
func PriceTiers() []PriceTierInfo {
	out := make([]PriceTierInfo, len(priceTable))
	copy(out, priceTable)
	return out
}

// PriceForTier returns the price in cents for a tier.  Unknown tiers
// fall back to the cheapest listed tier so a malformed venue never
// prices a seat above the table.
func PriceForTier(tier int) uint32 {
	for _, t := range priceTable {
		if t.Tier == tier {
			return t.PriceCents
		}
	}
	return priceTable[len(priceTable)-1].PriceCents
}

// TotalPriceCents sums the price of every seat in the slice.
func TotalPriceCents(seats []Seat) uint32 {
	var total uint32
	for _, s := range seats {
		total += PriceForTier(s.PriceTier)
	}
	return total
}

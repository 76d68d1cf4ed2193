package services

// Flat estimate used for packages that carry no resolvable SKUs. These are
// placeholder packages (seeded or half-migrated), so the per-SKU engine has
// nothing to price and a simplified formula applies instead. Values are
// cents.
const (
	estimateFixtureBase  int64 = 450000
	estimateWetAreaAdder int64 = 150000
)

// EstimateSubtotal computes the flat estimate for a bathroom type: a fixture
// base for every configuration, plus a wet-area adder when the type includes
// a tub or shower.
func EstimateSubtotal(bathroomType string) int64 {
	subtotal := estimateFixtureBase
	if bathroomType != TypeSinkToilet {
		subtotal += estimateWetAreaAdder
	}
	return subtotal
}

// HasResolvableSKUs reports whether any selected SKU in the design resolves
// against the catalog. When none does, callers fall back to the flat
// estimate and flag the result as such.
func HasResolvableSKUs(design DesignConfig, catalog Catalog) bool {
	for _, sku := range design.Items {
		if sku == "" {
			continue
		}
		if _, ok := catalog.Lookup(sku); ok {
			return true
		}
	}
	return false
}

package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Product is one material from the catalog. Identity is the SKU, matched
// case-insensitively.
type Product struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	PricePerSqft float64  `json:"price_per_sqft"`
	Cost         float64  `json:"cost"`
	CostPerSqft  float64  `json:"cost_per_sqft"`
	Images       []string `json:"images"`
}

// Catalog is an immutable materials snapshot passed into every pricing
// call. Callers fetch a consistent snapshot first; the engine never reaches
// back into the store.
type Catalog struct {
	Version  string
	products map[string]Product
}

// NewCatalog indexes products by lowercased SKU.
func NewCatalog(version string, products []Product) Catalog {
	idx := make(map[string]Product, len(products))
	for _, p := range products {
		idx[strings.ToLower(p.SKU)] = p
	}
	return Catalog{Version: version, products: idx}
}

// Lookup finds a product by SKU, ignoring case.
func (c Catalog) Lookup(sku string) (Product, bool) {
	p, ok := c.products[strings.ToLower(sku)]
	return p, ok
}

// Len reports how many products the snapshot holds.
func (c Catalog) Len() int { return len(c.products) }

// DesignConfig is a customer's chosen bathroom configuration: type, size,
// wall tile coverage and per-category SKU selections. IncludedItems carries
// explicit caller overrides; a category absent from it defers to the
// universal configuration.
type DesignConfig struct {
	BathroomType     string            `json:"bathroomType"`
	WallTileCoverage string            `json:"wallTileCoverage"`
	BathroomSize     string            `json:"bathroomSize"`
	Items            map[string]string `json:"items"`
	IncludedItems    map[string]bool   `json:"includedItems,omitempty"`
}

// TileLine is the per-square-foot breakdown entry for one tile category.
// Monetary values are integral cents.
type TileLine struct {
	SKU          string  `json:"sku"`
	Sqft         float64 `json:"sqft"`
	PricePerSqft int64   `json:"price_per_sqft_cents"`
	Total        int64   `json:"total_cents"`
	Missing      bool    `json:"missing,omitempty"`
}

// FixtureLine is the flat-price breakdown entry for one fixture category.
type FixtureLine struct {
	SKU     string `json:"sku"`
	Price   int64  `json:"price_cents"`
	Missing bool   `json:"missing,omitempty"`
}

// PricingItem is one included, resolved line of the materials price.
type PricingItem struct {
	Category string `json:"category"`
	SKU      string `json:"sku"`
	Name     string `json:"name,omitempty"`
	Total    int64  `json:"total_cents"`
}

// PricingResult is the itemized materials price for one design
// configuration. Items are in canonical category order; the breakdown also
// lists selected SKUs that failed to resolve, so callers can detect catalog
// gaps. Signature is a content hash of the design configuration, for
// caching and audit only.
type PricingResult struct {
	Subtotal       int64                  `json:"subtotal_cents"`
	Items          []PricingItem          `json:"items"`
	Tiles          map[string]TileLine    `json:"tiles"`
	Fixtures       map[string]FixtureLine `json:"fixtures"`
	Warnings       []string               `json:"warnings,omitempty"`
	CatalogVersion string                 `json:"catalog_version"`
	Signature      string                 `json:"signature"`
}

// Cents converts a decimal catalog price to integral cents. Rounding happens
// here, at the point of conversion, never cumulatively.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ConfigSignature produces a stable content hash over a design
// configuration. Map entries are folded in sorted key order so the hash is
// independent of iteration order.
func ConfigSignature(design DesignConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type=%s|coverage=%s|size=%s", design.BathroomType, design.WallTileCoverage, design.BathroomSize)

	itemKeys := make([]string, 0, len(design.Items))
	for k := range design.Items {
		itemKeys = append(itemKeys, k)
	}
	sort.Strings(itemKeys)
	for _, k := range itemKeys {
		fmt.Fprintf(&b, "|item.%s=%s", k, strings.ToLower(design.Items[k]))
	}

	inclKeys := make([]string, 0, len(design.IncludedItems))
	for k := range design.IncludedItems {
		inclKeys = append(inclKeys, k)
	}
	sort.Strings(inclKeys)
	for _, k := range inclKeys {
		fmt.Fprintf(&b, "|incl.%s=%t", k, design.IncludedItems[k])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// PriceMaterials prices a design configuration against a catalog snapshot.
// Synchronous and pure: the catalog and (optional) universal config are
// passed in, never fetched. A selected SKU missing from the catalog
// contributes zero but is still reported in the breakdown and the warning
// list; catalog/package drift is operational noise, not a failure.
func PriceMaterials(design DesignConfig, catalog Catalog, universal *UniversalConfig) PricingResult {
	cfg := DefaultUniversalConfig()
	if universal != nil {
		cfg = *universal
	}
	size := cfg.SizeOrDefault(design.BathroomSize)

	result := PricingResult{
		Tiles:          make(map[string]TileLine),
		Fixtures:       make(map[string]FixtureLine),
		CatalogVersion: catalog.Version,
		Signature:      ConfigSignature(design),
	}

	for _, cat := range TileCategories {
		sku := design.Items[cat]
		if sku == "" || !ShouldInclude(cat, design, universal) {
			continue
		}
		sqft := ResolveTileSqft(cat, size, design.WallTileCoverage, design.BathroomType)
		product, ok := catalog.Lookup(sku)
		if !ok {
			result.Tiles[cat] = TileLine{SKU: sku, Sqft: sqft, Missing: true}
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: SKU %q not in catalog", cat, sku))
			continue
		}
		line := TileLine{
			SKU:          product.SKU,
			Sqft:         sqft,
			PricePerSqft: Cents(product.PricePerSqft),
			Total:        Cents(product.PricePerSqft * sqft),
		}
		result.Tiles[cat] = line
		result.Items = append(result.Items, PricingItem{
			Category: cat,
			SKU:      product.SKU,
			Name:     product.Name,
			Total:    line.Total,
		})
		result.Subtotal += line.Total
	}

	for _, cat := range FixtureCategories {
		sku := design.Items[cat]
		if sku == "" || !ShouldInclude(cat, design, universal) {
			continue
		}
		product, ok := catalog.Lookup(sku)
		if !ok {
			result.Fixtures[cat] = FixtureLine{SKU: sku, Missing: true}
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: SKU %q not in catalog", cat, sku))
			continue
		}
		line := FixtureLine{SKU: product.SKU, Price: Cents(product.Price)}
		result.Fixtures[cat] = line
		result.Items = append(result.Items, PricingItem{
			Category: cat,
			SKU:      product.SKU,
			Name:     product.Name,
			Total:    line.Price,
		})
		result.Subtotal += line.Price
	}

	return result
}

package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// loadRateCard fetches every active rate line keyed by line code.
func loadRateCard(app *pocketbase.PocketBase) (map[string]services.RateLine, error) {
	col, err := app.FindCollectionByNameOrId("rate_lines")
	if err != nil {
		return nil, fmt.Errorf("rate_lines collection: %w", err)
	}
	records, err := app.FindRecordsByFilter(col, "active = true", "line_code", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("query rate_lines: %w", err)
	}

	rates := make(map[string]services.RateLine, len(records))
	for _, r := range records {
		rates[r.GetString("line_code")] = services.RateLine{
			LineCode:        r.GetString("line_code"),
			LineName:        r.GetString("line_name"),
			Unit:            r.GetString("unit"),
			BasePrice:       r.GetFloat("base_price"),
			PricePerUnit:    r.GetFloat("price_per_unit"),
			BaseAppliesOnce: r.GetBool("base_applies_once"),
			Active:          r.GetBool("active"),
		}
	}
	return rates, nil
}

// loadMultipliers fetches every project multiplier keyed by code.
func loadMultipliers(app *pocketbase.PocketBase) (map[string]services.ProjectMultiplier, error) {
	col, err := app.FindCollectionByNameOrId("project_multipliers")
	if err != nil {
		return nil, fmt.Errorf("project_multipliers collection: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("query project_multipliers: %w", err)
	}

	mults := make(map[string]services.ProjectMultiplier, len(records))
	for _, r := range records {
		mults[r.GetString("code")] = services.ProjectMultiplier{
			Code:           r.GetString("code"),
			Name:           r.GetString("name"),
			Basis:          r.GetString("basis"),
			DefaultPercent: r.GetFloat("default_percent"),
		}
	}
	return mults, nil
}

// loadCatalog snapshots the products collection. The version is the most
// recent product update timestamp, so repeated pricing against an unchanged
// catalog reports the same version.
func loadCatalog(app *pocketbase.PocketBase) (services.Catalog, error) {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return services.Catalog{}, fmt.Errorf("products collection: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return services.Catalog{}, fmt.Errorf("query products: %w", err)
	}

	version := "empty"
	products := make([]services.Product, 0, len(records))
	for _, r := range records {
		products = append(products, services.Product{
			SKU:          r.GetString("sku"),
			Name:         r.GetString("name"),
			Brand:        r.GetString("brand"),
			Category:     r.GetString("category"),
			Price:        r.GetFloat("price"),
			PricePerSqft: r.GetFloat("price_per_sqft"),
			Cost:         r.GetFloat("cost"),
			CostPerSqft:  r.GetFloat("cost_per_sqft"),
		})
		if updated := r.GetDateTime("updated").String(); updated > version || version == "empty" {
			version = updated
		}
	}
	return services.NewCatalog(version, products), nil
}

// loadUniversalConfig returns the persisted configuration row when one
// exists, otherwise the hardcoded default. The bool reports whether the
// default was used.
func loadUniversalConfig(app *pocketbase.PocketBase) (services.UniversalConfig, bool, error) {
	col, err := app.FindCollectionByNameOrId("universal_config")
	if err != nil {
		return services.UniversalConfig{}, false, fmt.Errorf("universal_config collection: %w", err)
	}
	records, err := app.FindRecordsByFilter(col, "", "-updated", 1, 0, nil)
	if err != nil {
		return services.UniversalConfig{}, false, fmt.Errorf("query universal_config: %w", err)
	}
	if len(records) == 0 {
		return services.DefaultUniversalConfig(), true, nil
	}

	var cfg services.UniversalConfig
	if err := records[0].UnmarshalJSONField("config", &cfg); err != nil {
		return services.UniversalConfig{}, false, fmt.Errorf("unmarshal universal_config %s: %w", records[0].Id, err)
	}
	cfg.UpdatedAt = records[0].GetDateTime("updated").String()
	return cfg, false, nil
}

// packageFromRecord maps a package record into its in-memory shape.
func packageFromRecord(rec *core.Record) services.Package {
	pkg := services.Package{
		ID:                 rec.Id,
		Name:               rec.GetString("name"),
		Items:              map[string]string{},
		Legacy:             map[string]string{},
		WallTileMultiplier: rec.GetFloat("wall_tile_multiplier"),
	}
	// A malformed items field degrades to empty; the legacy columns still
	// describe the package.
	_ = rec.UnmarshalJSONField("items", &pkg.Items)
	_ = rec.UnmarshalJSONField("universal_toggles", &pkg.UniversalToggles)
	for _, cat := range services.AllCategories {
		if sku := rec.GetString(services.LegacySKUFields[cat]); sku != "" {
			pkg.Legacy[cat] = sku
		}
	}
	return pkg
}

// applyPackageToRecord writes the in-memory package back onto its record:
// the items map, the toggle stamp, and every flat SKU column (cleared
// columns are written as empty strings).
func applyPackageToRecord(pkg services.Package, rec *core.Record) {
	rec.Set("items", pkg.Items)
	rec.Set("universal_toggles", pkg.UniversalToggles)
	rec.Set("wall_tile_multiplier", pkg.WallTileMultiplier)
	for _, cat := range services.AllCategories {
		rec.Set(services.LegacySKUFields[cat], pkg.Legacy[cat])
	}
}

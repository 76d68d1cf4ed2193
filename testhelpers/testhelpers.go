// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/collections"
	"renoquote/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestRateLine creates an active rate line record and returns it.
func CreateTestRateLine(t *testing.T, app *pocketbase.PocketBase, code, name string, basePrice, pricePerUnit float64, baseOnce bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rate_lines")
	if err != nil {
		t.Fatalf("failed to find rate_lines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("line_code", code)
	record.Set("line_name", name)
	record.Set("unit", "sqft")
	record.Set("base_price", basePrice)
	record.Set("price_per_unit", pricePerUnit)
	record.Set("base_applies_once", baseOnce)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rate line: %v", err)
	}

	return record
}

// CreateTestMultiplier creates a project multiplier record and returns it.
func CreateTestMultiplier(t *testing.T, app *pocketbase.PocketBase, code string, percent float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("project_multipliers")
	if err != nil {
		t.Fatalf("failed to find project_multipliers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", code)
	record.Set("basis", "subtotal")
	record.Set("default_percent", percent)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test multiplier: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, sku, name, category string, price, pricePerSqft float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("sku", sku)
	record.Set("name", name)
	record.Set("category", category)
	record.Set("price", price)
	record.Set("price_per_sqft", pricePerSqft)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestPackage creates a package record with the given items map,
// mirroring every entry into its flat SKU column.
func CreateTestPackage(t *testing.T, app *pocketbase.PocketBase, name string, items map[string]string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("packages")
	if err != nil {
		t.Fatalf("failed to find packages collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("items", items)
	for cat, sku := range items {
		record.Set(services.LegacySKUFields[cat], sku)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test package: %v", err)
	}

	return record
}

// CreateTestQuote persists a calculated quote record and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, customerName string, quote services.CalculatedQuote) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("form", quote.RawForm)
	record.Set("result", quote)
	record.Set("grand_total", quote.Totals.GrandTotal)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// SaveUniversalConfig persists a universal configuration row and returns it.
func SaveUniversalConfig(t *testing.T, app *pocketbase.PocketBase, cfg services.UniversalConfig) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("universal_config")
	if err != nil {
		t.Fatalf("failed to find universal_config collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("config", cfg)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test universal config: %v", err)
	}

	return record
}

package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"renoquote/services"
)

// MigrateLegacyPackageSKUs finds package records whose items map is empty but
// whose flat SKU columns are populated, and rebuilds the items map from those
// columns. Safe to call on every startup -- records already carrying an items
// map are left untouched.
func MigrateLegacyPackageSKUs(app *pocketbase.PocketBase) error {
	packagesCol, err := app.FindCollectionByNameOrId("packages")
	if err != nil {
		return fmt.Errorf("migrate: could not find packages collection: %w", err)
	}

	records, err := app.FindAllRecords(packagesCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query packages: %w", err)
	}

	migrated := 0
	for _, rec := range records {
		items := map[string]string{}
		if err := rec.UnmarshalJSONField("items", &items); err != nil {
			log.Printf("migrate: package %q (%s) has malformed items, rebuilding: %v\n", rec.GetString("name"), rec.Id, err)
			items = map[string]string{}
		}
		if len(items) > 0 {
			continue
		}

		rebuilt := map[string]string{}
		for _, cat := range services.AllCategories {
			if sku := rec.GetString(services.LegacySKUFields[cat]); sku != "" {
				rebuilt[cat] = sku
			}
		}
		if len(rebuilt) == 0 {
			continue
		}

		rec.Set("items", rebuilt)
		if err := app.Save(rec); err != nil {
			log.Printf("migrate: failed to backfill items for package %q (%s): %v\n", rec.GetString("name"), rec.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: backfilled items map on %d package(s) from flat SKU columns.\n", migrated)
	}
	return nil
}

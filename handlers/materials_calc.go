package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// materialsRequest is the materials pricing input: a package to price and
// the measured areas used to bucket the bathroom size.
type materialsRequest struct {
	PackageID       string  `json:"packageId"`
	BathroomType    string  `json:"bathroomType"`
	FloorSqft       float64 `json:"floorSqft"`
	WetWallSqft     float64 `json:"wetWallSqft"`
	DryWallSqft     float64 `json:"dryWallSqft"`
	ShowerFloorSqft float64 `json:"showerFloorSqft"`
	AccentTileSqft  float64 `json:"accentTileSqft"`
}

// sizeBucket maps a measured floor area onto the size table rows. Zero (no
// measurement yet) buckets to normal.
func sizeBucket(floorSqft float64) string {
	switch {
	case floorSqft <= 0:
		return services.SizeNormal
	case floorSqft < 40:
		return services.SizeSmall
	case floorSqft < 55:
		return services.SizeNormal
	default:
		return services.SizeLarge
	}
}

// HandleMaterialsCalculate returns a handler that prices a package's
// materials against the current catalog, falling back to the flat estimate
// when the package carries no resolvable SKUs.
func HandleMaterialsCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req materialsRequest
		if err := e.BindBody(&req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		if req.PackageID == "" {
			return jsonError(e, http.StatusBadRequest, "Missing packageId")
		}

		pkgRec, err := app.FindRecordById("packages", req.PackageID)
		if err != nil {
			return jsonError(e, http.StatusNotFound, "Package not found")
		}
		pkg := packageFromRecord(pkgRec)

		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("materials_calc: load catalog: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Catalog unavailable")
		}
		cfg, _, err := loadUniversalConfig(app)
		if err != nil {
			log.Printf("materials_calc: load universal config: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Configuration unavailable")
		}

		bathroomType := req.BathroomType
		if bathroomType == "" {
			bathroomType = cfg.DefaultSettings.BathroomType
		}
		coverage := pkg.UniversalToggles.WallTileCoverage
		if coverage == "" {
			coverage = cfg.DefaultSettings.WallTileCoverage
		}

		design := services.DesignConfig{
			BathroomType:     bathroomType,
			WallTileCoverage: coverage,
			BathroomSize:     sizeBucket(req.FloorSqft),
			Items:            pkg.Items,
		}

		// Packages with no SKU that resolves against the catalog get the
		// flat estimate instead of a per-SKU price of zero.
		if !services.HasResolvableSKUs(design, catalog) {
			subtotal := services.EstimateSubtotal(bathroomType)
			return e.JSON(http.StatusOK, map[string]any{
				"packageId":   pkg.ID,
				"packageName": pkg.Name,
				"subtotal":    subtotal,
				"total":       subtotal,
				"isEstimate":  true,
			})
		}

		result := services.PriceMaterials(design, catalog, &cfg)
		return e.JSON(http.StatusOK, map[string]any{
			"packageId":   pkg.ID,
			"packageName": pkg.Name,
			"subtotal":    result.Subtotal,
			"total":       result.Subtotal,
			"breakdown":   result,
			"warnings":    result.Warnings,
			"isEstimate":  false,
		})
	}
}

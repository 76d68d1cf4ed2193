package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// applyTogglesRequest optionally overrides the active selections derived
// from the stored configuration's default settings.
type applyTogglesRequest struct {
	BathroomType     string `json:"bathroomType"`
	WallTileCoverage string `json:"wallTileCoverage"`
}

// HandleApplyToggles returns a handler that pushes the universal
// configuration onto every package: each record is transformed in memory and
// committed individually, so one bad record cannot block the rest.
func HandleApplyToggles(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req applyTogglesRequest
		if err := e.BindBody(&req); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		cfg, _, err := loadUniversalConfig(app)
		if err != nil {
			log.Printf("apply_toggles: load universal config: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Configuration unavailable")
		}
		if req.BathroomType != "" {
			if _, ok := cfg.BathroomTypeByName(req.BathroomType); !ok {
				return jsonError(e, http.StatusBadRequest, "Unknown bathroom type")
			}
			cfg.DefaultSettings.BathroomType = req.BathroomType
		}
		if req.WallTileCoverage != "" {
			cfg.DefaultSettings.WallTileCoverage = req.WallTileCoverage
		}
		snap := services.SnapshotFromConfig(cfg)

		packagesCol, err := app.FindCollectionByNameOrId("packages")
		if err != nil {
			log.Printf("apply_toggles: packages collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Package store unavailable")
		}
		records, err := app.FindAllRecords(packagesCol)
		if err != nil {
			log.Printf("apply_toggles: query packages: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Package store unavailable")
		}

		updated := 0
		failed := 0
		for _, rec := range records {
			pkg := services.ApplyToggles(snap, packageFromRecord(rec))
			applyPackageToRecord(pkg, rec)
			if err := app.Save(rec); err != nil {
				log.Printf("apply_toggles: save package %q (%s): %v", rec.GetString("name"), rec.Id, err)
				failed++
				continue
			}
			updated++
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success":         failed == 0,
			"packagesUpdated": updated,
			"packagesFailed":  failed,
			"appliedSettings": snap,
		})
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleUniversalConfigGet returns a handler that serves the persisted
// universal configuration, or the hardcoded default when none exists yet.
func HandleUniversalConfigGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cfg, isDefault, err := loadUniversalConfig(app)
		if err != nil {
			log.Printf("universal_config_get: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Configuration unavailable")
		}
		return e.JSON(http.StatusOK, map[string]any{
			"config":    cfg,
			"isDefault": isDefault,
		})
	}
}

// HandleUniversalConfigSave returns a handler that upserts the single
// universal configuration row.
func HandleUniversalConfigSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var cfg services.UniversalConfig
		if err := e.BindBody(&cfg); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		if len(cfg.BathroomTypes) == 0 || len(cfg.SquareFootage) == 0 {
			return jsonError(e, http.StatusBadRequest, "Configuration must include bathroom types and square footage tables")
		}
		cfg.UpdatedAt = ""

		col, err := app.FindCollectionByNameOrId("universal_config")
		if err != nil {
			log.Printf("universal_config_save: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Configuration store unavailable")
		}

		// Single logical row: update the existing record when present.
		records, err := app.FindRecordsByFilter(col, "", "-updated", 1, 0, nil)
		if err != nil {
			log.Printf("universal_config_save: query: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Configuration store unavailable")
		}

		var rec *core.Record
		if len(records) > 0 {
			rec = records[0]
		} else {
			rec = core.NewRecord(col)
		}
		rec.Set("config", cfg)
		if err := app.Save(rec); err != nil {
			log.Printf("universal_config_save: save: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to save configuration")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"success": true,
			"id":      rec.Id,
		})
	}
}

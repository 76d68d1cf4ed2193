package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/collections"
	"renoquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyPackageSKUs(app); err != nil {
			log.Printf("Warning: legacy SKU migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Labor quotes ─────────────────────────────────────────
		se.Router.POST("/api/quotes/calculate", handlers.HandleQuoteCalculate(app))
		se.Router.GET("/api/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		// ── Materials pricing ────────────────────────────────────
		se.Router.POST("/api/materials/calculate", handlers.HandleMaterialsCalculate(app))

		// ── Universal configuration ──────────────────────────────
		se.Router.GET("/api/universal-config", handlers.HandleUniversalConfigGet(app))
		se.Router.POST("/api/universal-config", handlers.HandleUniversalConfigSave(app))
		se.Router.POST("/api/universal-config/apply", handlers.HandleApplyToggles(app))

		// ── Admin catalog reads & rate card edits ────────────────
		se.Router.GET("/api/rate-lines", handlers.HandleRateLineList(app))
		se.Router.POST("/api/rate-lines", handlers.HandleRateLineUpsert(app))
		se.Router.GET("/api/multipliers", handlers.HandleMultiplierList(app))
		se.Router.GET("/api/products", handlers.HandleProductList(app))
		se.Router.GET("/api/packages", handlers.HandlePackageList(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"renoquote/services"
)

// HandleRateLineList returns a handler that lists every rate line, active or
// not, in line code order.
func HandleRateLineList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("rate_lines")
		if err != nil {
			log.Printf("rate_line_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Rate card unavailable")
		}
		records, err := app.FindRecordsByFilter(col, "", "line_code", 0, 0, nil)
		if err != nil {
			log.Printf("rate_line_list: query: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Rate card unavailable")
		}

		lines := make([]map[string]any, 0, len(records))
		for _, r := range records {
			lines = append(lines, map[string]any{
				"id":                r.Id,
				"line_code":         r.GetString("line_code"),
				"line_name":         r.GetString("line_name"),
				"unit":              r.GetString("unit"),
				"base_price":        r.GetFloat("base_price"),
				"price_per_unit":    r.GetFloat("price_per_unit"),
				"base_applies_once": r.GetBool("base_applies_once"),
				"active":            r.GetBool("active"),
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"rateLines": lines})
	}
}

// HandleRateLineUpsert returns a handler that creates or updates a rate line
// by line code. The body is a loose JSON object so admin tooling can send
// partial updates; absent fields keep their stored values.
func HandleRateLineUpsert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		body := map[string]any{}
		if err := e.BindBody(&body); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}
		code := cast.ToString(body["line_code"])
		if code == "" {
			return jsonError(e, http.StatusBadRequest, "Missing line_code")
		}

		col, err := app.FindCollectionByNameOrId("rate_lines")
		if err != nil {
			log.Printf("rate_line_upsert: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Rate card unavailable")
		}

		records, err := app.FindRecordsByFilter(col, "line_code = {:code}", "", 1, 0, map[string]any{"code": code})
		if err != nil {
			log.Printf("rate_line_upsert: query %q: %v", code, err)
			return jsonError(e, http.StatusInternalServerError, "Rate card unavailable")
		}

		var rec *core.Record
		created := false
		if len(records) > 0 {
			rec = records[0]
		} else {
			rec = core.NewRecord(col)
			rec.Set("line_code", code)
			rec.Set("active", true)
			created = true
		}

		if v, ok := body["line_name"]; ok {
			rec.Set("line_name", cast.ToString(v))
		}
		if v, ok := body["unit"]; ok {
			rec.Set("unit", cast.ToString(v))
		}
		if v, ok := body["base_price"]; ok {
			rec.Set("base_price", cast.ToFloat64(v))
		}
		if v, ok := body["price_per_unit"]; ok {
			rec.Set("price_per_unit", cast.ToFloat64(v))
		}
		if v, ok := body["base_applies_once"]; ok {
			rec.Set("base_applies_once", cast.ToBool(v))
		}
		if v, ok := body["active"]; ok {
			rec.Set("active", cast.ToBool(v))
		}

		if rec.GetString("line_name") == "" || rec.GetString("unit") == "" {
			return jsonError(e, http.StatusBadRequest, "line_name and unit are required")
		}

		if err := app.Save(rec); err != nil {
			log.Printf("rate_line_upsert: save %q: %v", code, err)
			return jsonError(e, http.StatusInternalServerError, "Failed to save rate line")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":      rec.Id,
			"created": created,
		})
	}
}

// HandleMultiplierList returns a handler that lists the project multipliers.
func HandleMultiplierList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		mults, err := loadMultipliers(app)
		if err != nil {
			log.Printf("multiplier_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Multipliers unavailable")
		}
		return e.JSON(http.StatusOK, map[string]any{"multipliers": mults})
	}
}

// HandleProductList returns a handler that lists catalog products, optionally
// filtered by category.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			log.Printf("product_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Catalog unavailable")
		}

		filter := ""
		params := map[string]any{}
		if category := e.Request.URL.Query().Get("category"); category != "" {
			filter = "category = {:category}"
			params["category"] = category
		}
		records, err := app.FindRecordsByFilter(col, filter, "sku", 0, 0, params)
		if err != nil {
			log.Printf("product_list: query: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Catalog unavailable")
		}

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
		}
		return e.JSON(http.StatusOK, map[string]any{"products": products})
	}
}

// HandlePackageList returns a handler that lists design packages with their
// resolved item maps.
func HandlePackageList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("packages")
		if err != nil {
			log.Printf("package_list: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Package store unavailable")
		}
		records, err := app.FindRecordsByFilter(col, "", "name", 0, 0, nil)
		if err != nil {
			log.Printf("package_list: query: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Package store unavailable")
		}

		packages := make([]services.Package, 0, len(records))
		for _, r := range records {
			packages = append(packages, packageFromRecord(r))
		}
		return e.JSON(http.StatusOK, map[string]any{"packages": packages})
	}
}

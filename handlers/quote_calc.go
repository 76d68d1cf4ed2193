package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleQuoteCalculate returns a handler that runs the full labor quote
// calculation for a submitted intake form and persists the result.
func HandleQuoteCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form services.QuoteForm
		if err := e.BindBody(&form); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid request body")
		}

		rates, err := loadRateCard(app)
		if err != nil {
			log.Printf("quote_calc: load rate card: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Rate card unavailable")
		}
		mults, err := loadMultipliers(app)
		if err != nil {
			log.Printf("quote_calc: load multipliers: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Multipliers unavailable")
		}

		quote, err := services.BuildQuote(form, rates, mults)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return jsonValidationError(e, verr.Fields)
			}
			log.Printf("quote_calc: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Calculation failed")
		}

		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_calc: quotes collection: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Quote store unavailable")
		}
		rec := core.NewRecord(quotesCol)
		rec.Set("customer_name", form.CustomerName)
		rec.Set("form", form)
		rec.Set("result", quote)
		rec.Set("grand_total", quote.Totals.GrandTotal)
		if err := app.Save(rec); err != nil {
			log.Printf("quote_calc: save quote: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to save quote")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":    rec.Id,
			"quote": quote,
		})
	}
}

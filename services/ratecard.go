package services

import "sort"

// RateLine is one billable labor operation from the editable rate card.
type RateLine struct {
	LineCode        string  `json:"line_code"`
	LineName        string  `json:"line_name"`
	Unit            string  `json:"unit"`
	BasePrice       float64 `json:"base_price"`
	PricePerUnit    float64 `json:"price_per_unit"`
	BaseAppliesOnce bool    `json:"base_applies_once"`
	Active          bool    `json:"active"`
}

// ProjectMultiplier is a percentage applied to a named subtotal.
type ProjectMultiplier struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Basis          string  `json:"basis"`
	DefaultPercent float64 `json:"default_percent"`
}

// Fixed multiplier codes. A missing multiplier row contributes zero.
const (
	MultContingency = "CONTINGENCY"
	MultCondo       = "CONDO"
	MultPre1980     = "PRE1980"
	MultPMFee       = "PM_FEE"
)

// LineItem is a priced instance of a rate line for a calculated quantity.
type LineItem struct {
	LineCode    string  `json:"line_code"`
	LineName    string  `json:"line_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	BaseApplied bool    `json:"base_applied"`
	Extended    float64 `json:"extended"`
}

// QuoteTotals holds the labour subtotal and every uplift applied to it.
type QuoteTotals struct {
	LabourSubtotal float64 `json:"labour_subtotal"`
	Contingency    float64 `json:"contingency"`
	CondoUplift    float64 `json:"condo_uplift"`
	OldHomeUplift  float64 `json:"oldhome_uplift"`
	PMFee          float64 `json:"pm_fee"`
	GrandTotal     float64 `json:"grand_total"`
}

/// CalculatedQuote is an immutable labor quote snapshot: fully computed or
// not at all.
type CalculatedQuote struct {
	LineItems []LineItem  `json:"line_items"`
	Totals    QuoteTotals `json:"totals"`
	Meta      QuoteMeta   `json:"calculation_meta"`
	RawForm   QuoteForm   `json:"raw_form_data"`
}

// CalcLineExtended prices one line. The base fee fires at most once per
// line, when the rate carries the base_applies_once flag and the quantity is
// positive; it models setup costs that do not scale with quantity.
func CalcLineExtended(rate RateLine, qty float64) (extended float64, baseApplied bool) {
	extended = rate.PricePerUnit * qty
	if rate.BaseAppliesOnce && qty > 0 {
		extended += rate.BasePrice
		baseApplied = true
	}
	return extended, baseApplied
}

// PriceQuantities resolves every quantity against the rate card. Codes with
// no matching active rate line are silently omitted: catalog gaps degrade a
// quote, they do not fail it. Output order follows the canonical line code
// order; unknown codes sort alphabetically after it.
func PriceQuantities(quantities Quantities, rates map[string]RateLine) []LineItem {
	items := make([]LineItem, 0, len(quantities))
	for _, code := range orderedCodes(quantities) {
		qty := quantities[code]
		rate, ok := rates[code]
		if !ok || !rate.Active {
			continue
		}
		extended, baseApplied := CalcLineExtended(rate, qty)
		items = append(items, LineItem{
			LineCode:    rate.LineCode,
			LineName:    rate.LineName,
			Quantity:    qty,
			Unit:        rate.Unit,
			UnitPrice:   rate.PricePerUnit,
			BaseApplied: baseApplied,
			Extended:    extended,
		})
	}
	return items
}

// orderedCodes returns the quantity map's keys in the canonical line code
// order, with any codes outside the canonical list appended alphabetically.
func orderedCodes(quantities Quantities) []string {
	seen := make(map[string]bool, len(quantities))
	codes := make([]string, 0, len(quantities))
	for _, code := range lineCodeOrder {
		if _, ok := quantities[code]; ok {
			codes = append(codes, code)
			seen[code] = true
		}
	}
	var extra []string
	for code := range quantities {
		if !seen[code] {
			extra = append(extra, code)
		}
	}
	sort.Strings(extra)
	return append(codes, extra...)
}

// LabourSubtotal sums the extended cost of every line item.
func LabourSubtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Extended
	}
	return sum
}

// ApplyMultipliers computes the uplift stack in its fixed order: contingency,
// condo and pre-1980 uplifts off the labour subtotal, then the PM fee off
// the running total of all four. A multiplier missing from the store
// contributes zero.
func ApplyMultipliers(subtotal float64, form QuoteForm, mults map[string]ProjectMultiplier) QuoteTotals {
	pct := func(code string) float64 {
		if m, ok := mults[code]; ok {
			return m.DefaultPercent / 100
		}
		return 0
	}

	totals := QuoteTotals{LabourSubtotal: subtotal}
	totals.Contingency = subtotal * pct(MultContingency)
	if form.BuildingType == BuildingCondo {
		totals.CondoUplift = subtotal * pct(MultCondo)
	}
	if form.YearBuilt == YearPre1980 {
		totals.OldHomeUplift = subtotal * pct(MultPre1980)
	}
	base := subtotal + totals.Contingency + totals.CondoUplift + totals.OldHomeUplift
	totals.PMFee = base * pct(MultPMFee)
	totals.GrandTotal = base + totals.PMFee
	return totals
}

// BuildQuote runs the full labor calculation: quantity mapping, line
// pricing, then the multiplier stack. Pure given its inputs; callers fetch
// the rate card and multipliers first so repeated calls against an unchanged
// store are deterministic.
func BuildQuote(form QuoteForm, rates map[string]RateLine, mults map[string]ProjectMultiplier) (CalculatedQuote, error) {
	quantities, meta, err := MapQuantities(form)
	if err != nil {
		return CalculatedQuote{}, err
	}
	items := PriceQuantities(quantities, rates)
	totals := ApplyMultipliers(LabourSubtotal(items), form, mults)
	return CalculatedQuote{
		LineItems: items,
		Totals:    totals,
		Meta:      meta,
		RawForm:   form,
	}, nil
}

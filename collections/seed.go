package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type rateLineDef struct {
	lineCode        string
	lineName        string
	unit            string
	basePrice       float64
	pricePerUnit    float64
	baseAppliesOnce bool
}

type multiplierDef struct {
	code           string
	name           string
	basis          string
	defaultPercent float64
}

type productDef struct {
	sku          string
	name         string
	brand        string
	category     string
	price        float64
	pricePerSqft float64
	cost         float64
	costPerSqft  float64
}

type packageDef struct {
	name        string
	description string
	items       map[string]string
}

// Seed populates the rate card, multipliers, product catalog and design
// packages with realistic renovation data. It is safe to call on every
// startup because it returns early if any rate line records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if rate lines already exist ────────────────
	rateLinesCol, err := app.FindCollectionByNameOrId("rate_lines")
	if err != nil {
		return fmt.Errorf("seed: could not find rate_lines collection: %w", err)
	}
	existing, err := app.FindAllRecords(rateLinesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query rate_lines: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: rate_lines collection is empty – inserting seed data …")

	multipliersCol, err := app.FindCollectionByNameOrId("project_multipliers")
	if err != nil {
		return fmt.Errorf("seed: could not find project_multipliers collection: %w", err)
	}
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	packagesCol, err := app.FindCollectionByNameOrId("packages")
	if err != nil {
		return fmt.Errorf("seed: could not find packages collection: %w", err)
	}

	// ── rate card ────────────────────────────────────────────────────
	rateLines := []rateLineDef{
		{services.LineDemolition, "Demolition & Disposal", "sqft", 350, 4.50, true},
		{services.LineAsbestosTest, "Asbestos Testing (Pre-1980)", "each", 0, 550, false},
		{services.LineSubstrate, "Substrate & Cement Board", "sqft", 150, 7.25, true},
		{services.LineWaterproof, "Kerdi Waterproofing Membrane", "sqft", 200, 6.00, true},
		{services.LineFloorTile, "Floor Tile Installation", "sqft", 0, 14.00, false},
		{services.LineWetWallTile, "Wet Area Wall Tile Installation", "sqft", 0, 16.50, false},
		{services.LineDryWallTile, "Dry Area Wall Tile Installation", "sqft", 0, 13.50, false},
		{services.LineShowerFloor, "Shower Floor Mosaic Installation", "sqft", 0, 22.00, false},
		{services.LineVanity, "Vanity Installation & Hookup", "each", 0, 650, false},
		{services.LineElectrical, "Electrical Item (Switch/Outlet/Fixture)", "each", 0, 225, false},
		{services.LineRecess, "Recessed Shower Conversion", "each", 0, 1450, false},
		{services.LineScaffold, "High Ceiling Scaffold Setup", "each", 0, 475, false},
		{services.LineHeatedFloor, "Heated Floor System (Supply & Install)", "each", 0, 1800, false},
		{services.LineNiche, "Recessed Shower Niche", "each", 0, 425, false},
		{services.LineGrabBars, "Grab Bar Package (Blocked & Mounted)", "each", 0, 385, false},
		{services.LineGlassDoor, "Glass Shower Door Installation", "each", 0, 950, false},
		{services.LineExhaustFan, "Exhaust Fan Replacement & Venting", "each", 0, 540, false},
	}
	for _, d := range rateLines {
		r := core.NewRecord(rateLinesCol)
		r.Set("line_code", d.lineCode)
		r.Set("line_name", d.lineName)
		r.Set("unit", d.unit)
		r.Set("base_price", d.basePrice)
		r.Set("price_per_unit", d.pricePerUnit)
		r.Set("base_applies_once", d.baseAppliesOnce)
		r.Set("active", true)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save rate line %q: %w", d.lineCode, err)
		}
	}

	// ── project multipliers ──────────────────────────────────────────
	multipliers := []multiplierDef{
		{services.MultContingency, "Contingency", "subtotal", 10},
		{services.MultCondo, "Condo Logistics Uplift", "subtotal", 10},
		{services.MultPre1980, "Pre-1980 Construction Uplift", "subtotal", 7.5},
		{services.MultPMFee, "Project Management Fee", "running_total", 12},
	}
	for _, d := range multipliers {
		r := core.NewRecord(multipliersCol)
		r.Set("code", d.code)
		r.Set("name", d.name)
		r.Set("basis", d.basis)
		r.Set("default_percent", d.defaultPercent)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save multiplier %q: %w", d.code, err)
		}
	}

	// ── product catalog ──────────────────────────────────────────────
	products := []productDef{
		// Tile (priced per sqft)
		{sku: "TIL-CAR-1224", name: "Carrara Look Porcelain 12x24", brand: "Anatolia", category: services.CatFloorTile, pricePerSqft: 6.50, costPerSqft: 3.90},
		{sku: "TIL-HEX-MAT", name: "Matte Hex Porcelain 8in", brand: "Daltile", category: services.CatFloorTile, pricePerSqft: 8.25, costPerSqft: 5.10},
		{sku: "TIL-SUB-36W", name: "Subway Gloss White 3x6", brand: "Olympia", category: services.CatWallTile, pricePerSqft: 4.25, costPerSqft: 2.40},
		{sku: "TIL-ZEL-44", name: "Zellige Look Ceramic 4x4", brand: "Bedrosians", category: services.CatWallTile, pricePerSqft: 9.75, costPerSqft: 6.20},
		{sku: "TIL-PEB-MOS", name: "Pebble Mosaic Shower Floor", brand: "MSI", category: services.CatShowerFloorTile, pricePerSqft: 11.00, costPerSqft: 7.15},
		{sku: "TIL-HEX-2BK", name: "Black Hex Mosaic 2in", brand: "Daltile", category: services.CatShowerFloorTile, pricePerSqft: 12.50, costPerSqft: 8.00},
		{sku: "TIL-FLU-ACC", name: "Fluted Accent Tile 2x8", brand: "Bedrosians", category: services.CatAccentTile, pricePerSqft: 14.00, costPerSqft: 9.25},
		// Fixtures (flat price)
		{sku: "VAN-SHA-48W", name: "Shaker Vanity 48in White Oak", brand: "Fairmont", category: services.CatVanity, price: 1299.99, cost: 820},
		{sku: "VAN-FLT-36G", name: "Floating Vanity 36in Grey", brand: "Wyndham", category: services.CatVanity, price: 949.00, cost: 590},
		{sku: "TUB-ALC-60", name: "Alcove Soaker Tub 60in", brand: "American Standard", category: services.CatTub, price: 849.00, cost: 510},
		{sku: "TUB-FRE-67", name: "Freestanding Tub 67in", brand: "Wetstyle", category: services.CatTub, price: 2450.00, cost: 1580},
		{sku: "TBF-FLR-BN", name: "Floor Mount Tub Filler Brushed Nickel", brand: "Riobel", category: services.CatTubFiller, price: 1150.00, cost: 720},
		{sku: "TBF-WAL-CH", name: "Wall Mount Tub Filler Chrome", brand: "Delta", category: services.CatTubFiller, price: 485.00, cost: 295},
		{sku: "TOI-DFL-01", name: "Dual Flush Elongated Toilet", brand: "Toto", category: services.CatToilet, price: 389.50, cost: 240},
		{sku: "TOI-WAL-02", name: "Wall Hung Toilet w/ Carrier", brand: "Geberit", category: services.CatToilet, price: 1185.00, cost: 760},
		{sku: "SHW-3PC-BN", name: "3-Piece Shower System Brushed Nickel", brand: "Riobel", category: services.CatShower, price: 745.00, cost: 455},
		{sku: "SHW-RAI-MB", name: "Rain Head Shower System Matte Black", brand: "Kohler", category: services.CatShower, price: 1095.00, cost: 680},
		{sku: "FAU-SGL-CH", name: "Single Hole Faucet Chrome", brand: "Moen", category: services.CatFaucet, price: 229.00, cost: 135},
		{sku: "FAU-WID-BG", name: "Widespread Faucet Brushed Gold", brand: "Delta", category: services.CatFaucet, price: 415.00, cost: 260},
		{sku: "GLZ-FIX-10", name: "Fixed Glass Panel 10mm", brand: "Fleurco", category: services.CatGlazing, price: 875.00, cost: 540},
		{sku: "GLZ-SLD-60", name: "Sliding Glass Door 60in", brand: "Fleurco", category: services.CatGlazing, price: 1350.00, cost: 860},
		{sku: "MIR-LED-30", name: "LED Backlit Mirror 30in", brand: "Kalia", category: services.CatMirror, price: 249.00, cost: 145},
		{sku: "TWB-24-BN", name: "Towel Bar 24in Brushed Nickel", brand: "Moen", category: services.CatTowelBar, price: 45.00, cost: 22},
		{sku: "TPH-STD-BN", name: "Toilet Paper Holder Brushed Nickel", brand: "Moen", category: services.CatToiletPaperHolder, price: 32.00, cost: 16},
		{sku: "HOK-DBL-BN", name: "Double Robe Hook Brushed Nickel", brand: "Moen", category: services.CatHook, price: 24.00, cost: 12},
		{sku: "LGT-VAN-3L", name: "3-Light Vanity Bar", brand: "Kichler", category: services.CatLighting, price: 189.00, cost: 105},
	}
	for _, d := range products {
		r := core.NewRecord(productsCol)
		r.Set("sku", d.sku)
		r.Set("name", d.name)
		r.Set("brand", d.brand)
		r.Set("category", d.category)
		r.Set("price", d.price)
		r.Set("price_per_sqft", d.pricePerSqft)
		r.Set("cost", d.cost)
		r.Set("cost_per_sqft", d.costPerSqft)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product %q: %w", d.sku, err)
		}
	}

	// ── design packages ──────────────────────────────────────────────
	packages := []packageDef{
		{
			name:        "Modern Classic",
			description: "Bright subway and carrara look with brushed nickel fixtures.",
			items: map[string]string{
				services.CatFloorTile:         "TIL-CAR-1224",
				services.CatWallTile:          "TIL-SUB-36W",
				services.CatShowerFloorTile:   "TIL-PEB-MOS",
				services.CatAccentTile:        "TIL-FLU-ACC",
				services.CatVanity:            "VAN-SHA-48W",
				services.CatTub:               "TUB-ALC-60",
				services.CatTubFiller:         "TBF-WAL-CH",
				services.CatToilet:            "TOI-DFL-01",
				services.CatShower:            "SHW-3PC-BN",
				services.CatFaucet:            "FAU-SGL-CH",
				services.CatGlazing:           "GLZ-SLD-60",
				services.CatMirror:            "MIR-LED-30",
				services.CatTowelBar:          "TWB-24-BN",
				services.CatToiletPaperHolder: "TPH-STD-BN",
				services.CatHook:              "HOK-DBL-BN",
				services.CatLighting:          "LGT-VAN-3L",
			},
		},
		{
			name:        "Spa Retreat",
			description: "Freestanding tub, zellige walls and matte black rain shower.",
			items: map[string]string{
				services.CatFloorTile:       "TIL-HEX-MAT",
				services.CatWallTile:        "TIL-ZEL-44",
				services.CatShowerFloorTile: "TIL-HEX-2BK",
				services.CatVanity:          "VAN-FLT-36G",
				services.CatTub:             "TUB-FRE-67",
				services.CatTubFiller:       "TBF-FLR-BN",
				services.CatToilet:          "TOI-WAL-02",
				services.CatShower:          "SHW-RAI-MB",
				services.CatFaucet:          "FAU-WID-BG",
				services.CatGlazing:         "GLZ-FIX-10",
				services.CatMirror:          "MIR-LED-30",
				services.CatLighting:        "LGT-VAN-3L",
			},
		},
		{
			// Placeholder package with no SKU selections; materials pricing
			// falls back to the flat estimate for it.
			name:        "Builder Basic",
			description: "Contractor-selected materials, allowance based.",
			items:       map[string]string{},
		},
	}
	for _, d := range packages {
		r := core.NewRecord(packagesCol)
		r.Set("name", d.name)
		r.Set("description", d.description)
		r.Set("items", d.items)
		// Dual-write: every items entry mirrors into its flat column.
		for cat, sku := range d.items {
			r.Set(services.LegacySKUFields[cat], sku)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save package %q: %w", d.name, err)
		}
	}

	log.Printf("seed: inserted %d rate lines, %d multipliers, %d products, %d packages\n",
		len(rateLines), len(multipliers), len(products), len(packages))
	return nil
}

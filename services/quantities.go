package services

import (
	"fmt"
	"sort"
	"strings"
)

// Billable line codes produced by the quantity mapper. A code appears in the
// quantity map only when its triggering condition holds; a rule firing on a
// zero quantity omits the code entirely so the rate engine can tell "not
// applicable" apart from "applicable with qty 0".
const (
	LineDemolition   = "DEM"
	LineAsbestosTest = "ASB-T"
	LineSubstrate    = "SUB-GRB"
	LineWaterproof   = "WPF-KER"
	LineFloorTile    = "TILE-FLR"
	LineWetWallTile  = "TILE-WET"
	LineDryWallTile  = "TILE-DRY"
	LineShowerFloor  = "TILE-SHF"
	LineVanity       = "VAN"
	LineElectrical   = "ELEC"
	LineRecess       = "RECESS"
	LineScaffold     = "SCAFF"
	LineHeatedFloor  = "HEATED-FLR"
	LineNiche        = "NICHE"
	LineGrabBars     = "GRAB-BAR"
	LineGlassDoor    = "GLASS-DR"
	LineExhaustFan   = "FAN"
)

// lineCodeOrder fixes the evaluation order of line items so a quote is
// byte-identical across repeated calculations with the same inputs.
var lineCodeOrder = []string{
	LineDemolition,
	LineAsbestosTest,
	LineSubstrate,
	LineWaterproof,
	LineFloorTile,
	LineWetWallTile,
	LineDryWallTile,
	LineShowerFloor,
	LineVanity,
	LineElectrical,
	LineRecess,
	LineScaffold,
	LineHeatedFloor,
	LineNiche,
	LineGrabBars,
	LineGlassDoor,
	LineExhaustFan,
}

// Intake form bathroom type values.
const (
	FormBathtub      = "bathtub"
	FormWalkInShower = "walkin_shower"
	FormTubShower    = "tub_shower"
	FormSinkToilet   = "sink_toilet"
)

// Building and year classifications used by the project multipliers.
const (
	BuildingCondo = "condo"
	YearPre1980   = "pre_1980"
)

// Upgrades are the boolean upgrade flags on the intake form. Each maps 1:1
// to a fixed-quantity line code; an absent or false flag omits the code.
type Upgrades struct {
	HeatedFloors bool `json:"heated_floors"`
	ShowerNiche  bool `json:"shower_niche"`
	GrabBars     bool `json:"grab_bars"`
	GlassDoor    bool `json:"glass_door"`
	ExhaustFan   bool `json:"exhaust_fan"`
}

// QuoteForm is the structured renovation intake record.
type QuoteForm struct {
	BathroomType    string   `json:"bathroom_type"`
	BuildingType    string   `json:"building_type"`
	YearBuilt       string   `json:"year_built"`
	FloorSqft       float64  `json:"floor_sqft"`
	WetWallSqft     float64  `json:"wet_wall_sqft"`
	DryWallSqft     float64  `json:"dry_wall_sqft"`
	ShowerFloorSqft float64  `json:"shower_floor_sqft"`
	AccentTileSqft  float64  `json:"accent_tile_sqft"`
	CeilingHeightFt float64  `json:"ceiling_height_ft"`
	VanityWidthIn   float64  `json:"vanity_width_in"`
	ElectricalItems int      `json:"electrical_items"`
	CustomerName    string   `json:"customer_name,omitempty"`
	Upgrades        Upgrades `json:"upgrades"`
}

// Quantities maps line codes to calculated billable quantities for one
// calculation. Keys are unique; insertion order carries no meaning.
type Quantities map[string]float64

// QuoteMeta echoes derived values and the inputs that shaped the quantity
// map, for audit output.
type QuoteMeta struct {
	TotalFloorSqft float64 `json:"total_floor_sqft"`
	TotalWallSqft  float64 `json:"total_wall_sqft"`
	BathroomType   string  `json:"bathroom_type"`
	BuildingType   string  `json:"building_type"`
	YearBuilt      string  `json:"year_built"`
}

// ValidationError reports intake form fields that block a calculation. The
// calculation is rejected before any computation begins; it is never
// partially applied.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid quote form: " + strings.Join(parts, "; ")
}

// wetWallTypes lists the bathroom types that have a wet (tiled) wall zone.
var wetWallTypes = map[string]bool{
	FormBathtub:      true,
	FormWalkInShower: true,
	FormTubShower:    true,
}

// validateForm checks only the fields required for the form's bathroom
// type. Optional fields never fail validation.
func validateForm(form QuoteForm) error {
	fields := make(map[string]string)

	switch form.BathroomType {
	case FormBathtub, FormWalkInShower, FormTubShower, FormSinkToilet:
	case "":
		fields["bathroom_type"] = "Bathroom type is required"
	default:
		fields["bathroom_type"] = fmt.Sprintf("Unknown bathroom type %q", form.BathroomType)
	}

	if form.BathroomType != FormSinkToilet && form.FloorSqft <= 0 {
		fields["floor_sqft"] = "Floor area is required"
	}
	if wetWallTypes[form.BathroomType] && form.WetWallSqft <= 0 {
		fields["wet_wall_sqft"] = "Wet wall area is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// MapQuantities turns an intake form into the billable quantity map and its
// metadata. It is a pure function of the form: no store access, no hidden
// state.
func MapQuantities(form QuoteForm) (Quantities, QuoteMeta, error) {
	if err := validateForm(form); err != nil {
		return nil, QuoteMeta{}, err
	}

	q := Quantities{}

	// Area-driven codes, present only for a positive area.
	if form.FloorSqft > 0 {
		q[LineDemolition] = form.FloorSqft
		q[LineFloorTile] = form.FloorSqft
	}
	if form.WetWallSqft > 0 {
		q[LineSubstrate] = form.WetWallSqft
		q[LineWetWallTile] = form.WetWallSqft
	}
	if wpf := form.WetWallSqft + form.ShowerFloorSqft; wpf > 0 {
		q[LineWaterproof] = wpf
	}
	// Dry wall tile aggregates the "other walls" and accent feature areas.
	if dry := form.DryWallSqft + form.AccentTileSqft; dry > 0 {
		q[LineDryWallTile] = dry
	}
	if form.ShowerFloorSqft > 0 {
		q[LineShowerFloor] = form.ShowerFloorSqft
	}

	// Count- and presence-gated codes.
	if form.VanityWidthIn > 0 {
		q[LineVanity] = 1
	}
	if form.ElectricalItems > 0 {
		q[LineElectrical] = float64(form.ElectricalItems)
	}
	if form.BathroomType == FormWalkInShower {
		q[LineRecess] = 1
	}
	if form.CeilingHeightFt >= 9 {
		q[LineScaffold] = 1
	}
	if form.YearBuilt == YearPre1980 {
		q[LineAsbestosTest] = 1
	}

	// Boolean upgrade flags, 1:1 with fixed-quantity codes.
	if form.Upgrades.HeatedFloors {
		q[LineHeatedFloor] = 1
	}
	if form.Upgrades.ShowerNiche {
		q[LineNiche] = 1
	}
	if form.Upgrades.GrabBars {
		q[LineGrabBars] = 1
	}
	if form.Upgrades.GlassDoor {
		q[LineGlassDoor] = 1
	}
	if form.Upgrades.ExhaustFan {
		q[LineExhaustFan] = 1
	}

	meta := QuoteMeta{
		TotalFloorSqft: form.FloorSqft,
		TotalWallSqft:  form.WetWallSqft + form.DryWallSqft + form.AccentTileSqft,
		BathroomType:   form.BathroomType,
		BuildingType:   form.BuildingType,
		YearBuilt:      form.YearBuilt,
	}
	return q, meta, nil
}

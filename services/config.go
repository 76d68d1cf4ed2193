// Package services provides the pure pricing and catalog-rules computations
// for the renovation configurator: form-to-quantity mapping, rate card
// pricing, materials pricing, inclusion policy and the universal toggle
// transform. Nothing in this package touches the store.
package services

// Item category keys shared by packages, design configurations and the
// toggle applier. Slice order below is the canonical evaluation order, so
// breakdown output is reproducible for identical inputs.
const (
	CatFloorTile         = "floorTile"
	CatWallTile          = "wallTile"
	CatShowerFloorTile   = "showerFloorTile"
	CatAccentTile        = "accentTile"
	CatVanity            = "vanity"
	CatTub               = "tub"
	CatTubFiller         = "tubFiller"
	CatToilet            = "toilet"
	CatShower            = "shower"
	CatFaucet            = "faucet"
	CatGlazing           = "glazing"
	CatMirror            = "mirror"
	CatTowelBar          = "towelBar"
	CatToiletPaperHolder = "toiletPaperHolder"
	CatHook              = "hook"
	CatLighting          = "lighting"
)

// TileCategories are priced per square foot against the size table.
var TileCategories = []string{
	CatFloorTile,
	CatWallTile,
	CatShowerFloorTile,
	CatAccentTile,
}

// FixtureCategories are priced at the flat catalog price.
var FixtureCategories = []string{
	CatVanity,
	CatTub,
	CatTubFiller,
	CatToilet,
	CatShower,
	CatFaucet,
	CatGlazing,
	CatMirror,
	CatTowelBar,
	CatToiletPaperHolder,
	CatHook,
	CatLighting,
}

// AllCategories is TileCategories followed by FixtureCategories.
var AllCategories = append(append([]string{}, TileCategories...), FixtureCategories...)

// Bathroom type display names, as stored in the universal configuration.
const (
	TypeBathtub      = "Bathtub"
	TypeWalkInShower = "Walk-in Shower"
	TypeTubShower    = "Tub & Shower"
	TypeSinkToilet   = "Sink & Toilet"
)

// Wall tile coverage labels.
const (
	CoverageNone           = "None"
	CoverageHalfwayUp      = "Half way up"
	CoverageFloorToCeiling = "Floor to ceiling"
)

// Bathroom size keys for the square footage table.
const (
	SizeSmall  = "small"
	SizeNormal = "normal"
	SizeLarge  = "large"
)

// WallTileSqft holds the looked-up wall tile area for each coverage level.
type WallTileSqft struct {
	None           float64 `json:"none"`
	HalfwayUp      float64 `json:"halfwayUp"`
	FloorToCeiling float64 `json:"floorToCeiling"`
}

// SizeConfig holds per-category square footage for one bathroom size. Wall
// tile varies by bathroom type as well, so it is a nested table.
type SizeConfig struct {
	FloorTile       float64                 `json:"floorTile"`
	ShowerFloorTile float64                 `json:"showerFloorTile"`
	AccentTile      float64                 `json:"accentTile"`
	WallTile        map[string]WallTileSqft `json:"wallTile"`
}

// BathroomTypeConfig describes one bathroom type and which item categories
// it bills. A category absent from IncludedItems defaults to included; only
// an explicit false excludes it.
type BathroomTypeConfig struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	IncludedItems map[string]bool `json:"includedItems"`
}

// CoverageConfig describes one wall tile coverage option.
type CoverageConfig struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// DefaultSettings names the active selections the admin saved last.
type DefaultSettings struct {
	BathroomType     string `json:"bathroomType"`
	WallTileCoverage string `json:"wallTileCoverage"`
	BathroomSize     string `json:"bathroomSize"`
}

// UniversalConfig is the database-editable, cross-package policy: which item
// categories exist per bathroom type and how square footage scales by size
// and coverage. A single logical row; absence falls back to
// DefaultUniversalConfig.
type UniversalConfig struct {
	BathroomTypes     []BathroomTypeConfig  `json:"bathroomTypes"`
	WallTileCoverages []CoverageConfig      `json:"wallTileCoverages"`
	SquareFootage     map[string]SizeConfig `json:"squareFootageConfig"`
	DefaultSettings   DefaultSettings       `json:"defaultSettings"`
	UpdatedAt         string                `json:"updatedAt,omitempty"`
}

// BathroomTypeByName returns the config entry whose Name matches, if any.
func (c UniversalConfig) BathroomTypeByName(name string) (BathroomTypeConfig, bool) {
	for _, bt := range c.BathroomTypes {
		if bt.Name == name {
			return bt, true
		}
	}
	return BathroomTypeConfig{}, false
}

// CoverageMultiplier returns the multiplier for a coverage label, or 0 when
// the label is unknown.
func (c UniversalConfig) CoverageMultiplier(name string) float64 {
	for _, cov := range c.WallTileCoverages {
		if cov.Name == name {
			return cov.Multiplier
		}
	}
	return 0
}

// SizeOrDefault returns the size table entry for the given size key, falling
// back to the normal row when the key is unknown.
func (c UniversalConfig) SizeOrDefault(size string) SizeConfig {
	if sc, ok := c.SquareFootage[size]; ok {
		return sc
	}
	return c.SquareFootage[SizeNormal]
}

// DefaultUniversalConfig is the hardcoded fallback used whenever no
// configuration row has been persisted. It mirrors the shape of the stored
// row exactly.
func DefaultUniversalConfig() UniversalConfig {
	return UniversalConfig{
		BathroomTypes: []BathroomTypeConfig{
			{
				ID:   "bathtub",
				Name: TypeBathtub,
				IncludedItems: map[string]bool{
					CatShower:          false,
					CatGlazing:         false,
					CatShowerFloorTile: false,
				},
			},
			{
				ID:   "walkin_shower",
				Name: TypeWalkInShower,
				IncludedItems: map[string]bool{
					CatTub:       false,
					CatTubFiller: false,
				},
			},
			{
				ID:            "tub_shower",
				Name:          TypeTubShower,
				IncludedItems: map[string]bool{},
			},
			{
				ID:   "sink_toilet",
				Name: TypeSinkToilet,
				IncludedItems: map[string]bool{
					CatTub:             false,
					CatTubFiller:       false,
					CatShower:          false,
					CatGlazing:         false,
					CatWallTile:        false,
					CatAccentTile:      false,
					CatShowerFloorTile: false,
				},
			},
		},
		WallTileCoverages: []CoverageConfig{
			{ID: "none", Name: CoverageNone, Multiplier: 0},
			{ID: "halfway_up", Name: CoverageHalfwayUp, Multiplier: 0.5},
			{ID: "floor_to_ceiling", Name: CoverageFloorToCeiling, Multiplier: 1},
		},
		SquareFootage: map[string]SizeConfig{
			SizeSmall: {
				FloorTile:       35,
				ShowerFloorTile: 12,
				AccentTile:      15,
				WallTile: map[string]WallTileSqft{
					TypeBathtub:      {None: 0, HalfwayUp: 50, FloorToCeiling: 95},
					TypeWalkInShower: {None: 0, HalfwayUp: 55, FloorToCeiling: 110},
					TypeTubShower:    {None: 0, HalfwayUp: 60, FloorToCeiling: 115},
					TypeSinkToilet:   {None: 0, HalfwayUp: 30, FloorToCeiling: 60},
				},
			},
			SizeNormal: {
				FloorTile:       45,
				ShowerFloorTile: 16,
				AccentTile:      20,
				WallTile: map[string]WallTileSqft{
					TypeBathtub:      {None: 0, HalfwayUp: 65, FloorToCeiling: 120},
					TypeWalkInShower: {None: 0, HalfwayUp: 70, FloorToCeiling: 135},
					TypeTubShower:    {None: 0, HalfwayUp: 75, FloorToCeiling: 140},
					TypeSinkToilet:   {None: 0, HalfwayUp: 40, FloorToCeiling: 80},
				},
			},
			SizeLarge: {
				FloorTile:       60,
				ShowerFloorTile: 20,
				AccentTile:      25,
				WallTile: map[string]WallTileSqft{
					TypeBathtub:      {None: 0, HalfwayUp: 80, FloorToCeiling: 150},
					TypeWalkInShower: {None: 0, HalfwayUp: 90, FloorToCeiling: 170},
					TypeTubShower:    {None: 0, HalfwayUp: 95, FloorToCeiling: 175},
					TypeSinkToilet:   {None: 0, HalfwayUp: 50, FloorToCeiling: 100},
				},
			},
		},
		DefaultSettings: DefaultSettings{
			BathroomType:     TypeTubShower,
			WallTileCoverage: CoverageHalfwayUp,
			BathroomSize:     SizeNormal,
		},
	}
}

package services

// LegacySKUFields maps each item category to the flat package column that
// predates the items map. Both representations are written on every package
// mutation; readers that still consume the flat columns keep working.
var LegacySKUFields = map[string]string{
	CatFloorTile:         "floor_tile_sku",
	CatWallTile:          "wall_tile_sku",
	CatShowerFloorTile:   "shower_floor_tile_sku",
	CatAccentTile:        "accent_tile_sku",
	CatVanity:            "vanity_sku",
	CatTub:               "tub_sku",
	CatTubFiller:         "tub_filler_sku",
	CatToilet:            "toilet_sku",
	CatShower:            "shower_sku",
	CatFaucet:            "faucet_sku",
	CatGlazing:           "glazing_sku",
	CatMirror:            "mirror_sku",
	CatTowelBar:          "towel_bar_sku",
	CatToiletPaperHolder: "toilet_paper_holder_sku",
	CatHook:              "hook_sku",
	CatLighting:          "lighting_sku",
}

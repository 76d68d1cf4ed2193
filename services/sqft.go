package services

// CoverageKey maps a human-readable coverage label to the key used in the
// wall tile square footage table. Unknown labels map to "none".
func CoverageKey(label string) string {
	switch label {
	case CoverageHalfwayUp:
		return "halfwayUp"
	case CoverageFloorToCeiling:
		return "floorToCeiling"
	default:
		return "none"
	}
}

// ResolveWallTileSqft looks up the wall tile square footage for a size row,
// coverage label and bathroom type. The value is a pure table lookup, never
// interpolated. A bathroom type missing from the table falls back to the
// Walk-in Shower row, a conservative default that keeps quoting usable when
// the config predates a newly added type.
func ResolveWallTileSqft(size SizeConfig, coverage, bathroomType string) float64 {
	row, ok := size.WallTile[bathroomType]
	if !ok {
		row, ok = size.WallTile[TypeWalkInShower]
		if !ok {
			return 0
		}
	}
	switch CoverageKey(coverage) {
	case "halfwayUp":
		return row.HalfwayUp
	case "floorToCeiling":
		return row.FloorToCeiling
	default:
		return row.None
	}
}

// ResolveTileSqft returns the square footage for any tile category. Non-wall
// categories resolve directly off the size row with no bathroom type
// dependency.
func ResolveTileSqft(category string, size SizeConfig, coverage, bathroomType string) float64 {
	switch category {
	case CatFloorTile:
		return size.FloorTile
	case CatShowerFloorTile:
		return size.ShowerFloorTile
	case CatAccentTile:
		return size.AccentTile
	case CatWallTile:
		return ResolveWallTileSqft(size, coverage, bathroomType)
	default:
		return 0
	}
}

package services

// Package is the in-memory shape of one catalog package row. Items is the
// canonical category→SKU map; Legacy mirrors the flat *_SKU columns kept for
// backward compatibility. The toggle applier operates on copies of these
// records and never mutates its input (arena-of-records: transform in
// memory, commit per record).
type Package struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Items              map[string]string `json:"items"`
	Legacy             map[string]string `json:"legacy_skus"`
	UniversalToggles   ToggleSnapshot    `json:"universal_toggles"`
	WallTileMultiplier float64           `json:"wall_tile_multiplier"`
}

// ToggleSnapshot is the universal-config-derived policy pushed onto every
// package: the active bathroom type and coverage, the per-category inclusion
// toggles for that type, and the resolved wall tile multiplier.
type ToggleSnapshot struct {
	BathroomType       string          `json:"bathroomType"`
	WallTileCoverage   string          `json:"wallTileCoverage"`
	IncludedItems      map[string]bool `json:"includedItems"`
	WallTileMultiplier float64         `json:"wallTileMultiplier"`
}

// SnapshotFromConfig derives the applier input from a universal
// configuration using its default settings as the active selections.
func SnapshotFromConfig(cfg UniversalConfig) ToggleSnapshot {
	snap := ToggleSnapshot{
		BathroomType:       cfg.DefaultSettings.BathroomType,
		WallTileCoverage:   cfg.DefaultSettings.WallTileCoverage,
		IncludedItems:      map[string]bool{},
		WallTileMultiplier: cfg.CoverageMultiplier(cfg.DefaultSettings.WallTileCoverage),
	}
	if bt, ok := cfg.BathroomTypeByName(snap.BathroomType); ok {
		for k, v := range bt.IncludedItems {
			snap.IncludedItems[k] = v
		}
	}
	return snap
}

// Included reports the snapshot's toggle for a category: only an explicit
// false excludes.
func (s ToggleSnapshot) Included(category string) bool {
	if v, ok := s.IncludedItems[category]; ok {
		return v
	}
	return true
}

// Category groups for the per-package state machine. Tub and shower
// fixtures and the wall/accent tiles are destructive toggles: excluding them
// clears the legacy column too, keeping items and legacy in agreement. The
// generic categories are presentational; exclusion only removes the item
// map entry and leaves the legacy column untouched.
var (
	tubOnlyCategories    = []string{CatTub, CatTubFiller}
	showerOnlyCategories = []string{CatShower, CatGlazing}
	wallTileCategories   = []string{CatWallTile, CatAccentTile}
	genericCategories    = []string{
		CatFloorTile,
		CatShowerFloorTile,
		CatVanity,
		CatToilet,
		CatFaucet,
		CatMirror,
		CatTowelBar,
		CatToiletPaperHolder,
		CatHook,
		CatLighting,
	}
)

func typeAllowsTub(bathroomType string) bool {
	return bathroomType == TypeBathtub || bathroomType == TypeTubShower
}

func typeAllowsShower(bathroomType string) bool {
	return bathroomType == TypeWalkInShower || bathroomType == TypeTubShower
}

// clonePackage copies a package deeply enough that the transform never
// aliases the caller's maps.
func clonePackage(pkg Package) Package {
	out := pkg
	out.Items = make(map[string]string, len(pkg.Items))
	for k, v := range pkg.Items {
		out.Items[k] = v
	}
	out.Legacy = make(map[string]string, len(pkg.Legacy))
	for k, v := range pkg.Legacy {
		out.Legacy[k] = v
	}
	return out
}

// ApplyToggles rewrites one package to match the toggle snapshot. The
// transform is idempotent: applying the same snapshot twice yields the same
// package state as applying it once. The input package is not mutated.
func ApplyToggles(snap ToggleSnapshot, pkg Package) Package {
	out := clonePackage(pkg)

	// Tub/shower exclusivity. The inactive side is cleared destructively;
	// the active side repopulates the item map from the legacy column.
	applyDestructive(&out, tubOnlyCategories, typeAllowsTub(snap.BathroomType), snap)
	applyDestructive(&out, showerOnlyCategories, typeAllowsShower(snap.BathroomType), snap)

	// Wall tile coverage. "None" clears both wall categories regardless of
	// the per-item toggles; any other coverage restores them when the
	// toggle allows and a legacy SKU survives.
	applyDestructive(&out, wallTileCategories, snap.WallTileCoverage != CoverageNone, snap)

	// Generic categories: purely presentational, legacy column untouched.
	for _, cat := range genericCategories {
		if snap.Included(cat) {
			if sku := out.Legacy[cat]; sku != "" {
				out.Items[cat] = sku
			}
		} else {
			delete(out.Items, cat)
		}
	}

	// Stamp the applied policy for audit and debugging.
	out.UniversalToggles = snap
	out.WallTileMultiplier = snap.WallTileMultiplier
	return out
}

// applyDestructive handles one destructive category group. When the group
// is disallowed (by bathroom type or coverage) or toggled off, both the item
// map entry and the legacy column are cleared, preserving the dual-write
// invariant for these categories.
func applyDestructive(pkg *Package, categories []string, allowed bool, snap ToggleSnapshot) {
	for _, cat := range categories {
		if allowed && snap.Included(cat) {
			if sku := pkg.Legacy[cat]; sku != "" {
				pkg.Items[cat] = sku
			} else {
				delete(pkg.Items, cat)
			}
		} else {
			delete(pkg.Items, cat)
			delete(pkg.Legacy, cat)
		}
	}
}

// ApplyTogglesToAll transforms every package against the snapshot and
// returns the new records. Persistence, and per-package failure isolation,
// belong to the caller.
func ApplyTogglesToAll(snap ToggleSnapshot, pkgs []Package) []Package {
	out := make([]Package, len(pkgs))
	for i, pkg := range pkgs {
		out[i] = ApplyToggles(snap, pkg)
	}
	return out
}

// LegacyInSync verifies the dual-write invariant for the destructive
// categories: the item map entry is present exactly when the legacy column
// is non-empty.
func LegacyInSync(pkg Package) bool {
	destructive := append(append(append([]string{}, tubOnlyCategories...), showerOnlyCategories...), wallTileCategories...)
	for _, cat := range destructive {
		_, inItems := pkg.Items[cat]
		if inItems != (pkg.Legacy[cat] != "") {
			return false
		}
	}
	return true
}

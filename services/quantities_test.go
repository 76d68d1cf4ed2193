package services

import (
	"errors"
	"testing"
)

func TestMapQuantities_TubShowerScenario(t *testing.T) {
	form := QuoteForm{
		BathroomType:    FormTubShower,
		FloorSqft:       30,
		WetWallSqft:     50,
		ElectricalItems: 2,
		VanityWidthIn:   48,
		Upgrades:        Upgrades{HeatedFloors: true},
	}

	q, meta, err := MapQuantities(form)
	if err != nil {
		t.Fatalf("MapQuantities() error = %v", err)
	}

	want := Quantities{
		LineDemolition:  30,
		LineFloorTile:   30,
		LineSubstrate:   50,
		LineWaterproof:  50,
		LineWetWallTile: 50,
		LineVanity:      1,
		LineElectrical:  2,
		LineHeatedFloor: 1,
	}
	if len(q) != len(want) {
		t.Errorf("got %d codes, want %d: %v", len(q), len(want), q)
	}
	for code, qty := range want {
		if got, ok := q[code]; !ok {
			t.Errorf("missing code %s", code)
		} else if got != qty {
			t.Errorf("%s = %v, want %v", code, got, qty)
		}
	}
	if meta.TotalFloorSqft != 30 {
		t.Errorf("TotalFloorSqft = %v, want 30", meta.TotalFloorSqft)
	}
}

func TestMapQuantities_PresenceGating(t *testing.T) {
	base := QuoteForm{
		BathroomType: FormTubShower,
		FloorSqft:    30,
		WetWallSqft:  50,
	}

	tests := []struct {
		name    string
		mutate  func(*QuoteForm)
		code    string
		present bool
		qty     float64
	}{
		{"heated floors absent", func(f *QuoteForm) {}, LineHeatedFloor, false, 0},
		{"heated floors false", func(f *QuoteForm) { f.Upgrades.HeatedFloors = false }, LineHeatedFloor, false, 0},
		{"heated floors true", func(f *QuoteForm) { f.Upgrades.HeatedFloors = true }, LineHeatedFloor, true, 1},
		{"recess only for walk-in", func(f *QuoteForm) {}, LineRecess, false, 0},
		{"recess for walk-in", func(f *QuoteForm) { f.BathroomType = FormWalkInShower }, LineRecess, true, 1},
		{"asbestos only pre-1980", func(f *QuoteForm) {}, LineAsbestosTest, false, 0},
		{"asbestos for pre-1980", func(f *QuoteForm) { f.YearBuilt = YearPre1980 }, LineAsbestosTest, true, 1},
		{"no electrical items", func(f *QuoteForm) { f.ElectricalItems = 0 }, LineElectrical, false, 0},
		{"three electrical items", func(f *QuoteForm) { f.ElectricalItems = 3 }, LineElectrical, true, 3},
		{"no vanity", func(f *QuoteForm) { f.VanityWidthIn = 0 }, LineVanity, false, 0},
		{"standard ceiling", func(f *QuoteForm) { f.CeilingHeightFt = 8 }, LineScaffold, false, 0},
		{"tall ceiling", func(f *QuoteForm) { f.CeilingHeightFt = 9.5 }, LineScaffold, true, 1},
		{"shower niche upgrade", func(f *QuoteForm) { f.Upgrades.ShowerNiche = true }, LineNiche, true, 1},
		{"glass door upgrade", func(f *QuoteForm) { f.Upgrades.GlassDoor = true }, LineGlassDoor, true, 1},
		{"no shower floor", func(f *QuoteForm) {}, LineShowerFloor, false, 0},
		{"shower floor area", func(f *QuoteForm) { f.ShowerFloorSqft = 14 }, LineShowerFloor, true, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			tt.mutate(&form)
			q, _, err := MapQuantities(form)
			if err != nil {
				t.Fatalf("MapQuantities() error = %v", err)
			}
			got, ok := q[tt.code]
			if ok != tt.present {
				t.Fatalf("code %s present = %v, want %v", tt.code, ok, tt.present)
			}
			if tt.present && got != tt.qty {
				t.Errorf("code %s qty = %v, want %v", tt.code, got, tt.qty)
			}
		})
	}
}

func TestMapQuantities_DryWallAggregation(t *testing.T) {
	form := QuoteForm{
		BathroomType:   FormBathtub,
		FloorSqft:      40,
		WetWallSqft:    55,
		DryWallSqft:    30,
		AccentTileSqft: 12,
	}
	q, _, err := MapQuantities(form)
	if err != nil {
		t.Fatalf("MapQuantities() error = %v", err)
	}
	if got := q[LineDryWallTile]; got != 42 {
		t.Errorf("TILE-DRY = %v, want 42 (30 dry + 12 accent)", got)
	}
}

func TestMapQuantities_WaterproofingIncludesShowerFloor(t *testing.T) {
	form := QuoteForm{
		BathroomType:    FormWalkInShower,
		FloorSqft:       38,
		WetWallSqft:     60,
		ShowerFloorSqft: 15,
	}
	q, _, err := MapQuantities(form)
	if err != nil {
		t.Fatalf("MapQuantities() error = %v", err)
	}
	if got := q[LineWaterproof]; got != 75 {
		t.Errorf("WPF-KER = %v, want 75 (60 wall + 15 floor)", got)
	}
}

func TestMapQuantities_Validation(t *testing.T) {
	tests := []struct {
		name      string
		form      QuoteForm
		wantField string
	}{
		{
			name:      "missing bathroom type",
			form:      QuoteForm{FloorSqft: 30, WetWallSqft: 50},
			wantField: "bathroom_type",
		},
		{
			name:      "unknown bathroom type",
			form:      QuoteForm{BathroomType: "sauna", FloorSqft: 30},
			wantField: "bathroom_type",
		},
		{
			name:      "missing floor area",
			form:      QuoteForm{BathroomType: FormTubShower, WetWallSqft: 50},
			wantField: "floor_sqft",
		},
		{
			name:      "missing wet wall area",
			form:      QuoteForm{BathroomType: FormWalkInShower, FloorSqft: 30},
			wantField: "wet_wall_sqft",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := MapQuantities(tt.form)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestMapQuantities_SinkToiletSkipsWetFields(t *testing.T) {
	// A sink & toilet refresh has no wet wall and may have no tile work at
	// all; optional fields must never fail validation.
	form := QuoteForm{BathroomType: FormSinkToilet, VanityWidthIn: 36}
	q, _, err := MapQuantities(form)
	if err != nil {
		t.Fatalf("MapQuantities() error = %v", err)
	}
	if _, ok := q[LineDemolition]; ok {
		t.Error("DEM should be absent with no floor area")
	}
	if got := q[LineVanity]; got != 1 {
		t.Errorf("VAN = %v, want 1", got)
	}
}

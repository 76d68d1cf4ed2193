package services

import "testing"

func TestShouldInclude_Precedence(t *testing.T) {
	cfg := DefaultUniversalConfig()
	// A universal config that turns mirrors off for bathtubs, to prove
	// explicit design entries beat it both ways.
	for i, bt := range cfg.BathroomTypes {
		if bt.Name == TypeBathtub {
			cfg.BathroomTypes[i].IncludedItems[CatMirror] = false
		}
	}

	tests := []struct {
		name   string
		design DesignConfig
		cat    string
		want   bool
	}{
		{
			name: "explicit true beats universal false",
			design: DesignConfig{
				BathroomType:  TypeBathtub,
				IncludedItems: map[string]bool{CatMirror: true},
			},
			cat:  CatMirror,
			want: true,
		},
		{
			name: "explicit false beats universal default",
			design: DesignConfig{
				BathroomType:  TypeTubShower,
				IncludedItems: map[string]bool{CatVanity: false},
			},
			cat:  CatVanity,
			want: false,
		},
		{
			name:   "universal false excludes when design silent",
			design: DesignConfig{BathroomType: TypeBathtub},
			cat:    CatMirror,
			want:   false,
		},
		{
			name:   "universal false excludes shower for bathtub",
			design: DesignConfig{BathroomType: TypeBathtub},
			cat:    CatShower,
			want:   false,
		},
		{
			name:   "absent from universal entry includes",
			design: DesignConfig{BathroomType: TypeTubShower},
			cat:    CatTub,
			want:   true,
		},
		{
			name:   "unknown bathroom type includes",
			design: DesignConfig{BathroomType: "Powder Room"},
			cat:    CatShower,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldInclude(tt.cat, tt.design, &cfg); got != tt.want {
				t.Errorf("ShouldInclude(%s) = %v, want %v", tt.cat, got, tt.want)
			}
		})
	}
}

func TestShouldInclude_NilUniversalDefaultsToInclude(t *testing.T) {
	design := DesignConfig{BathroomType: TypeBathtub}
	if !ShouldInclude(CatShower, design, nil) {
		t.Error("nil universal config should include everything not explicitly excluded")
	}
	design.IncludedItems = map[string]bool{CatShower: false}
	if ShouldInclude(CatShower, design, nil) {
		t.Error("explicit design false should exclude even without a universal config")
	}
}

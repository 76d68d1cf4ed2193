package services

// ShouldInclude decides whether an item category is billable under the
// active configuration. It is the single choke point for inclusion logic;
// no other component re-implements this precedence:
//
//  1. An explicit entry in the design's IncludedItems wins, true or false.
//  2. Otherwise, if the universal config has an entry for the design's
//     bathroom type, only an explicit false there excludes the category.
//  3. Otherwise the category is included.
func ShouldInclude(category string, design DesignConfig, universal *UniversalConfig) bool {
	if v, ok := design.IncludedItems[category]; ok {
		return v
	}
	if universal != nil {
		if bt, ok := universal.BathroomTypeByName(design.BathroomType); ok {
			if v, ok := bt.IncludedItems[category]; ok && !v {
				return false
			}
			return true
		}
	}
	return true
}

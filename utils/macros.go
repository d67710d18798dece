package utils

// MacroSplit is the result of checking a protein/carbs/fat percentage split.
// Advisory only: a split that doesn't add up is flagged, never rejected.
type MacroSplit struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Total    float64 `json:"total"`
	Balanced bool    `json:"balanced"`
}

// CheckMacroSplit sums the three percentages and reports whether they cover
// exactly 100% of calories.
func CheckMacroSplit(proteinPct, carbsPct, fatPct float64) MacroSplit {
	total := proteinPct + carbsPct + fatPct
	return MacroSplit{
		Protein:  proteinPct,
		Carbs:    carbsPct,
		Fat:      fatPct,
		Total:    total,
		Balanced: total == 100,
	}
}

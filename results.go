package polyfit

// BestFitResult reports the outcome of a degree scan. Correlations holds
// the squared correlation observed at each degree examined starting at 1;
// the scan stops at the first degree exceeding Target.
type BestFitResult struct {
	Found        bool      `json:"found"`
	Degree       int       `json:"degree"`
	Target       float64   `json:"target"`
	Coefficients []float64 `json:"coefficients"`
	Correlations []float64 `json:"correlations"`
}

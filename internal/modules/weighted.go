package modules

// CumulativeWeights turns a weight vector into its running sum, the shape
// `native fn random_weighted`'s runtime counterpart consumes internally
// (§6.2, §8 scenario 7): cumulative[i] = sum(weights[0..i]).
func CumulativeWeights(weights []float64) []float64 {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	return cum
}

// WeightedChoice returns the index of the first cumulative weight greater
// than r, the selection rule §8 scenario 7 documents for `random_weighted`:
// with weights [0.7, 0.25, 0.05] (cumulative [0.7, 0.95, 1.0]) and r=0.8,
// index 1 is selected. Returns len(weights)-1 if r is at or above every
// cumulative weight (guards against float rounding landing r fractionally
// above the final 1.0).
func WeightedChoice(weights []float64, r float64) int {
	cum := CumulativeWeights(weights)
	for i, c := range cum {
		if r < c {
			return i
		}
	}
	return len(weights) - 1
}

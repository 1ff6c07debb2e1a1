package utils

// Levenshtein returns the edit distance between a and b. Used by
// diagnostics.Sink to back "did you mean '<name>'?" suggestions
// (spec.md §4.2, §9).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = min3(del, ins, sub)
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// FindSimilarNames returns candidates from names whose Levenshtein distance
// to target is within maxDist, closest first. It pre-filters by length
// difference (> maxDist apart is never a match) to avoid the O(N*M*L)
// blow-up the design notes (spec.md §9) warn about on large symbol tables.
func FindSimilarNames(target string, names []string, maxDist int) []string {
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, name := range names {
		if name == target {
			continue
		}
		if absInt(len(name)-len(target)) > maxDist {
			continue
		}
		d := Levenshtein(target, name)
		if d <= maxDist {
			candidates = append(candidates, scored{name, d})
		}
	}
	// Stable insertion sort by distance; candidate lists are small.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].dist < candidates[j-1].dist; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

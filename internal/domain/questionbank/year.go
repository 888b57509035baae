package questionbank

import "sort"

// Exam year codes. Reiwa era, fiscal year.
const (
	YearR03 = "r03"
	YearR04 = "r04"
	YearR05 = "r05"
	YearR06 = "r06"
	YearR07 = "r07"
)

// YearOrder is the display order for year charts, oldest first.
var YearOrder = []string{YearR03, YearR04, YearR05, YearR06, YearR07}

var yearNames = map[string]string{
	YearR07: "令和7年度",
	YearR06: "令和6年度",
	YearR05: "令和5年度",
	YearR04: "令和4年度",
	YearR03: "令和3年度",
}

// YearName returns the display label for a year code, or the code itself.
func YearName(code string) string {
	if name, ok := yearNames[code]; ok {
		return name
	}
	return code
}

// SortYears orders codes by YearOrder; unknown codes follow, sorted.
func SortYears(codes []string) []string {
	rank := make(map[string]int, len(YearOrder))
	for i, y := range YearOrder {
		rank[y] = i
	}

	out := make([]string, len(codes))
	copy(out, codes)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := rank[out[i]]
		rj, jKnown := rank[out[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return out[i] < out[j]
		}
	})
	return out
}

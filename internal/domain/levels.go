package domain

import "sort"

// Tier resolution is shared by the accrual path and the dashboard read
// path, so it must stay deterministic and side-effect free.

// SortedLevels returns a copy of levels sorted ascending by MinPoints.
func SortedLevels(levels []Level) []Level {
	sorted := make([]Level, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinPoints < sorted[j].MinPoints
	})
	return sorted
}

// ResolveLevel returns the highest level whose MinPoints <= yearlyTotal,
// or nil when the user is below the lowest threshold ("no tier").
func ResolveLevel(levels []Level, yearlyTotal float64) *Level {
	var current *Level
	for _, level := range SortedLevels(levels) {
		if level.MinPoints <= yearlyTotal {
			l := level
			current = &l
		}
	}
	return current
}

// NextLevel returns the smallest level with MinPoints > yearlyTotal,
// or nil when the user is already at the top tier.
func NextLevel(levels []Level, yearlyTotal float64) *Level {
	for _, level := range SortedLevels(levels) {
		if level.MinPoints > yearlyTotal {
			l := level
			return &l
		}
	}
	return nil
}

// AmountToNextLevel returns how much yearly spend is missing until the
// next tier, or 0 when there is no next tier.
func AmountToNextLevel(levels []Level, yearlyTotal float64) float64 {
	next := NextLevel(levels, yearlyTotal)
	if next == nil {
		return 0
	}
	diff := next.MinPoints - yearlyTotal
	if diff < 0 {
		return 0
	}
	return diff
}

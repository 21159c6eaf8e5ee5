package track

import "sort"

// SortEntries reorders entries in place according to policy. Sorting
// is stable: entries with equal keys keep their relative order.
// SortInsertion is a no-op because the list already reflects arrival
// order, most recent first.
func SortEntries(entries []Entry, policy SortPolicy, ranking *Ranking) {
	switch policy {
	case SortActivity:
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Count > entries[b].Count
		})
	case SortImportance:
		sort.SliceStable(entries, func(a, b int) bool {
			return ranking.Rank(entries[a].Tag) < ranking.Rank(entries[b].Tag)
		})
	}
}

// policyFor maps a navigation direction to the sort order Pick expects
// the entry list to be in. Oldest and Newest both read the insertion
// order; LeastActive reads the activity order in reverse.
func policyFor(dir Direction) SortPolicy {
	switch dir {
	case MostActive, LeastActive:
		return SortActivity
	case Importance:
		return SortImportance
	default:
		return SortInsertion
	}
}

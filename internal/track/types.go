// Package track decides which conversation contexts currently carry
// unseen activity, which tag represents each of them, and in what order
// the user should cycle through them.
package track

// Context identifies one trackable conversation unit (a channel or
// query). The host owns the conversation's lifetime; the tracker only
// stores the handle and asks the host whether it is still valid.
type Context string

// Tag is an opaque category attached to a piece of incoming content,
// e.g. "mention", "error" or plain chatter. The tracker never inspects
// tag values beyond equality.
type Tag string

// Entry is the registry record for one context with unseen activity.
type Entry struct {
	Context Context
	Count   uint64
	Tag     Tag
}

// SortPolicy selects how the active entries are ordered for display
// and navigation.
type SortPolicy int

const (
	// SortInsertion keeps arrival order, most recent first.
	SortInsertion SortPolicy = iota
	// SortActivity orders by descending unseen count.
	SortActivity
	// SortImportance orders by ascending display-tag rank.
	SortImportance
)

// Direction steers navigation between active contexts.
type Direction int

const (
	Oldest Direction = iota
	Newest
	MostActive
	LeastActive
	Importance
)

// Aggressiveness controls name shortening: Off suppresses shortenings
// that save a single character, On allows them, Max additionally
// uniquifies only among the active names instead of the full universe.
type Aggressiveness int

const (
	ShortenOff Aggressiveness = iota
	ShortenOn
	ShortenMax
)

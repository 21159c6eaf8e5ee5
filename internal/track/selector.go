package track

// SelectorPolicy picks the tie-breaking behavior of Select.
type SelectorPolicy int

const (
	// PolicyOrdered uses the most-recent-first tag order for the
	// normal-tag promotion step. Default.
	PolicyOrdered SelectorPolicy = iota
	// PolicySimple ignores arrival order and promotes only within the
	// ranking.
	PolicySimple
)

// Override lets the host take over tag selection. It receives the
// current display tag, the tag the ranking scan picked, the observed
// tags most recent first, and the normal set. Returning false falls
// through to the built-in promotion rules.
type Override func(cur, choice Tag, ordered []Tag, normal map[Tag]bool) (Tag, bool)

// Selector computes the display tag for a context from the tag it
// currently shows and the tags just observed.
type Selector struct {
	ranking  *Ranking
	normal   map[Tag]bool
	policy   SelectorPolicy
	override Override
}

// NewSelector builds a selector over ranking. Tags in normal are
// considered interchangeable ordinary conversation markers.
func NewSelector(ranking *Ranking, normal []Tag, policy SelectorPolicy) *Selector {
	set := make(map[Tag]bool, len(normal))
	for _, t := range normal {
		set[t] = true
	}
	return &Selector{ranking: ranking, normal: set, policy: policy}
}

// SetOverride registers a host override consulted by the ordered
// policy before the built-in promotion step.
func (s *Selector) SetOverride(fn Override) { s.override = fn }

// Select returns the new display tag. ordered lists the observed tags
// most recent first and must be non-empty; cur may be the zero Tag for
// a fresh entry. The result is the highest-ranked tag reachable via
// cur or the new tags, except that a current tag from the normal set
// may be swapped for a fresher ordinary tag so stale escalations decay
// once nothing urgent is contending.
func (s *Selector) Select(cur Tag, ordered []Tag) Tag {
	seen := make(map[Tag]bool, len(ordered))
	for _, t := range ordered {
		seen[t] = true
	}
	choice, found := s.scan(cur, seen)
	if !found {
		return ""
	}
	if s.policy == PolicySimple {
		return s.promoteSimple(cur, choice, seen)
	}
	if s.override != nil {
		if t, ok := s.override(cur, choice, ordered, s.normal); ok {
			return t
		}
	}
	if choice != cur || !s.normal[choice] {
		return choice
	}
	// choice was reached through cur alone; prefer something the new
	// content actually carries.
	for _, t := range s.ranking.Tags() {
		if t != choice && seen[t] {
			return t
		}
	}
	for _, t := range ordered[1:] {
		if s.normal[t] {
			return t
		}
	}
	return choice
}

// scan walks the effective ranking and returns the first tag that is
// either the current display tag or among the observed ones.
func (s *Selector) scan(cur Tag, seen map[Tag]bool) (Tag, bool) {
	for _, t := range s.ranking.Tags() {
		if t == cur || seen[t] {
			return t, true
		}
	}
	return "", false
}

func (s *Selector) promoteSimple(cur, choice Tag, seen map[Tag]bool) Tag {
	if choice != cur || !s.normal[cur] {
		return choice
	}
	for _, t := range s.ranking.Tags() {
		if t == cur || !seen[t] {
			continue
		}
		if s.normal[t] {
			return t
		}
		break
	}
	return cur
}

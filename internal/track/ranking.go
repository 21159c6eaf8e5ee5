package track

// Ranking is a total order over tags. Attention tags always outrank the
// configured priority list; tags absent from both rank last.
type Ranking struct {
	effective []Tag
	index     map[Tag]int
}

// NewRanking builds the effective ranking as attention ++ priority.
// If a tag appears more than once, the first occurrence wins.
func NewRanking(attention, priority []Tag) *Ranking {
	r := &Ranking{index: make(map[Tag]int, len(attention)+len(priority))}
	for _, t := range attention {
		r.add(t)
	}
	for _, t := range priority {
		r.add(t)
	}
	return r
}

func (r *Ranking) add(t Tag) {
	if _, ok := r.index[t]; ok {
		return
	}
	r.index[t] = len(r.effective)
	r.effective = append(r.effective, t)
}

// Rank returns the priority index of t, lower meaning more important.
// Unranked tags get len(effective), the lowest possible priority, so
// Rank is total over all tags.
func (r *Ranking) Rank(t Tag) int {
	if i, ok := r.index[t]; ok {
		return i
	}
	return len(r.effective)
}

// Len reports the number of ranked tags.
func (r *Ranking) Len() int { return len(r.effective) }

// Tags returns the effective ranking, most important first. The slice
// is shared; callers must not mutate it.
func (r *Ranking) Tags() []Tag { return r.effective }

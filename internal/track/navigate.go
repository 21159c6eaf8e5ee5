package track

// Pick chooses the context to jump to from entries, which must already
// be sorted for dir (see SortEntries and policyFor). A negative step
// flips the direction (Oldest<->Newest, MostActive<->LeastActive,
// Importance falls back to Oldest) and negates step. The computed
// offset wraps by clamping into the valid range, so oversized steps
// land on the nearest end instead of failing. Returns false only for
// an empty list.
func Pick(entries []Entry, dir Direction, step int) (Context, bool) {
	if len(entries) == 0 {
		return "", false
	}
	dir, step = normalize(dir, step)
	var offset int
	switch dir {
	case Oldest, LeastActive:
		offset = len(entries) - step
	default:
		offset = step - 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(entries)-1 {
		offset = len(entries) - 1
	}
	return entries[offset].Context, true
}

// normalize resolves a negative step into its effective direction and
// a positive step. Positive steps pass through unchanged.
func normalize(dir Direction, step int) (Direction, int) {
	if step >= 0 {
		return dir, step
	}
	switch dir {
	case Oldest:
		dir = Newest
	case Newest:
		dir = Oldest
	case MostActive:
		dir = LeastActive
	case LeastActive:
		dir = MostActive
	case Importance:
		dir = Oldest
	}
	return dir, -step
}

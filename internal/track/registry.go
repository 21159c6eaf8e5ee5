package track

// Registry is the authoritative mapping from active context to unseen
// count and display tag. An entry exists for a context exactly while
// that context has unseen, non-excluded, non-visible activity.
//
// The registry is single-threaded by contract: every operation runs to
// completion on the caller's event thread, so the only guard needed is
// the purge reentrancy flag.
type Registry struct {
	selector *Selector
	entries  []*Entry
	index    map[Context]*Entry
	purging  bool
	onChange func()
}

// NewRegistry builds an empty registry using selector for display-tag
// updates.
func NewRegistry(selector *Selector) *Registry {
	return &Registry{
		selector: selector,
		index:    make(map[Context]*Entry),
	}
}

// SetOnChange registers a callback invoked after every mutation that
// changed the entry list.
func (r *Registry) SetOnChange(fn func()) { r.onChange = fn }

// Record notes new unseen content for ctx. A first qualifying event
// creates an entry with count 1; later ones increment the count and
// re-select the display tag. ordered lists the observed tags most
// recent first; an empty slice is ignored.
func (r *Registry) Record(ctx Context, ordered []Tag) {
	if len(ordered) == 0 {
		return
	}
	if e, ok := r.index[ctx]; ok {
		e.Count++
		e.Tag = r.selector.Select(e.Tag, ordered)
	} else {
		e := &Entry{Context: ctx, Count: 1, Tag: r.selector.Select("", ordered)}
		r.entries = append([]*Entry{e}, r.entries...)
		r.index[ctx] = e
	}
	r.notify()
}

// Remove deletes the entry for ctx and reports whether one existed.
// Removing an absent context is a no-op.
func (r *Registry) Remove(ctx Context) bool {
	if _, ok := r.index[ctx]; !ok {
		return false
	}
	delete(r.index, ctx)
	for i, e := range r.entries {
		if e.Context == ctx {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	r.notify()
	return true
}

// Purge removes every entry whose context satisfies removable and
// reports whether anything changed. A nested call made while a purge
// is already running (through a side effect of removal, typically a
// display refresh) is a no-op.
func (r *Registry) Purge(removable func(Context) bool) bool {
	if r.purging || removable == nil {
		return false
	}
	r.purging = true
	defer func() { r.purging = false }()

	kept := r.entries[:0]
	changed := false
	for _, e := range r.entries {
		if removable(e.Context) {
			delete(r.index, e.Context)
			changed = true
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	if changed {
		r.notify()
	}
	return changed
}

// Rebind replaces the handle of an existing entry in place, preserving
// count and tag. Used when the underlying conversation object is
// replaced but still represents the same logical context.
func (r *Registry) Rebind(old, new Context) {
	e, ok := r.index[old]
	if !ok {
		return
	}
	delete(r.index, old)
	e.Context = new
	r.index[new] = e
	r.notify()
}

// Entries returns a snapshot of the current entries in list order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = *e
	}
	return out
}

// Len reports the number of active entries.
func (r *Registry) Len() int { return len(r.entries) }

// Contains reports whether ctx currently has an entry.
func (r *Registry) Contains(ctx Context) bool {
	_, ok := r.index[ctx]
	return ok
}

func (r *Registry) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}

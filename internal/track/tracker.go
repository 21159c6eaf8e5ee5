package track

// Tracker is the facade the host wires its events into. It owns the
// ranking, selector and registry and re-emits the ordered entry list
// to a listener whenever it changes.
type Tracker struct {
	cfg      Config
	ranking  *Ranking
	selector *Selector
	registry *Registry
	filter   func(Tag) bool
	listener func([]Entry)
	ignored  map[Tag]bool
}

// New builds a tracker from cfg. The configuration is validated first.
func New(cfg Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ranking := NewRanking(cfg.Tags.Attention, cfg.Tags.Priority)
	selector := NewSelector(ranking, cfg.Tags.Normal, cfg.SelectorPolicy())
	t := &Tracker{
		cfg:      cfg,
		ranking:  ranking,
		selector: selector,
		registry: NewRegistry(selector),
		ignored:  make(map[Tag]bool, len(cfg.IgnoreTags)),
	}
	for _, tag := range cfg.IgnoreTags {
		t.ignored[tag] = true
	}
	t.registry.SetOnChange(t.emit)
	return t, nil
}

// SetListener registers the consumer of the ordered entry list. It is
// called after every registry change with a fresh snapshot.
func (t *Tracker) SetListener(fn func([]Entry)) { t.listener = fn }

// SetTagFilter installs an additional per-tag pre-filter applied to
// incoming content on top of the configured ignore list.
func (t *Tracker) SetTagFilter(fn func(Tag) bool) { t.filter = fn }

// SetOverride forwards a selection override to the selector.
func (t *Tracker) SetOverride(fn Override) { t.selector.SetOverride(fn) }

// OnContent handles a new-content event. Content for a visible or
// excluded context clears any existing entry; otherwise the surviving
// tags are recorded, most recent first.
func (t *Tracker) OnContent(ctx Context, tags []Tag, visible, excluded bool) {
	if visible || excluded {
		t.registry.Remove(ctx)
		return
	}
	kept := tags[:0:0]
	for _, tag := range tags {
		if t.ignored[tag] {
			continue
		}
		if t.filter != nil && !t.filter(tag) {
			continue
		}
		kept = append(kept, tag)
	}
	if len(kept) == 0 {
		return
	}
	t.registry.Record(ctx, kept)
}

// OnVisibilityChange sweeps out every entry whose context the host now
// reports as removable (visible, gone, or otherwise done with).
func (t *Tracker) OnVisibilityChange(removable func(Context) bool) {
	t.registry.Purge(removable)
}

// OnContextDestroyed drops the entry for a destroyed context.
func (t *Tracker) OnContextDestroyed(ctx Context) {
	t.registry.Remove(ctx)
}

// OnContextReplaced rebinds an entry to the replacement handle when a
// conversation object is swapped out but the logical context survives.
func (t *Tracker) OnContextReplaced(old, new Context) {
	t.registry.Rebind(old, new)
}

// OnDisconnect drops the entry for a disconnected context when the
// configuration asks for it.
func (t *Tracker) OnDisconnect(ctx Context) {
	if t.cfg.RemoveOnDisconnect {
		t.registry.Remove(ctx)
	}
}

// Entries returns the current entries in list order.
func (t *Tracker) Entries() []Entry { return t.registry.Entries() }

// Sorted returns the current entries ordered by policy.
func (t *Tracker) Sorted(policy SortPolicy) []Entry {
	entries := t.registry.Entries()
	SortEntries(entries, policy, t.ranking)
	return entries
}

// Next picks the context step positions away in the given direction,
// or false when nothing is tracked.
func (t *Tracker) Next(dir Direction, step int) (Context, bool) {
	// Resolve the direction first: a negative step can change which
	// sort order Pick expects (Importance reverses into Oldest).
	dir, step = normalize(dir, step)
	entries := t.Sorted(policyFor(dir))
	return Pick(entries, dir, step)
}

// Contains reports whether ctx is currently tracked.
func (t *Tracker) Contains(ctx Context) bool { return t.registry.Contains(ctx) }

// Ranking exposes the effective tag ranking, e.g. for display styling.
func (t *Tracker) Ranking() *Ranking { return t.ranking }

// Config returns the configuration the tracker was built with.
func (t *Tracker) Config() Config { return t.cfg }

func (t *Tracker) emit() {
	if t.listener != nil {
		t.listener(t.registry.Entries())
	}
}

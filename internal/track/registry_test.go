package track

import "testing"

func newTestRegistry() *Registry {
	return NewRegistry(newTestSelector(PolicyOrdered))
}

func TestRecordCreatesAndIncrements(t *testing.T) {
	r := newTestRegistry()
	for i := 0; i < 3; i++ {
		r.Record("#emacs", []Tag{"chatter"})
	}
	entries := r.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries=%d want=1", len(entries))
	}
	if entries[0].Count != 3 {
		t.Fatalf("count=%d want=3", entries[0].Count)
	}
	if entries[0].Tag != "chatter" {
		t.Fatalf("tag=%q want=chatter", entries[0].Tag)
	}
}

func TestRecordEscalatesTag(t *testing.T) {
	r := newTestRegistry()
	r.Record("#emacs", []Tag{"chatter"})
	r.Record("#emacs", []Tag{"mention"})
	if got := r.Entries()[0].Tag; got != "mention" {
		t.Fatalf("tag=%q want=mention", got)
	}
	// Ordinary chatter does not demote the escalation.
	r.Record("#emacs", []Tag{"chatter"})
	if got := r.Entries()[0].Tag; got != "mention" {
		t.Fatalf("tag=%q want=mention", got)
	}
}

func TestRecordNewestFirst(t *testing.T) {
	r := newTestRegistry()
	r.Record("#emacs", []Tag{"chatter"})
	r.Record("#erlang", []Tag{"chatter"})
	r.Record("#gophers", []Tag{"chatter"})
	entries := r.Entries()
	want := []Context{"#gophers", "#erlang", "#emacs"}
	for i, w := range want {
		if entries[i].Context != w {
			t.Fatalf("entries[%d]=%q want=%q", i, entries[i].Context, w)
		}
	}
}

func TestRemoveIdempotent(t *testing.T) {
	r := newTestRegistry()
	r.Record("#emacs", []Tag{"chatter"})
	if !r.Remove("#emacs") {
		t.Fatal("Remove returned false for present entry")
	}
	if r.Remove("#emacs") {
		t.Fatal("Remove returned true for absent entry")
	}
	if r.Len() != 0 {
		t.Fatalf("len=%d want=0", r.Len())
	}
}

func TestPurge(t *testing.T) {
	r := newTestRegistry()
	r.Record("#emacs", []Tag{"chatter"})
	r.Record("#erlang", []Tag{"chatter"})
	r.Record("#gophers", []Tag{"chatter"})

	if r.Purge(func(c Context) bool { return false }) {
		t.Fatal("no-op purge reported a change")
	}
	if r.Len() != 3 {
		t.Fatalf("len=%d want=3", r.Len())
	}

	if !r.Purge(func(c Context) bool { return c == "#erlang" }) {
		t.Fatal("purge did not report a change")
	}
	if r.Contains("#erlang") {
		t.Fatal("#erlang survived the purge")
	}
	if r.Len() != 2 {
		t.Fatalf("len=%d want=2", r.Len())
	}
}

func TestPurgeReentrancyGuard(t *testing.T) {
	r := newTestRegistry()
	r.Record("#emacs", []Tag{"chatter"})
	r.Record("#erlang", []Tag{"chatter"})

	nested := false
	r.SetOnChange(func() {
		// A display refresh triggered by the removal sweeps again; the
		// nested call must be a no-op.
		if r.Purge(func(Context) bool { return true }) {
			nested = true
		}
	})
	if !r.Purge(func(c Context) bool { return c == "#emacs" }) {
		t.Fatal("outer purge did not report a change")
	}
	if nested {
		t.Fatal("nested purge was not suppressed")
	}
	if !r.Contains("#erlang") {
		t.Fatal("nested purge removed #erlang")
	}
}

func TestRebindPreservesEntry(t *testing.T) {
	r := newTestRegistry()
	r.Record("old", []Tag{"mention"})
	r.Record("old", []Tag{"chatter"})

	r.Rebind("old", "new")
	if r.Contains("old") {
		t.Fatal("old handle still tracked")
	}
	entries := r.Entries()
	if len(entries) != 1 || entries[0].Context != "new" {
		t.Fatalf("entries=%v want single entry for new", entries)
	}
	if entries[0].Count != 2 || entries[0].Tag != "mention" {
		t.Fatalf("rebind lost state: %+v", entries[0])
	}

	// Rebinding an untracked handle is a no-op.
	r.Rebind("ghost", "other")
	if r.Contains("other") {
		t.Fatal("rebind of untracked handle created an entry")
	}
}

func TestRecordEmptyTagsIgnored(t *testing.T) {
	r := newTestRegistry()
	r.Record("#emacs", nil)
	if r.Len() != 0 {
		t.Fatalf("len=%d want=0", r.Len())
	}
}

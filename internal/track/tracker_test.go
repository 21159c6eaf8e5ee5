package track

import (
	"reflect"
	"testing"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

func TestTrackerVisibleContentClearsEntry(t *testing.T) {
	tr := newTestTracker(t)
	tr.OnContent("#emacs", []Tag{"chatter"}, false, false)
	if !tr.Contains("#emacs") {
		t.Fatal("expected #emacs to be tracked")
	}
	// Content for the visible channel means the user is looking at it.
	tr.OnContent("#emacs", []Tag{"chatter"}, true, false)
	if tr.Contains("#emacs") {
		t.Fatal("visible content did not clear the entry")
	}
}

func TestTrackerExcludedContentClearsEntry(t *testing.T) {
	tr := newTestTracker(t)
	tr.OnContent("#spam", []Tag{"chatter"}, false, false)
	tr.OnContent("#spam", []Tag{"chatter"}, false, true)
	if tr.Contains("#spam") {
		t.Fatal("excluded content did not clear the entry")
	}
}

func TestTrackerIgnoreTags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreTags = []Tag{"join", "part"}
	tr, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr.OnContent("#emacs", []Tag{"join", "part"}, false, false)
	if tr.Contains("#emacs") {
		t.Fatal("fully ignored content created an entry")
	}
	tr.OnContent("#emacs", []Tag{"join", "mention"}, false, false)
	entries := tr.Entries()
	if len(entries) != 1 || entries[0].Tag != "mention" {
		t.Fatalf("entries=%v want single mention entry", entries)
	}
}

func TestTrackerTagFilter(t *testing.T) {
	tr := newTestTracker(t)
	tr.SetTagFilter(func(tag Tag) bool { return tag != "notice" })
	tr.OnContent("#emacs", []Tag{"notice"}, false, false)
	if tr.Contains("#emacs") {
		t.Fatal("filtered content created an entry")
	}
}

func TestTrackerDisconnect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RemoveOnDisconnect = false
	keep, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	keep.OnContent("#emacs", []Tag{"chatter"}, false, false)
	keep.OnDisconnect("#emacs")
	if !keep.Contains("#emacs") {
		t.Fatal("disconnect removed the entry despite the flag")
	}

	drop := newTestTracker(t)
	drop.OnContent("#emacs", []Tag{"chatter"}, false, false)
	drop.OnDisconnect("#emacs")
	if drop.Contains("#emacs") {
		t.Fatal("disconnect did not remove the entry")
	}
}

func TestTrackerDestroyAndReplace(t *testing.T) {
	tr := newTestTracker(t)
	tr.OnContent("old", []Tag{"mention"}, false, false)
	tr.OnContextReplaced("old", "new")
	if tr.Contains("old") || !tr.Contains("new") {
		t.Fatal("replace did not rebind the entry")
	}
	tr.OnContextDestroyed("new")
	if tr.Contains("new") {
		t.Fatal("destroy did not remove the entry")
	}
}

func TestTrackerListener(t *testing.T) {
	tr := newTestTracker(t)
	var last []Entry
	calls := 0
	tr.SetListener(func(entries []Entry) {
		last = entries
		calls++
	})

	tr.OnContent("#emacs", []Tag{"chatter"}, false, false)
	tr.OnContent("#erlang", []Tag{"mention"}, false, false)
	if calls != 2 {
		t.Fatalf("calls=%d want=2", calls)
	}
	want := []Entry{
		{Context: "#erlang", Count: 1, Tag: "mention"},
		{Context: "#emacs", Count: 1, Tag: "chatter"},
	}
	if !reflect.DeepEqual(last, want) {
		t.Fatalf("last=%v want=%v", last, want)
	}

	// Events that change nothing do not notify.
	tr.OnContextDestroyed("ghost")
	if calls != 2 {
		t.Fatalf("calls=%d want=2 after no-op", calls)
	}
}

func TestTrackerNextAcrossPolicies(t *testing.T) {
	tr := newTestTracker(t)
	tr.OnContent("#emacs", []Tag{"chatter"}, false, false)
	tr.OnContent("#erlang", []Tag{"error"}, false, false)
	tr.OnContent("#gophers", []Tag{"chatter"}, false, false)
	tr.OnContent("#gophers", []Tag{"chatter"}, false, false)

	if got, _ := tr.Next(Newest, 1); got != "#gophers" {
		t.Fatalf("Newest=%q want=#gophers", got)
	}
	if got, _ := tr.Next(Oldest, 1); got != "#emacs" {
		t.Fatalf("Oldest=%q want=#emacs", got)
	}
	if got, _ := tr.Next(MostActive, 1); got != "#gophers" {
		t.Fatalf("MostActive=%q want=#gophers", got)
	}
	if got, _ := tr.Next(Importance, 1); got != "#erlang" {
		t.Fatalf("Importance=%q want=#erlang", got)
	}
}

func TestTrackerNextEmpty(t *testing.T) {
	tr := newTestTracker(t)
	if _, ok := tr.Next(Newest, 1); ok {
		t.Fatal("Next on empty tracker returned a context")
	}
}

package track

import (
	"reflect"
	"strings"
	"testing"
)

func TestShortenUniquePrefixes(t *testing.T) {
	universe := []string{"#emacs", "#erlang", "#go-nuts", "#gophers"}
	got := Shorten(universe, universe, nil, 1, ShortenOn)
	want := []string{"#em", "#er", "#go-", "#gop"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Shorten=%v want=%v", got, want)
	}
}

func TestShortenResultsArePrefixesAndDistinct(t *testing.T) {
	universe := []string{"#hurd", "#hurd-bunny", "#emacs", "#erc", "#erlang", "alice", "albert"}
	active := []string{"#hurd-bunny", "#erc", "alice", "#hurd"}
	got := Shorten(universe, active, nil, 1, ShortenOn)
	if len(got) != len(active) {
		t.Fatalf("len=%d want=%d", len(got), len(active))
	}
	seen := make(map[string]bool)
	for i, short := range got {
		if !strings.HasPrefix(active[i], short) {
			t.Errorf("%q is not a prefix of %q", short, active[i])
		}
		if seen[short] {
			t.Errorf("duplicate abbreviation %q", short)
		}
		seen[short] = true
	}
}

func TestShortenSubstringNames(t *testing.T) {
	// #hurd is a prefix of #hurd-bunny, so it can never shrink; the
	// longer name shortens to just past the shared prefix.
	universe := []string{"#hurd", "#hurd-bunny"}
	got := Shorten(universe, universe, nil, 1, ShortenOff)
	want := []string{"#hurd", "#hurd-"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Shorten=%v want=%v", got, want)
	}
}

func TestShortenOneCharacterRule(t *testing.T) {
	// Shortening "abc" to "ab" saves one character: suppressed unless
	// aggressive.
	universe := []string{"abc", "axe"}
	if got := Shorten(universe, universe, nil, 1, ShortenOff); !reflect.DeepEqual(got, []string{"abc", "axe"}) {
		t.Fatalf("ShortenOff=%v want unchanged", got)
	}
	if got := Shorten(universe, universe, nil, 1, ShortenOn); !reflect.DeepEqual(got, []string{"ab", "ax"}) {
		t.Fatalf("ShortenOn=%v want=[ab ax]", got)
	}
}

func TestShortenFullLengthCollision(t *testing.T) {
	// "ab" and "ac" need their full length; nothing changes.
	universe := []string{"ab", "ac"}
	got := Shorten(universe, universe, nil, 1, ShortenOff)
	if !reflect.DeepEqual(got, []string{"ab", "ac"}) {
		t.Fatalf("Shorten=%v want unchanged", got)
	}
}

func TestShortenMaxIgnoresUniverse(t *testing.T) {
	universe := []string{"#gophers", "#go-nuts", "#golang"}
	active := []string{"#gophers"}
	// Against the universe "#gophers" needs four characters; alone it
	// shrinks to the minimum length.
	if got := Shorten(universe, active, nil, 1, ShortenOn); !reflect.DeepEqual(got, []string{"#gop"}) {
		t.Fatalf("ShortenOn=%v want=[#gop]", got)
	}
	if got := Shorten(universe, active, nil, 1, ShortenMax); !reflect.DeepEqual(got, []string{"#"}) {
		t.Fatalf("ShortenMax=%v want=[#]", got)
	}
}

func TestShortenPredicate(t *testing.T) {
	universe := []string{"#emacs", "#erlang", "alice"}
	pred := func(s string) bool { return strings.HasPrefix(s, "#") }
	got := Shorten(universe, universe, pred, 1, ShortenOn)
	want := []string{"#em", "#er", "alice"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Shorten=%v want=%v", got, want)
	}
}

func TestShortenMinLength(t *testing.T) {
	universe := []string{"#emacs", "#erlang"}
	got := Shorten(universe, universe, nil, 3, ShortenOn)
	want := []string{"#em", "#er"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Shorten=%v want=%v", got, want)
	}
}

func TestShortenEmptyActive(t *testing.T) {
	got := Shorten([]string{"#emacs"}, nil, nil, 1, ShortenOn)
	if len(got) != 0 {
		t.Fatalf("Shorten=%v want empty", got)
	}
}

func TestShortenCache(t *testing.T) {
	var cache ShortenCache
	universe := []string{"#emacs", "#erlang"}
	active := []string{"#emacs"}

	first := cache.Get(universe, active, nil, 1, ShortenOn, 0)
	second := cache.Get(universe, active, nil, 1, ShortenOn, 0)
	if &first[0] != &second[0] {
		t.Fatal("expected cached slice to be reused")
	}

	// Any input change misses the cache.
	third := cache.Get(universe, []string{"#erlang"}, nil, 1, ShortenOn, 0)
	if reflect.DeepEqual(second, third) {
		t.Fatalf("expected different result, got %v", third)
	}

	// A version bump alone invalidates too.
	fourth := cache.Get(universe, []string{"#erlang"}, nil, 1, ShortenOn, 1)
	if &third[0] == &fourth[0] {
		t.Fatal("expected version bump to recompute")
	}

	cache.Invalidate()
	fifth := cache.Get(universe, []string{"#erlang"}, nil, 1, ShortenOn, 1)
	if &fourth[0] == &fifth[0] {
		t.Fatal("expected Invalidate to drop the cached slice")
	}
}

package track

import (
	"fmt"
	"sort"
	"strings"
)

// Shorten computes a display abbreviation for every active name. The
// result has one string per active name, in the same order, and each
// result is a literal prefix of its input.
//
// Unless mode is ShortenMax, minimal unique prefixes are computed over
// the full universe of known names and then assigned to the active
// names longest-first, so a freshly activated context can never
// collide with the abbreviation of an inactive one. Under ShortenMax
// only the active names themselves are uniquified, which yields
// shorter but possibly globally ambiguous abbreviations.
//
// pred gates which names may be shortened at all; names it rejects
// pass through unchanged. The output depends only on the inputs, never
// on map iteration order.
func Shorten(universe, active []string, pred func(string) bool, minLen int, mode Aggressiveness) []string {
	if mode == ShortenMax {
		out := make([]string, len(active))
		for i := range active {
			out[i] = shortenOne(active, i, pred, minLen, true)
		}
		return out
	}

	aggressive := mode != ShortenOff
	prefixes := make([]string, len(universe))
	for i := range universe {
		prefixes[i] = shortenOne(universe, i, pred, minLen, aggressive)
	}
	sort.SliceStable(prefixes, func(a, b int) bool {
		return len(prefixes[a]) > len(prefixes[b])
	})

	out := make([]string, len(active))
	used := make(map[string]bool, len(active))
	for i, name := range active {
		out[i] = name
		for _, p := range prefixes {
			if used[p] || !strings.HasPrefix(name, p) {
				continue
			}
			out[i] = p
			used[p] = true
			break
		}
	}
	return out
}

// shortenOne returns the minimal prefix of pool[idx] that no other
// pool member starts with, or the full name when no such prefix exists
// or when shortening would save only a single character and aggressive
// is off.
func shortenOne(pool []string, idx int, pred func(string) bool, minLen int, aggressive bool) string {
	s := pool[idx]
	if pred != nil && !pred(s) {
		return s
	}
	runes := []rune(s)
	i := minLen
	if i > len(runes) {
		i = len(runes)
	}
	for ; i < len(runes); i++ {
		cand := string(runes[:i])
		if !prefixTaken(pool, idx, cand) {
			if !aggressive && i == len(runes)-1 {
				return s
			}
			return cand
		}
	}
	return s
}

func prefixTaken(pool []string, idx int, prefix string) bool {
	for j, other := range pool {
		if j != idx && strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

// ShortenCache memoizes Shorten results. The key covers every input,
// including an explicit configuration version, so the cache never
// serves results across an option change.
type ShortenCache struct {
	key string
	out []string
}

// Get returns the cached result for the given inputs, or computes,
// stores and returns a fresh one. Callers bump version whenever any
// shortening option outside the argument list changes.
func (c *ShortenCache) Get(universe, active []string, pred func(string) bool, minLen int, mode Aggressiveness, version uint64) []string {
	key := cacheKey(universe, active, minLen, mode, version)
	if c.key == key && c.out != nil {
		return c.out
	}
	c.key = key
	c.out = Shorten(universe, active, pred, minLen, mode)
	return c.out
}

// Invalidate drops the cached result.
func (c *ShortenCache) Invalidate() {
	c.key = ""
	c.out = nil
}

func cacheKey(universe, active []string, minLen int, mode Aggressiveness, version uint64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d/%d;", minLen, mode, version)
	for _, s := range universe {
		b.WriteString(s)
		b.WriteByte(0)
	}
	b.WriteByte(1)
	for _, s := range active {
		b.WriteString(s)
		b.WriteByte(0)
	}
	return b.String()
}

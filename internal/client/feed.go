package client

import (
	"math/rand"
	"time"

	"chantrack/internal/track"
	"chantrack/internal/utils"
)

// FeedEvent is one synthesized piece of incoming content.
type FeedEvent struct {
	Channel track.Context
	Message Message
}

// Feed generates demo traffic across the store's channels so the
// tracker has something to chew on without a network connection.
type Feed struct {
	store *ChannelStore
	rng   *rand.Rand
}

// NewFeed builds a feed over store. seed pins the traffic pattern;
// pass 0 for time-based seeding.
func NewFeed(store *ChannelStore, seed int64) *Feed {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Feed{store: store, rng: rand.New(rand.NewSource(seed))}
}

var feedAuthors = []string{"ada", "linus", "grace", "rob", "ken", "barbara"}

var feedLines = []struct {
	text string
	tags []track.Tag
}{
	{"did anyone look at the failing build?", []track.Tag{"chatter"}},
	{"morning all", []track.Tag{"chatter"}},
	{"pushed a fix for the parser", []track.Tag{"chatter"}},
	{"you around? need a review", []track.Tag{"mention", "chatter"}},
	{"deploy failed: connection refused", []track.Tag{"error", "chatter"}},
	{"ping: standup in five", []track.Tag{"mention", "chatter"}},
	{"server restarting NOW", []track.Tag{"alert", "error"}},
	{"has joined the channel", []track.Tag{"join"}},
	{"lunch?", []track.Tag{"chatter"}},
	{"the docs build is green again", []track.Tag{"notice", "chatter"}},
}

// Next synthesizes one event for a random channel, appends it to the
// channel history and returns it. Returns false when the store has no
// channels.
func (f *Feed) Next() (FeedEvent, bool) {
	channels := f.store.List()
	if len(channels) == 0 {
		return FeedEvent{}, false
	}
	ch := channels[f.rng.Intn(len(channels))]
	line := feedLines[f.rng.Intn(len(feedLines))]
	msg := Message{
		ID:        utils.NewID("msg"),
		Author:    feedAuthors[f.rng.Intn(len(feedAuthors))],
		Text:      line.text,
		Tags:      append([]track.Tag(nil), line.tags...),
		Timestamp: time.Now().UTC(),
	}
	f.store.Append(ch.ID, msg)
	return FeedEvent{Channel: ch.ID, Message: msg}, true
}

// Package client is the host side of the tracker: the channel store,
// persisted user settings, transcript log and the demo message feed.
// It owns channel lifetimes; the tracker only ever sees handles.
package client

import (
	"sort"
	"time"

	"chantrack/internal/track"
	"chantrack/internal/utils"
)

// Message is one piece of content in a channel.
type Message struct {
	ID        string      `json:"id"`
	Author    string      `json:"author"`
	Text      string      `json:"text"`
	Tags      []track.Tag `json:"tags"`
	Timestamp time.Time   `json:"timestamp"`
}

// Channel is one conversation unit.
type Channel struct {
	ID        track.Context `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	Connected bool          `json:"connected"`
	History   []Message     `json:"history,omitempty"`
}

// ChannelStore holds every channel the client knows about, active or
// not. It is driven entirely from the UI event loop, so no locking.
type ChannelStore struct {
	channels map[track.Context]*Channel
	order    []track.Context
}

// NewChannelStore returns an empty store.
func NewChannelStore() *ChannelStore {
	return &ChannelStore{channels: make(map[track.Context]*Channel)}
}

// Create adds a channel with the given name and returns its handle.
func (cs *ChannelStore) Create(name string) *Channel {
	ch := &Channel{
		ID:        track.Context(utils.NewID("chan")),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Connected: true,
	}
	cs.channels[ch.ID] = ch
	cs.order = append(cs.order, ch.ID)
	return ch
}

// Get looks up a channel by handle.
func (cs *ChannelStore) Get(id track.Context) (*Channel, bool) {
	ch, ok := cs.channels[id]
	return ch, ok
}

// ByName finds a channel by its display name.
func (cs *ChannelStore) ByName(name string) (*Channel, bool) {
	for _, id := range cs.order {
		if cs.channels[id].Name == name {
			return cs.channels[id], true
		}
	}
	return nil, false
}

// List returns the channels in creation order.
func (cs *ChannelStore) List() []*Channel {
	out := make([]*Channel, 0, len(cs.order))
	for _, id := range cs.order {
		out = append(out, cs.channels[id])
	}
	return out
}

// Names returns every known channel name, sorted, for use as the
// shortener universe. Sorting keeps the universe stable regardless of
// creation order so abbreviation results are reproducible.
func (cs *ChannelStore) Names() []string {
	names := make([]string, 0, len(cs.order))
	for _, id := range cs.order {
		names = append(names, cs.channels[id].Name)
	}
	sort.Strings(names)
	return names
}

// Name resolves a handle to its display name; destroyed handles
// resolve to "?" so a stale status segment stays renderable until the
// next purge sweeps it out.
func (cs *ChannelStore) Name(id track.Context) string {
	if ch, ok := cs.channels[id]; ok {
		return ch.Name
	}
	return "?"
}

// Append adds a message to a channel's history.
func (cs *ChannelStore) Append(id track.Context, msg Message) {
	ch, ok := cs.channels[id]
	if !ok {
		return
	}
	ch.History = append(ch.History, msg)
}

// SetConnected flips a channel's connection state and reports whether
// the channel exists.
func (cs *ChannelStore) SetConnected(id track.Context, connected bool) bool {
	ch, ok := cs.channels[id]
	if !ok {
		return false
	}
	ch.Connected = connected
	return true
}

// Remove destroys a channel.
func (cs *ChannelStore) Remove(id track.Context) bool {
	if _, ok := cs.channels[id]; !ok {
		return false
	}
	delete(cs.channels, id)
	for i, o := range cs.order {
		if o == id {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps a channel's handle for a new one, keeping its state.
// Models a reconnect where the server hands out a fresh conversation
// object for the same logical channel.
func (cs *ChannelStore) Replace(old track.Context) (track.Context, bool) {
	ch, ok := cs.channels[old]
	if !ok {
		return "", false
	}
	delete(cs.channels, old)
	ch.ID = track.Context(utils.NewID("chan"))
	ch.Connected = true
	cs.channels[ch.ID] = ch
	for i, o := range cs.order {
		if o == old {
			cs.order[i] = ch.ID
			break
		}
	}
	return ch.ID, true
}

// Exists reports whether the handle is still valid.
func (cs *ChannelStore) Exists(id track.Context) bool {
	_, ok := cs.channels[id]
	return ok
}

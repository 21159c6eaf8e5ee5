package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"chantrack/internal/client"
	"chantrack/internal/track"
)

type channelItem struct {
	ch     *client.Channel
	unread uint64
	tag    track.Tag
}

func (i channelItem) Title() string {
	title := i.ch.Name
	if !i.ch.Connected {
		title += " (offline)"
	}
	if i.unread > 0 {
		title = fmt.Sprintf("%s ● %d", title, i.unread)
	}
	return title
}

func (i channelItem) Description() string {
	if len(i.ch.History) == 0 {
		return "no messages yet"
	}
	last := i.ch.History[len(i.ch.History)-1]
	return previewText(fmt.Sprintf("<%s> %s", last.Author, last.Text), 60)
}

func (i channelItem) FilterValue() string { return i.ch.Name }

func buildChannelItems(store *client.ChannelStore, tracker *track.Tracker) []list.Item {
	items := make([]list.Item, 0, len(store.List()))
	byCtx := make(map[track.Context]track.Entry)
	for _, e := range tracker.Entries() {
		byCtx[e.Context] = e
	}
	for _, ch := range store.List() {
		item := channelItem{ch: ch}
		if e, ok := byCtx[ch.ID]; ok {
			item.unread = e.Count
			item.tag = e.Tag
		}
		items = append(items, item)
	}
	return items
}

func previewText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func newChannelList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

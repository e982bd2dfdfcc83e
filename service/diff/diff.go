// Package diff compares two consecutive fact snapshots of one watch.
// It is pure: no clock, no I/O, no side effects.
package diff

import (
	"strings"

	"github.com/kitaptakip/bot-telegram/model/event"
	"github.com/kitaptakip/bot-telegram/model/user"
	"github.com/kitaptakip/bot-telegram/service/fetch"
)

// Changes returns the events caused by the freshly fetched facts, price
// change first, then stock change. A nil previous watch is a baseline and
// yields no events regardless of the facts.
func Changes(userId, url string, prev *user.Watch, f fetch.Facts) (evts []event.Event) {
	if prev == nil {
		return
	}
	if strings.TrimSpace(prev.Price) != strings.TrimSpace(f.Price) {
		evts = append(evts, event.Event{
			UserId:   userId,
			Url:      url,
			Kind:     event.KindPrice,
			Title:    f.Title,
			OldPrice: prev.Price,
			NewPrice: f.Price,
		})
	}
	if prev.InStock != f.InStock {
		evts = append(evts, event.Event{
			UserId:   userId,
			Url:      url,
			Kind:     event.KindStock,
			Title:    f.Title,
			OldStock: prev.InStock,
			NewStock: f.InStock,
		})
	}
	return
}

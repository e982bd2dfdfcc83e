package diff

import (
	"testing"

	"github.com/kitaptakip/bot-telegram/model/event"
	"github.com/kitaptakip/bot-telegram/model/user"
	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/stretchr/testify/assert"
)

func TestChanges(t *testing.T) {
	cases := map[string]struct {
		prev *user.Watch
		f    fetch.Facts
		out  []event.Event
	}{
		"baseline yields nothing": {
			prev: nil,
			f: fetch.Facts{
				Title:   "Kürk Mantolu Madonna",
				Price:   "99",
				InStock: true,
			},
			out: nil,
		},
		"no change yields nothing": {
			prev: &user.Watch{
				Price:   "120",
				InStock: true,
			},
			f: fetch.Facts{
				Title:   "Kürk Mantolu Madonna",
				Price:   "120",
				InStock: true,
			},
			out: nil,
		},
		"price change": {
			prev: &user.Watch{
				Price:   "120",
				InStock: true,
			},
			f: fetch.Facts{
				Title:   "Kürk Mantolu Madonna",
				Price:   "99",
				InStock: true,
			},
			out: []event.Event{
				{
					UserId:   "1",
					Url:      "u",
					Kind:     event.KindPrice,
					Title:    "Kürk Mantolu Madonna",
					OldPrice: "120",
					NewPrice: "99",
				},
			},
		},
		"stock change only": {
			prev: &user.Watch{
				Price:   "120",
				InStock: true,
			},
			f: fetch.Facts{
				Title:   "Kürk Mantolu Madonna",
				Price:   "120",
				InStock: false,
			},
			out: []event.Event{
				{
					UserId:   "1",
					Url:      "u",
					Kind:     event.KindStock,
					Title:    "Kürk Mantolu Madonna",
					OldStock: true,
					NewStock: false,
				},
			},
		},
		"both fire in price then stock order": {
			prev: &user.Watch{
				Price:   "120",
				InStock: false,
			},
			f: fetch.Facts{
				Title:   "Kürk Mantolu Madonna",
				Price:   "99",
				InStock: true,
			},
			out: []event.Event{
				{
					UserId:   "1",
					Url:      "u",
					Kind:     event.KindPrice,
					Title:    "Kürk Mantolu Madonna",
					OldPrice: "120",
					NewPrice: "99",
				},
				{
					UserId:   "1",
					Url:      "u",
					Kind:     event.KindStock,
					Title:    "Kürk Mantolu Madonna",
					NewStock: true,
				},
			},
		},
		"whitespace drift is not a change": {
			prev: &user.Watch{
				Price:   " 120 ",
				InStock: true,
			},
			f: fetch.Facts{
				Title:   "Kürk Mantolu Madonna",
				Price:   "120",
				InStock: true,
			},
			out: nil,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, c.out, Changes("1", "u", c.prev, c.f))
		})
	}
}

func TestChangesIdempotent(t *testing.T) {
	prev := &user.Watch{
		Price:   "120",
		InStock: true,
	}
	f := fetch.Facts{
		Title:   "Saatleri Ayarlama Enstitüsü",
		Price:   "120",
		InStock: true,
	}
	assert.Empty(t, Changes("1", "u", prev, f))
	assert.Empty(t, Changes("1", "u", prev, f))
}

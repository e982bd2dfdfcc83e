package notify

import (
	"fmt"

	"github.com/kitaptakip/bot-telegram/model/event"
	"github.com/microcosm-cc/bluemonday"
)

const LabelInStock = "Stokta var ✅"
const LabelNoStock = "Stokta yok ❌"

const fmtMsgPrice = "🔔 Fiyat değişikliği!\n\n📚 <b>%s</b>\n💰 Eski fiyat: %s TL\n💰 Yeni fiyat: %s TL\n🔗 %s"
const fmtMsgStock = "📦 Stok durumu değişti!\n\n📚 <b>%s</b>\n📦 %s\n🔗 %s"
const fmtMsgAnnounce = "📢 Duyuru\n\n%s\n\n- Bot Yönetimi"

func StockLabel(inStock bool) (label string) {
	switch inStock {
	case true:
		label = LabelInStock
	default:
		label = LabelNoStock
	}
	return
}

// Format renders events as Telegram HTML, scraped titles pass the sanitizer
// policy first. See https://core.telegram.org/bots/api#html-style for details.
type Format struct {
	HtmlPolicy *bluemonday.Policy
}

func (f Format) Event(ev event.Event) (txt string) {
	title := f.HtmlPolicy.Sanitize(ev.Title)
	switch ev.Kind {
	case event.KindPrice:
		txt = fmt.Sprintf(fmtMsgPrice, title, ev.OldPrice, ev.NewPrice, ev.Url)
	case event.KindStock:
		txt = fmt.Sprintf(fmtMsgStock, title, StockLabel(ev.NewStock), ev.Url)
	}
	return
}

func (f Format) Announcement(msg string) (txt string) {
	txt = fmt.Sprintf(fmtMsgAnnounce, f.HtmlPolicy.Sanitize(msg))
	return
}

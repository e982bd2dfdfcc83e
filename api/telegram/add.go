package telegram

import (
	"context"
	"fmt"

	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/service/notify"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdAdd = "/ekle"

const msgAddUsage = "Lütfen bir Kitapyurdu ürün linki ekleyin."
const msgAddBadUrl = "Lütfen geçerli bir Kitapyurdu linki girin."
const msgAddFailed = "Ürün eklenirken bir hata oluştu. Lütfen linki kontrol edip tekrar deneyin."

const fmtMsgAdded = `📚 Ürün takibe alındı!

📖 %s
📦 %s%s

Fiyat veya stok durumu değiştiğinde size bildirim göndereceğim! 🔔`

func AddHandlerFunc(svcWatch watch.Service, svcFetch fetch.Service, catalogHost string) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		args := tgCtx.Args()
		if len(args) < 1 {
			err = tgCtx.Send(msgAddUsage)
			return
		}
		url := args[0]
		if ValidateUrl(catalogHost, url) != nil {
			err = tgCtx.Send(msgAddBadUrl)
			return
		}
		f, errFetch := svcFetch.Fetch(context.TODO(), url)
		if errFetch != nil {
			err = tgCtx.Send(msgAddFailed)
			return
		}
		_, err = svcWatch.Add(context.TODO(), util.SenderToUserId(tgCtx), util.SenderToUserName(tgCtx), url, f)
		if err == nil {
			var priceInfo string
			if f.Price != fetch.PriceUnknown {
				priceInfo = fmt.Sprintf("\n💰 Fiyat: %s TL", f.Price)
			}
			err = tgCtx.Send(fmt.Sprintf(fmtMsgAdded, f.Title, notify.StockLabel(f.InStock), priceInfo))
		}
		return
	}
}

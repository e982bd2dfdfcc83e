package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/kitaptakip/bot-telegram/service/notify"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdList = "/liste"

const msgListEmpty = "Takip ettiğiniz ürün bulunmuyor."
const msgListHead = "📚 Takip ettiğiniz ürünler:\n\n"
const fmtMsgListItem = "📖 %s\n💰 %s TL\n📦 %s\n🔄 Son kontrol: %s\n🔗 %s\n\n"

const fmtTime = "2006-01-02 15:04:05"

func ListHandlerFunc(svcWatch watch.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		ws, err := svcWatch.List(context.TODO(), util.SenderToUserId(tgCtx))
		if err != nil {
			return
		}
		if len(ws) == 0 {
			err = tgCtx.Send(msgListEmpty)
			return
		}
		var txt strings.Builder
		txt.WriteString(msgListHead)
		for _, w := range ws {
			txt.WriteString(fmt.Sprintf(
				fmtMsgListItem,
				w.Title,
				w.Price,
				notify.StockLabel(w.InStock),
				w.Checked.Local().Format(fmtTime),
				w.Url,
			))
		}
		err = tgCtx.Send(txt.String())
		return
	}
}

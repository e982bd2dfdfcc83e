package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdStats = "/istatistik"

const msgStatsNone = "Henüz hiç ürün takip etmemişsiniz."

const fmtMsgStats = `📊 Takip İstatistikleriniz

👤 Kullanıcı: %s
📅 Katılım: %s

📚 Toplam Takip: %d ürün
✅ Stokta Olan: %d ürün
❌ Stokta Olmayan: %d ürün`

func StatsHandlerFunc(svcWatch watch.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		st, err := svcWatch.Stats(context.TODO(), util.SenderToUserId(tgCtx))
		switch {
		case errors.Is(err, storage.ErrNotFound):
			err = tgCtx.Send(msgStatsNone)
		case err == nil:
			err = tgCtx.Send(fmt.Sprintf(
				fmtMsgStats,
				st.UserName,
				st.Joined.Local().Format(fmtTime),
				st.Total,
				st.InStock,
				st.Total-st.InStock,
			))
		}
		return
	}
}

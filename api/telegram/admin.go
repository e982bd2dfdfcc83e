package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/kitaptakip/bot-telegram/service/auth"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdAdmin = "/admin"

const msgForbidden = "Bu komutu kullanma yetkiniz yok!"
const msgSuperOnly = "Bu komutu sadece süper admin kullanabilir!"

const fmtMsgAdminStats = `👑 Admin İstatistikleri

👥 Toplam Kullanıcı: %d
📚 Toplam Takip Edilen Ürün: %d
👤 Aktif Kullanıcı: %d

🔍 Detaylı Kullanıcı Bilgileri:`

func AdminStatsHandlerFunc(svcAuth auth.Service, svcWatch watch.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		t, err := svcAuth.Classify(context.TODO(), util.SenderToUserId(tgCtx))
		if err != nil {
			return
		}
		if t == auth.TierUser {
			err = tgCtx.Send(msgForbidden)
			return
		}
		ts, err := svcWatch.Totals(context.TODO())
		if err == nil {
			var txt strings.Builder
			txt.WriteString(fmt.Sprintf(fmtMsgAdminStats, ts.Users, ts.Watches, ts.ActiveUsers))
			for _, ut := range ts.PerUser {
				txt.WriteString(fmt.Sprintf("\n\n@%s", ut.Name))
				txt.WriteString(fmt.Sprintf("\n└ Takip Edilen: %d ürün", ut.Watches))
				txt.WriteString(fmt.Sprintf("\n└ Katılım: %s", ut.Joined.Local().Format(fmtTime)))
			}
			err = tgCtx.Send(txt.String())
		}
		return
	}
}

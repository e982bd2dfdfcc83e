package telegram

import (
	"context"

	"github.com/kitaptakip/bot-telegram/service/auth"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdAdminHelp = "/adminhelp"

const msgAdminHelp = `👑 Admin Komutları

🔍 Genel Admin Komutları:
/admin - Tüm kullanıcı ve ürün istatistiklerini gösterir
/duyuru <mesaj> - Tüm kullanıcılara duyuru gönderir
/engelle <user_id> - Kullanıcıyı engeller
/engelkaldir <user_id> - Kullanıcının engelini kaldırır
/adminler - Admin listesini gösterir
/adminhelp - Bu yardım mesajını gösterir`

const msgSuperAdminHelp = `

👑 Süper Admin Komutları:
/adminekle <user_id> - Yeni admin ekler
/adminsil <user_id> - Admin yetkisini alır

📝 Örnek Kullanımlar:
• /duyuru Sistemde bakım yapılacak
• /engelle 123456789
• /adminekle 123456789
• /adminsil 123456789`

func AdminHelpHandlerFunc(svcAuth auth.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		t, err := svcAuth.Classify(context.TODO(), util.SenderToUserId(tgCtx))
		if err != nil {
			return
		}
		switch t {
		case auth.TierUser:
			err = tgCtx.Send(msgForbidden)
		case auth.TierSuperAdmin:
			err = tgCtx.Send(msgAdminHelp + msgSuperAdminHelp)
		default:
			err = tgCtx.Send(msgAdminHelp)
		}
		return
	}
}

package telegram

import (
	"context"
	"fmt"

	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdStart = "/start"

const fmtMsgWelcome = `🤖 Kitapyurdu Takip Botu'na Hoş Geldiniz! 📚

Merhaba %s!

💡 Bot Nasıl Çalışır:
- Düzenli aralıklarla kitapları kontrol eder
- Fiyat veya stok değişikliklerinde bildirim gönderir
- Her kullanıcının kendi takip listesi vardır

📝 Kullanılabilir Komutlar:
/start - Bu mesajı gösterir
/ekle <kitap-linki> - Yeni kitap ekler
/liste - Takip ettiğiniz kitapları gösterir
/sil <kitap-linki> - Kitabı takipten çıkarır
/istatistik - Takip istatistiklerinizi gösterir

📌 Örnek Kullanım:
/ekle https://www.kitapyurdu.com/kitap/python-programlama/123456

Bot aktif ve çalışıyor! İyi kullanımlar! 🚀`

func StartHandlerFunc(svcWatch watch.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		userName := util.SenderToUserName(tgCtx)
		_, err = svcWatch.Register(context.TODO(), util.SenderToUserId(tgCtx), userName)
		if err == nil {
			err = tgCtx.Send(fmt.Sprintf(fmtMsgWelcome, userName))
		}
		return
	}
}

package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdRemove = "/sil"

const msgRemoveUsage = "Lütfen silmek istediğiniz ürünün linkini girin."
const msgRemoveMissing = "Bu ürün takip listenizde bulunmuyor."
const fmtMsgRemoved = "Ürün başarıyla silindi:\n📚 %s"

func RemoveHandlerFunc(svcWatch watch.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		args := tgCtx.Args()
		if len(args) < 1 {
			err = tgCtx.Send(msgRemoveUsage)
			return
		}
		w, err := svcWatch.Remove(context.TODO(), util.SenderToUserId(tgCtx), args[0])
		switch {
		case errors.Is(err, watch.ErrNotFound):
			err = tgCtx.Send(msgRemoveMissing)
		case err == nil:
			err = tgCtx.Send(fmt.Sprintf(fmtMsgRemoved, w.Title))
		}
		return
	}
}

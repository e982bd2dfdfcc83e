package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitaptakip/bot-telegram/service/auth"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdBlock = "/engelle"
const CmdUnblock = "/engelkaldir"

const msgBlockUsage = "Lütfen engellenecek kullanıcı ID'sini girin."
const msgUnblockUsage = "Lütfen engeli kaldırılacak kullanıcı ID'sini girin."
const msgUserMissing = "Kullanıcı bulunamadı."
const fmtMsgBlocked = "Kullanıcı @%s engellendi."
const fmtMsgUnblocked = "Kullanıcı @%s engeli kaldırıldı."

func BlockHandlerFunc(svcAuth auth.Service) telebot.HandlerFunc {
	return blockHandlerFunc(svcAuth, svcAuth.Block, msgBlockUsage, fmtMsgBlocked)
}

func UnblockHandlerFunc(svcAuth auth.Service) telebot.HandlerFunc {
	return blockHandlerFunc(svcAuth, svcAuth.Unblock, msgUnblockUsage, fmtMsgUnblocked)
}

func blockHandlerFunc(
	svcAuth auth.Service,
	op func(ctx context.Context, callerId, targetId string) (name string, err error),
	msgUsage string,
	fmtMsgDone string,
) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		callerId := util.SenderToUserId(tgCtx)
		t, err := svcAuth.Classify(context.TODO(), callerId)
		if err != nil {
			return
		}
		if t == auth.TierUser {
			err = tgCtx.Send(msgForbidden)
			return
		}
		args := tgCtx.Args()
		if len(args) < 1 {
			err = tgCtx.Send(msgUsage)
			return
		}
		name, err := op(context.TODO(), callerId, args[0])
		switch {
		case errors.Is(err, storage.ErrNotFound):
			err = tgCtx.Send(msgUserMissing)
		case err == nil:
			err = tgCtx.Send(fmt.Sprintf(fmtMsgDone, name))
		}
		return
	}
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kitaptakip/bot-telegram/service/auth"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdAdmins = "/adminler"
const CmdPromote = "/adminekle"
const CmdDemote = "/adminsil"

const msgPromoteUsage = "Lütfen admin olarak eklenecek kullanıcı ID'sini girin."
const msgDemoteUsage = "Lütfen adminlikten çıkarılacak kullanıcı ID'sini girin."
const msgAlreadyAdmin = "Bu kullanıcı zaten admin!"
const msgNotAdmin = "Bu kullanıcı zaten admin değil!"
const msgProtected = "Süper admin silinemez!"
const fmtMsgPromoted = "Kullanıcı %s admin olarak eklendi."
const fmtMsgDemoted = "Kullanıcı %s admin listesinden çıkarıldı."

const labelSuperAdmin = "👑 Süper Admin"
const labelAdmin = "⭐️ Admin"

func AdminsHandlerFunc(svcAuth auth.Service, storUsers storage.Users, superId string) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		ids, err := svcAuth.Admins(context.TODO(), util.SenderToUserId(tgCtx))
		if errors.Is(err, auth.ErrForbidden) {
			err = tgCtx.Send(msgForbidden)
			return
		}
		if err == nil {
			var txt strings.Builder
			txt.WriteString("👑 Admin Listesi:\n\n")
			for _, id := range ids {
				label := labelAdmin
				if id == superId {
					label = labelSuperAdmin
				}
				u, errGet := storUsers.Get(context.TODO(), id)
				switch errGet {
				case nil:
					txt.WriteString(fmt.Sprintf("• @%s (%s) - %s\n", u.Name, id, label))
				default:
					txt.WriteString(fmt.Sprintf("• %s - %s\n", id, label))
				}
			}
			err = tgCtx.Send(txt.String())
		}
		return
	}
}

func PromoteHandlerFunc(svcAuth auth.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		args := tgCtx.Args()
		callerId := util.SenderToUserId(tgCtx)
		t, err := svcAuth.Classify(context.TODO(), callerId)
		if err != nil {
			return
		}
		if t != auth.TierSuperAdmin {
			err = tgCtx.Send(msgSuperOnly)
			return
		}
		if len(args) < 1 {
			err = tgCtx.Send(msgPromoteUsage)
			return
		}
		err = svcAuth.Promote(context.TODO(), callerId, args[0])
		switch {
		case errors.Is(err, auth.ErrAlreadyAdmin):
			err = tgCtx.Send(msgAlreadyAdmin)
		case err == nil:
			err = tgCtx.Send(fmt.Sprintf(fmtMsgPromoted, args[0]))
		}
		return
	}
}

func DemoteHandlerFunc(svcAuth auth.Service) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		args := tgCtx.Args()
		callerId := util.SenderToUserId(tgCtx)
		t, err := svcAuth.Classify(context.TODO(), callerId)
		if err != nil {
			return
		}
		if t != auth.TierSuperAdmin {
			err = tgCtx.Send(msgSuperOnly)
			return
		}
		if len(args) < 1 {
			err = tgCtx.Send(msgDemoteUsage)
			return
		}
		err = svcAuth.Demote(context.TODO(), callerId, args[0])
		switch {
		case errors.Is(err, auth.ErrProtected):
			err = tgCtx.Send(msgProtected)
		case errors.Is(err, auth.ErrNotAdmin):
			err = tgCtx.Send(msgNotAdmin)
		case err == nil:
			err = tgCtx.Send(fmt.Sprintf(fmtMsgDemoted, args[0]))
		}
		return
	}
}

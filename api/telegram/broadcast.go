package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/kitaptakip/bot-telegram/service/auth"
	"github.com/kitaptakip/bot-telegram/service/notify"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/kitaptakip/bot-telegram/util"
	"gopkg.in/telebot.v3"
)

const CmdBroadcast = "/duyuru"

const msgBroadcastUsage = "Lütfen bir duyuru mesajı yazın."
const fmtMsgBroadcastDone = "Duyuru %d kullanıcıya gönderildi."

// BroadcastHandlerFunc fans the announcement out to every known user.
// Blocked users are included, matching the long observed behavior.
func BroadcastHandlerFunc(svcAuth auth.Service, svcNotify notify.Service, fmtMsg notify.Format, storUsers storage.Users) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		t, err := svcAuth.Classify(context.TODO(), util.SenderToUserId(tgCtx))
		if err != nil {
			return
		}
		if t == auth.TierUser {
			err = tgCtx.Send(msgForbidden)
			return
		}
		args := tgCtx.Args()
		if len(args) < 1 {
			err = tgCtx.Send(msgBroadcastUsage)
			return
		}
		us, err := storUsers.List(context.TODO())
		if err != nil {
			return
		}
		var userIds []string
		for _, u := range us {
			userIds = append(userIds, u.Id)
		}
		delivered := svcNotify.Broadcast(context.TODO(), userIds, fmtMsg.Announcement(strings.Join(args, " ")))
		err = tgCtx.Send(fmt.Sprintf(fmtMsgBroadcastDone, delivered))
		return
	}
}

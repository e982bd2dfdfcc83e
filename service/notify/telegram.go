package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/ksuid"
	"gopkg.in/telebot.v3"
)

// Sender is the used subset of telebot.Bot.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (msg *telebot.Message, err error)
}

type svcTelegram struct {
	sender Sender
	log    *slog.Logger
}

func NewTelegram(sender Sender, log *slog.Logger) Service {
	return svcTelegram{
		sender: sender,
		log:    log,
	}
}

func (sv svcTelegram) Notify(ctx context.Context, userId, txt string) (err error) {
	id, err := strconv.ParseInt(userId, 10, 64)
	if err != nil {
		err = fmt.Errorf("%w: invalid user id %s", ErrDelivery, userId)
		return
	}
	_, err = sv.sender.Send(telebot.ChatID(id), txt, telebot.ModeHTML)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrDelivery, err)
	}
	return
}

func (sv svcTelegram) Broadcast(ctx context.Context, userIds []string, txt string) (delivered int) {
	broadcastId := ksuid.New().String()
	for _, userId := range userIds {
		err := sv.Notify(ctx, userId, txt)
		switch err {
		case nil:
			delivered++
		default:
			sv.log.Warn(fmt.Sprintf("notify.Broadcast(id=%s): user %s: %s", broadcastId, userId, err))
		}
	}
	sv.log.Info(fmt.Sprintf("notify.Broadcast(id=%s): delivered %d of %d", broadcastId, delivered, len(userIds)))
	return
}

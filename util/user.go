package util

import (
	"strconv"

	"gopkg.in/telebot.v3"
)

// NameAnon is the display name fallback for senders without a username.
const NameAnon = "Anonim"

func SenderToUserId(ctxTg telebot.Context) (id string) {
	sender := ctxTg.Sender()
	if sender != nil {
		id = strconv.FormatInt(sender.ID, 10)
	}
	return
}

func SenderToUserName(ctxTg telebot.Context) (name string) {
	name = NameAnon
	sender := ctxTg.Sender()
	if sender != nil && sender.Username != "" {
		name = sender.Username
	}
	return
}

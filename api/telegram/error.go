package telegram

import "gopkg.in/telebot.v3"

// ErrorHandlerFunc reports a failed command back to the caller instead of
// dropping the update. A failure stays terminal for that command only.
func ErrorHandlerFunc(h telebot.HandlerFunc) telebot.HandlerFunc {
	return func(ctx telebot.Context) (err error) {
		err = h(ctx)
		if err != nil {
			_ = ctx.Send(err.Error())
		}
		return
	}
}

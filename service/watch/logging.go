package watch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kitaptakip/bot-telegram/model/user"
	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/util"
)

type logging struct {
	svc Service
	log *slog.Logger
}

func NewLogging(svc Service, log *slog.Logger) Service {
	return logging{
		svc: svc,
		log: log,
	}
}

func (sl logging) Register(ctx context.Context, userId, userName string) (u user.User, err error) {
	u, err = sl.svc.Register(ctx, userId, userName)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.Register(%s, %s): err=%v", userId, userName, err))
	return
}

func (sl logging) Add(ctx context.Context, userId, userName, url string, f fetch.Facts) (w user.Watch, err error) {
	w, err = sl.svc.Add(ctx, userId, userName, url, f)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.Add(%s, %s): title=%q, err=%v", userId, url, w.Title, err))
	return
}

func (sl logging) Remove(ctx context.Context, userId, url string) (w user.Watch, err error) {
	w, err = sl.svc.Remove(ctx, userId, url)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.Remove(%s, %s): err=%v", userId, url, err))
	return
}

func (sl logging) List(ctx context.Context, userId string) (ws []user.Watch, err error) {
	ws, err = sl.svc.List(ctx, userId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.List(%s): %d, err=%v", userId, len(ws), err))
	return
}

func (sl logging) Update(ctx context.Context, userId, url string, f fetch.Facts) (err error) {
	err = sl.svc.Update(ctx, userId, url, f)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.Update(%s, %s): err=%v", userId, url, err))
	return
}

func (sl logging) Stats(ctx context.Context, userId string) (st Stats, err error) {
	st, err = sl.svc.Stats(ctx, userId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.Stats(%s): total=%d, err=%v", userId, st.Total, err))
	return
}

func (sl logging) Totals(ctx context.Context) (ts Totals, err error) {
	ts, err = sl.svc.Totals(ctx)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("watch.Totals(): users=%d, watches=%d, err=%v", ts.Users, ts.Watches, err))
	return
}

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kitaptakip/bot-telegram/util"
)

// logging keeps the audit trail: every denied call surfaces here with the
// caller and target ids.
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

func (sl logging) Classify(ctx context.Context, callerId string) (t Tier, err error) {
	t, err = sl.svc.Classify(ctx, callerId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.Classify(%s): %s, err=%v", callerId, t, err))
	return
}

func (sl logging) Promote(ctx context.Context, callerId, targetId string) (err error) {
	err = sl.svc.Promote(ctx, callerId, targetId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.Promote(%s, %s): err=%v", callerId, targetId, err))
	return
}

func (sl logging) Demote(ctx context.Context, callerId, targetId string) (err error) {
	err = sl.svc.Demote(ctx, callerId, targetId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.Demote(%s, %s): err=%v", callerId, targetId, err))
	return
}

func (sl logging) Block(ctx context.Context, callerId, targetId string) (name string, err error) {
	name, err = sl.svc.Block(ctx, callerId, targetId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.Block(%s, %s): err=%v", callerId, targetId, err))
	return
}

func (sl logging) Unblock(ctx context.Context, callerId, targetId string) (name string, err error) {
	name, err = sl.svc.Unblock(ctx, callerId, targetId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.Unblock(%s, %s): err=%v", callerId, targetId, err))
	return
}

func (sl logging) Admins(ctx context.Context, callerId string) (ids []string, err error) {
	ids, err = sl.svc.Admins(ctx, callerId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("auth.Admins(%s): %d, err=%v", callerId, len(ids), err))
	return
}

package fetch

import (
	"context"
	"fmt"
	"log/slog"

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

func (sl logging) Fetch(ctx context.Context, url string) (f Facts, err error) {
	f, err = sl.svc.Fetch(ctx, url)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("fetch.Fetch(%s): title=%q, price=%q, inStock=%t, err=%v", url, f.Title, f.Price, f.InStock, err))
	return
}

package poll

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kitaptakip/bot-telegram/model/user"
	"github.com/kitaptakip/bot-telegram/service/diff"
	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/service/notify"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/storage"
)

// Service drives one full check cycle over every (user, watch) pair.
type Service interface {

	// CheckAll runs a single tick. Users are sharded over a bounded worker
	// pool, one user's watches are always checked in order on one worker so
	// the per user delivery order is kept. A tick that starts while the
	// previous one still runs is skipped.
	CheckAll(ctx context.Context)

	// LastTick is the completion time of the most recent tick, zero before
	// the first one.
	LastTick() (t time.Time)
}

type service struct {
	storUsers   storage.Users
	svcFetch    fetch.Service
	svcWatch    watch.Service
	svcNotify   notify.Service
	fmtMsg      notify.Format
	concurrency int
	log         *slog.Logger
	busy        atomic.Bool
	lastTick    atomic.Int64
}

func NewService(
	storUsers storage.Users,
	svcFetch fetch.Service,
	svcWatch watch.Service,
	svcNotify notify.Service,
	fmtMsg notify.Format,
	concurrency int,
	log *slog.Logger,
) Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &service{
		storUsers:   storUsers,
		svcFetch:    svcFetch,
		svcWatch:    svcWatch,
		svcNotify:   svcNotify,
		fmtMsg:      fmtMsg,
		concurrency: concurrency,
		log:         log,
	}
}

func (svc *service) CheckAll(ctx context.Context) {
	if !svc.busy.CompareAndSwap(false, true) {
		svc.log.Warn("poll.CheckAll(): previous tick still running, skipping")
		return
	}
	defer svc.busy.Store(false)
	us, err := svc.storUsers.List(ctx)
	if err != nil {
		svc.log.Error(fmt.Sprintf("poll.CheckAll(): %s", err))
		return
	}
	jobs := make(chan user.User)
	var wg sync.WaitGroup
	for i := 0; i < svc.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range jobs {
				svc.checkUser(ctx, u)
			}
		}()
	}
	for _, u := range us {
		jobs <- u
	}
	close(jobs)
	wg.Wait()
	svc.lastTick.Store(time.Now().UnixNano())
	svc.log.Info(fmt.Sprintf("poll.CheckAll(): done, users=%d", len(us)))
}

func (svc *service) LastTick() (t time.Time) {
	n := svc.lastTick.Load()
	if n > 0 {
		t = time.Unix(0, n)
	}
	return
}

func (svc *service) checkUser(ctx context.Context, u user.User) {
	for _, w := range sortedWatches(u) {
		select {
		case <-ctx.Done():
			return
		default:
		}
		svc.checkWatch(ctx, u.Id, w)
	}
}

func (svc *service) checkWatch(ctx context.Context, userId string, w user.Watch) {
	f, err := svc.svcFetch.Fetch(ctx, w.Url)
	if err != nil {
		// transient failures must not look like a stock-out:
		// the prior snapshot stays authoritative until the next tick
		svc.log.Warn(fmt.Sprintf("poll.checkWatch(%s, %s): %s", userId, w.Url, err))
		return
	}
	evts := diff.Changes(userId, w.Url, &w, f)
	err = svc.svcWatch.Update(ctx, userId, w.Url, f)
	if err != nil {
		// removed mid tick or persistence failure, either way the change is
		// not recorded, so notifying now would repeat on the next tick
		svc.log.Warn(fmt.Sprintf("poll.checkWatch(%s, %s): update: %s", userId, w.Url, err))
		return
	}
	for _, ev := range evts {
		err = svc.svcNotify.Notify(ctx, userId, svc.fmtMsg.Event(ev))
		if err != nil {
			svc.log.Warn(fmt.Sprintf("poll.checkWatch(%s, %s): %s: %s", userId, w.Url, ev.Kind, err))
		}
	}
}

func sortedWatches(u user.User) (ws []user.Watch) {
	var urls []string
	for url := range u.Watches {
		urls = append(urls, url)
	}
	slices.Sort(urls)
	for _, url := range urls {
		ws = append(ws, u.Watches[url])
	}
	return
}

package watch

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/kitaptakip/bot-telegram/model/user"
	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/storage"
)

var ErrNotFound = errors.New("product is not tracked")

// Stats are one user's own tracking counts.
type Stats struct {
	UserName string
	Joined   time.Time
	Total    int
	InStock  int
}

// UserTotals is the per user line of the aggregate admin statistics.
type UserTotals struct {
	Id      string
	Name    string
	Joined  time.Time
	Watches int
}

// Totals are the aggregate statistics over the whole subscriber base.
type Totals struct {
	Users       int
	ActiveUsers int
	Watches     int
	PerUser     []UserTotals
}

// Service is the registry of the (user, product url) watch pairs.
// Every mutation persists the whole user collection before returning.
type Service interface {

	// Register creates the user record when absent. The join time is set once.
	Register(ctx context.Context, userId, userName string) (u user.User, err error)

	// Add inserts or overwrites the watch keyed by url, using the given facts
	// as the new baseline. The user is created when absent.
	Add(ctx context.Context, userId, userName, url string, f fetch.Facts) (w user.Watch, err error)

	// Remove deletes the watch and returns the removed value for the
	// confirmation message. ErrNotFound when the user or url is unknown.
	Remove(ctx context.Context, userId, url string) (w user.Watch, err error)

	// List returns the user's watches sorted by url. Empty when none.
	List(ctx context.Context, userId string) (ws []user.Watch, err error)

	// Update overwrites the stored facts after a successful poll fetch.
	Update(ctx context.Context, userId, url string, f fetch.Facts) (err error)

	Stats(ctx context.Context, userId string) (st Stats, err error)

	Totals(ctx context.Context) (ts Totals, err error)
}

type service struct {
	stor storage.Users
}

func NewService(stor storage.Users) Service {
	return service{
		stor: stor,
	}
}

func (svc service) Register(ctx context.Context, userId, userName string) (u user.User, err error) {
	u, err = svc.stor.Get(ctx, userId)
	if errors.Is(err, storage.ErrNotFound) {
		u = user.User{
			Id:      userId,
			Name:    userName,
			Joined:  time.Now().UTC(),
			Watches: map[string]user.Watch{},
		}
		err = svc.stor.Put(ctx, u)
	}
	return
}

func (svc service) Add(ctx context.Context, userId, userName, url string, f fetch.Facts) (w user.Watch, err error) {
	u, err := svc.Register(ctx, userId, userName)
	if err == nil {
		w = user.Watch{
			Url:     url,
			Title:   f.Title,
			Price:   f.Price,
			InStock: f.InStock,
			Checked: time.Now().UTC(),
		}
		u.Watches[url] = w
		err = svc.stor.Put(ctx, u)
	}
	return
}

func (svc service) Remove(ctx context.Context, userId, url string) (w user.Watch, err error) {
	u, err := svc.stor.Get(ctx, userId)
	if errors.Is(err, storage.ErrNotFound) {
		err = fmt.Errorf("%w: %s", ErrNotFound, url)
		return
	}
	if err == nil {
		var found bool
		w, found = u.Watches[url]
		if !found {
			err = fmt.Errorf("%w: %s", ErrNotFound, url)
			return
		}
		delete(u.Watches, url)
		err = svc.stor.Put(ctx, u)
	}
	return
}

func (svc service) List(ctx context.Context, userId string) (ws []user.Watch, err error) {
	u, err := svc.stor.Get(ctx, userId)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		err = nil
	case err == nil:
		for _, w := range u.Watches {
			ws = append(ws, w)
		}
		slices.SortFunc(ws, func(a, b user.Watch) int {
			switch {
			case a.Url < b.Url:
				return -1
			case a.Url > b.Url:
				return 1
			}
			return 0
		})
	}
	return
}

func (svc service) Update(ctx context.Context, userId, url string, f fetch.Facts) (err error) {
	u, err := svc.stor.Get(ctx, userId)
	if errors.Is(err, storage.ErrNotFound) {
		err = fmt.Errorf("%w: %s", ErrNotFound, url)
		return
	}
	if err == nil {
		w, found := u.Watches[url]
		if !found {
			// removed while the poll cycle was in flight
			err = fmt.Errorf("%w: %s", ErrNotFound, url)
			return
		}
		w.Title = f.Title
		w.Price = f.Price
		w.InStock = f.InStock
		w.Checked = time.Now().UTC()
		u.Watches[url] = w
		err = svc.stor.Put(ctx, u)
	}
	return
}

func (svc service) Stats(ctx context.Context, userId string) (st Stats, err error) {
	u, err := svc.stor.Get(ctx, userId)
	if err == nil {
		st.UserName = u.Name
		st.Joined = u.Joined
		st.Total = len(u.Watches)
		for _, w := range u.Watches {
			if w.InStock {
				st.InStock++
			}
		}
	}
	return
}

func (svc service) Totals(ctx context.Context) (ts Totals, err error) {
	us, err := svc.stor.List(ctx)
	if err == nil {
		ts.Users = len(us)
		for _, u := range us {
			ts.Watches += len(u.Watches)
			if len(u.Watches) > 0 {
				ts.ActiveUsers++
			}
			ts.PerUser = append(ts.PerUser, UserTotals{
				Id:      u.Id,
				Name:    u.Name,
				Joined:  u.Joined,
				Watches: len(u.Watches),
			})
		}
	}
	return
}

package storage

import (
	"context"
	"errors"

	"github.com/kitaptakip/bot-telegram/model/user"
)

var ErrNotFound = errors.New("record not found")
var ErrProtected = errors.New("record is protected")
var ErrVersion = errors.New("unsupported storage schema version")
var ErrInternal = errors.New("internal storage failure")

// Users is the durable owner of user records together with their nested watches.
// Implementations keep one authoritative in-memory copy and persist the whole
// collection synchronously on every mutation.
type Users interface {
	Get(ctx context.Context, id string) (u user.User, err error)
	Put(ctx context.Context, u user.User) (err error)
	List(ctx context.Context) (us []user.User, err error)
}

// Admins is the durable admin set. The super admin id given at open time is
// always a member: injected on load, never removable.
type Admins interface {
	List(ctx context.Context) (ids []string, err error)
	Contains(ctx context.Context, id string) (member bool, err error)
	Add(ctx context.Context, id string) (err error)
	Remove(ctx context.Context, id string) (err error)
}

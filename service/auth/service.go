package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitaptakip/bot-telegram/model/user"
	"github.com/kitaptakip/bot-telegram/storage"
)

type Tier int

const (
	TierUser Tier = iota
	TierAdmin
	TierSuperAdmin
)

func (t Tier) String() string {
	return [...]string{
		"TierUser",
		"TierAdmin",
		"TierSuperAdmin",
	}[t]
}

var ErrForbidden = errors.New("caller lacks the required tier")
var ErrAlreadyAdmin = errors.New("target is an admin already")
var ErrNotAdmin = errors.New("target is not an admin")
var ErrProtected = errors.New("super admin can not be removed")

// Service classifies callers and owns the admin set mutation rules.
// The tier is evaluated fresh on every call, there is no session state.
type Service interface {
	Classify(ctx context.Context, callerId string) (t Tier, err error)

	// Promote appends the target to the admin set. Super admin only.
	Promote(ctx context.Context, callerId, targetId string) (err error)

	// Demote removes the target from the admin set. Super admin only,
	// the super admin itself is never removable.
	Demote(ctx context.Context, callerId, targetId string) (err error)

	// Block excludes the target user from broadcasts. Admin tier and above.
	Block(ctx context.Context, callerId, targetId string) (name string, err error)

	Unblock(ctx context.Context, callerId, targetId string) (name string, err error)

	// Admins lists the admin set. Admin tier and above.
	Admins(ctx context.Context, callerId string) (ids []string, err error)
}

type service struct {
	storAdmins storage.Admins
	storUsers  storage.Users
	superId    string
}

func NewService(storAdmins storage.Admins, storUsers storage.Users, superId string) Service {
	return service{
		storAdmins: storAdmins,
		storUsers:  storUsers,
		superId:    superId,
	}
}

func (svc service) Classify(ctx context.Context, callerId string) (t Tier, err error) {
	switch callerId {
	case svc.superId:
		t = TierSuperAdmin
	default:
		var member bool
		member, err = svc.storAdmins.Contains(ctx, callerId)
		if err == nil && member {
			t = TierAdmin
		}
	}
	return
}

func (svc service) Promote(ctx context.Context, callerId, targetId string) (err error) {
	t, err := svc.Classify(ctx, callerId)
	if err == nil && t != TierSuperAdmin {
		err = fmt.Errorf("%w: %s is %s", ErrForbidden, callerId, t)
	}
	var member bool
	if err == nil {
		member, err = svc.storAdmins.Contains(ctx, targetId)
	}
	if err == nil && member {
		err = fmt.Errorf("%w: %s", ErrAlreadyAdmin, targetId)
	}
	if err == nil {
		err = svc.storAdmins.Add(ctx, targetId)
	}
	return
}

func (svc service) Demote(ctx context.Context, callerId, targetId string) (err error) {
	// protected target check comes first: removing the super admin is
	// refused regardless of who asks, including the super admin itself
	if targetId == svc.superId {
		err = fmt.Errorf("%w: %s", ErrProtected, targetId)
		return
	}
	t, err := svc.Classify(ctx, callerId)
	if err == nil && t != TierSuperAdmin {
		err = fmt.Errorf("%w: %s is %s", ErrForbidden, callerId, t)
	}
	if err == nil {
		err = svc.storAdmins.Remove(ctx, targetId)
		if errors.Is(err, storage.ErrNotFound) {
			err = fmt.Errorf("%w: %s", ErrNotAdmin, targetId)
		}
	}
	return
}

func (svc service) Block(ctx context.Context, callerId, targetId string) (name string, err error) {
	name, err = svc.setBlocked(ctx, callerId, targetId, true)
	return
}

func (svc service) Unblock(ctx context.Context, callerId, targetId string) (name string, err error) {
	name, err = svc.setBlocked(ctx, callerId, targetId, false)
	return
}

func (svc service) setBlocked(ctx context.Context, callerId, targetId string, blocked bool) (name string, err error) {
	t, err := svc.Classify(ctx, callerId)
	if err == nil && t == TierUser {
		err = fmt.Errorf("%w: %s is %s", ErrForbidden, callerId, t)
	}
	if err == nil {
		var target user.User
		target, err = svc.storUsers.Get(ctx, targetId)
		if err == nil {
			name = target.Name
			target.Blocked = blocked
			err = svc.storUsers.Put(ctx, target)
		}
	}
	return
}

func (svc service) Admins(ctx context.Context, callerId string) (ids []string, err error) {
	t, err := svc.Classify(ctx, callerId)
	if err == nil && t == TierUser {
		err = fmt.Errorf("%w: %s is %s", ErrForbidden, callerId, t)
	}
	if err == nil {
		ids, err = svc.storAdmins.List(ctx)
	}
	return
}

package notify

import (
	"context"
	"strings"
	"sync"
)

type serviceMock struct {
	mx   *sync.Mutex
	sent *[]string
}

// NewServiceMock records every delivered text as "<userId>:<txt>" in sent.
// Deliveries to user ids containing "fail" fail.
func NewServiceMock(sent *[]string) Service {
	return serviceMock{
		mx:   &sync.Mutex{},
		sent: sent,
	}
}

func (sm serviceMock) Notify(ctx context.Context, userId, txt string) (err error) {
	if strings.Contains(userId, "fail") {
		err = ErrDelivery
		return
	}
	sm.mx.Lock()
	defer sm.mx.Unlock()
	*sm.sent = append(*sm.sent, userId+":"+txt)
	return
}

func (sm serviceMock) Broadcast(ctx context.Context, userIds []string, txt string) (delivered int) {
	for _, userId := range userIds {
		if sm.Notify(ctx, userId, txt) == nil {
			delivered++
		}
	}
	return
}

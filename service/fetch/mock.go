package fetch

import (
	"context"
	"strings"
)

type serviceMock struct {
	facts map[string]Facts
}

func NewServiceMock(facts map[string]Facts) Service {
	return serviceMock{
		facts: facts,
	}
}

func (sm serviceMock) Fetch(ctx context.Context, url string) (f Facts, err error) {
	if strings.Contains(url, "fail") {
		err = ErrFetch
		return
	}
	f, found := sm.facts[url]
	if !found {
		err = ErrFetch
	}
	return
}

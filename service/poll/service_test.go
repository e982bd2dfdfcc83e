package poll

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/service/notify"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const urlCheap = "https://www.kitapyurdu.com/kitap/cheap/1"
const urlGone = "https://www.kitapyurdu.com/kitap/fail/2"

func newFixture(t *testing.T, facts map[string]fetch.Facts) (svc Service, svcWatch watch.Service, sent *[]string) {
	t.Helper()
	storUsers, err := storage.NewUsers(filepath.Join(t.TempDir(), "users.json"))
	require.Nil(t, err)
	svcWatch = watch.NewService(storUsers)
	sent = &[]string{}
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc = NewService(
		storUsers,
		fetch.NewServiceMock(facts),
		svcWatch,
		notify.NewServiceMock(sent),
		notify.Format{
			HtmlPolicy: bluemonday.StrictPolicy(),
		},
		2,
		log,
	)
	return
}

func TestCheckAllNotifiesOnChanges(t *testing.T) {
	svc, svcWatch, sent := newFixture(t, map[string]fetch.Facts{
		urlCheap: {
			Title:   "Şu Çılgın Türkler",
			Price:   "99",
			InStock: false,
		},
	})
	_, err := svcWatch.Add(context.TODO(), "5", "ali", urlCheap, fetch.Facts{
		Title:   "Şu Çılgın Türkler",
		Price:   "120",
		InStock: true,
	})
	require.Nil(t, err)
	//
	svc.CheckAll(context.TODO())
	//
	require.Len(t, *sent, 2)
	// price change is delivered before the stock change
	assert.Contains(t, (*sent)[0], "Fiyat değişikliği")
	assert.Contains(t, (*sent)[0], "Eski fiyat: 120 TL")
	assert.Contains(t, (*sent)[0], "Yeni fiyat: 99 TL")
	assert.Contains(t, (*sent)[1], "Stok durumu değişti")
	// the stored snapshot advanced
	ws, err := svcWatch.List(context.TODO(), "5")
	require.Nil(t, err)
	assert.Equal(t, "99", ws[0].Price)
	assert.False(t, ws[0].InStock)
	assert.False(t, svc.LastTick().IsZero())
}

func TestCheckAllBaselineSilent(t *testing.T) {
	svc, svcWatch, sent := newFixture(t, map[string]fetch.Facts{
		urlCheap: {
			Title:   "Şu Çılgın Türkler",
			Price:   "120",
			InStock: true,
		},
	})
	_, err := svcWatch.Add(context.TODO(), "5", "ali", urlCheap, fetch.Facts{
		Title:   "Şu Çılgın Türkler",
		Price:   "120",
		InStock: true,
	})
	require.Nil(t, err)
	svc.CheckAll(context.TODO())
	assert.Empty(t, *sent)
}

func TestCheckAllFetchFailurePreservesState(t *testing.T) {
	svc, svcWatch, sent := newFixture(t, map[string]fetch.Facts{})
	w0, err := svcWatch.Add(context.TODO(), "5", "ali", urlGone, fetch.Facts{
		Title:   "Devlet Ana",
		Price:   "120",
		InStock: true,
	})
	require.Nil(t, err)
	//
	svc.CheckAll(context.TODO())
	//
	assert.Empty(t, *sent)
	ws, err := svcWatch.List(context.TODO(), "5")
	require.Nil(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, w0, ws[0])
}

func TestCheckAllIsolatesWatchFailures(t *testing.T) {
	svc, svcWatch, sent := newFixture(t, map[string]fetch.Facts{
		urlCheap: {
			Title:   "Şu Çılgın Türkler",
			Price:   "99",
			InStock: true,
		},
	})
	_, err := svcWatch.Add(context.TODO(), "5", "ali", urlGone, fetch.Facts{
		Title:   "Devlet Ana",
		Price:   "80",
		InStock: true,
	})
	require.Nil(t, err)
	_, err = svcWatch.Add(context.TODO(), "5", "ali", urlCheap, fetch.Facts{
		Title:   "Şu Çılgın Türkler",
		Price:   "120",
		InStock: true,
	})
	require.Nil(t, err)
	//
	svc.CheckAll(context.TODO())
	// the failing watch does not stop the remaining ones
	require.Len(t, *sent, 1)
	assert.Contains(t, (*sent)[0], "Yeni fiyat: 99 TL")
}

type fetchBlockingMock struct {
	started chan struct{}
	release chan struct{}
}

func (f fetchBlockingMock) Fetch(ctx context.Context, url string) (facts fetch.Facts, err error) {
	f.started <- struct{}{}
	<-f.release
	facts = fetch.Facts{
		Title:   "Şu Çılgın Türkler",
		Price:   "120",
		InStock: true,
	}
	return
}

func TestCheckAllSkipsOverlappingTick(t *testing.T) {
	storUsers, err := storage.NewUsers(filepath.Join(t.TempDir(), "users.json"))
	require.Nil(t, err)
	svcWatch := watch.NewService(storUsers)
	sent := &[]string{}
	svcFetch := fetchBlockingMock{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewService(
		storUsers,
		svcFetch,
		svcWatch,
		notify.NewServiceMock(sent),
		notify.Format{
			HtmlPolicy: bluemonday.StrictPolicy(),
		},
		2,
		log,
	)
	_, err = svcWatch.Add(context.TODO(), "5", "ali", urlCheap, fetch.Facts{
		Title:   "Şu Çılgın Türkler",
		Price:   "120",
		InStock: true,
	})
	require.Nil(t, err)
	//
	done := make(chan struct{})
	go func() {
		svc.CheckAll(context.TODO())
		close(done)
	}()
	<-svcFetch.started
	// the first tick is still fetching, this call returns without doing work
	svc.CheckAll(context.TODO())
	assert.True(t, svc.LastTick().IsZero())
	//
	close(svcFetch.release)
	<-done
	assert.False(t, svc.LastTick().IsZero())
	assert.Empty(t, *sent)
}

func TestCheckAllManyUsers(t *testing.T) {
	facts := map[string]fetch.Facts{
		urlCheap: {
			Title:   "Şu Çılgın Türkler",
			Price:   "99",
			InStock: true,
		},
	}
	svc, svcWatch, sent := newFixture(t, facts)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		_, err := svcWatch.Add(context.TODO(), id, "u"+id, urlCheap, fetch.Facts{
			Title:   "Şu Çılgın Türkler",
			Price:   "120",
			InStock: true,
		})
		require.Nil(t, err)
	}
	svc.CheckAll(context.TODO())
	assert.Len(t, *sent, 5)
	assert.True(t, time.Since(svc.LastTick()) < time.Minute)
}

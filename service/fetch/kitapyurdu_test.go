package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageInStock = `<html><body>
<h1 class="pr_header__heading">
	Tutunamayanlar
</h1>
<div class="price__item">
	185,90
	TL
</div>
<div class="product-info__stock-status">Stokta var</div>
</body></html>`

const pageNoStock = `<html><body>
<h1 class="pr_header__heading">Tutunamayanlar</h1>
<div class="price__item">185,90 TL</div>
<div class="product-info__stock-status">Temin edilemiyor</div>
</body></html>`

const pageNoPrice = `<html><body>
<h1 class="pr_header__heading">Tutunamayanlar</h1>
</body></html>`

const pageNoTitle = `<html><body><div class="price__item">1 TL</div></body></html>`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchInStock(t *testing.T) {
	srv := serve(t, http.StatusOK, pageInStock)
	svc := NewService(srv.Client(), 5*time.Second)
	f, err := svc.Fetch(context.TODO(), srv.URL)
	require.Nil(t, err)
	assert.Equal(t, "Tutunamayanlar", f.Title)
	assert.Equal(t, "185,90", f.Price)
	assert.True(t, f.InStock)
}

func TestFetchOutOfStock(t *testing.T) {
	srv := serve(t, http.StatusOK, pageNoStock)
	svc := NewService(srv.Client(), 5*time.Second)
	f, err := svc.Fetch(context.TODO(), srv.URL)
	require.Nil(t, err)
	assert.False(t, f.InStock)
}

func TestFetchNoStockNodeMeansOutOfStock(t *testing.T) {
	srv := serve(t, http.StatusOK, pageNoPrice)
	svc := NewService(srv.Client(), 5*time.Second)
	f, err := svc.Fetch(context.TODO(), srv.URL)
	require.Nil(t, err)
	assert.False(t, f.InStock)
}

func TestFetchNoPrice(t *testing.T) {
	srv := serve(t, http.StatusOK, pageNoPrice)
	svc := NewService(srv.Client(), 5*time.Second)
	f, err := svc.Fetch(context.TODO(), srv.URL)
	require.Nil(t, err)
	assert.Equal(t, PriceUnknown, f.Price)
}

func TestFetchNoTitle(t *testing.T) {
	srv := serve(t, http.StatusOK, pageNoTitle)
	svc := NewService(srv.Client(), 5*time.Second)
	_, err := svc.Fetch(context.TODO(), srv.URL)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestFetchNotFoundNoRetry(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	svc := NewService(srv.Client(), 5*time.Second)
	_, err := svc.Fetch(context.TODO(), srv.URL)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, 1, hits)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	svc := NewService(srv.Client(), 50*time.Millisecond)
	start := time.Now()
	_, err := svc.Fetch(context.TODO(), srv.URL)
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrFetch) || errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFetchServerErrorRetries(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(pageInStock))
	}))
	t.Cleanup(srv.Close)
	svc := NewService(srv.Client(), 5*time.Second)
	f, err := svc.Fetch(context.TODO(), srv.URL)
	require.Nil(t, err)
	assert.Equal(t, "Tutunamayanlar", f.Title)
	assert.Equal(t, 2, hits)
}

package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
)

type svcKitapyurdu struct {
	clientHttp *http.Client
	timeout    time.Duration
}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const selTitle = "h1.pr_header__heading"
const selPrice = "div.price__item"
const selStock = "div.product-info__stock-status"
const labelNoStock = "Temin edilemiyor"

const backOffInit = 100 * time.Millisecond
const retryCountMax = 2

// NewService returns the kitapyurdu.com page scraping fact source.
// Every fetch is bounded by the given timeout, transient transport failures
// are retried with a short backoff within that bound. The next poll cycle
// remains the long term retry.
func NewService(clientHttp *http.Client, timeout time.Duration) Service {
	return svcKitapyurdu{
		clientHttp: clientHttp,
		timeout:    timeout,
	}
}

func (sv svcKitapyurdu) Fetch(ctx context.Context, url string) (f Facts, err error) {
	ctx, cancel := context.WithTimeout(ctx, sv.timeout)
	defer cancel()
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = backOffInit
	err = backoff.Retry(
		func() (errOnce error) {
			f, errOnce = sv.fetchOnce(ctx, url)
			return
		},
		backoff.WithContext(backoff.WithMaxRetries(b, retryCountMax), ctx),
	)
	return
}

func (sv svcKitapyurdu) fetchOnce(ctx context.Context, url string) (f Facts, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = backoff.Permanent(fmt.Errorf("%w: %s", ErrFetch, err))
		return
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := sv.clientHttp.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrFetch, err)
		return
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode >= 500:
		err = fmt.Errorf("%w: status %d for %s", ErrFetch, resp.StatusCode, url)
		return
	case resp.StatusCode != http.StatusOK:
		err = backoff.Permanent(fmt.Errorf("%w: status %d for %s", ErrFetch, resp.StatusCode, url))
		return
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrFetch, err)
		return
	}
	title := strings.TrimSpace(doc.Find(selTitle).First().Text())
	if title == "" {
		err = backoff.Permanent(fmt.Errorf("%w: no product title in %s", ErrFetch, url))
		return
	}
	f.Title = title
	f.Price = cleanPrice(doc.Find(selPrice).First())
	stock := doc.Find(selStock)
	f.InStock = stock.Length() > 0 && !strings.Contains(stock.Text(), labelNoStock)
	return
}

func cleanPrice(sel *goquery.Selection) (price string) {
	if sel.Length() == 0 {
		price = PriceUnknown
		return
	}
	price = strings.TrimSpace(sel.Text())
	price = strings.ReplaceAll(price, "\n", "")
	price = strings.TrimSpace(strings.ReplaceAll(price, "TL", ""))
	return
}

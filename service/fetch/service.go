package fetch

import (
	"context"
	"errors"
)

// Facts are the observable facts of one product page at fetch time.
type Facts struct {
	Title   string
	Price   string
	InStock bool
}

// PriceUnknown is stored when the page carries no price element.
const PriceUnknown = "Fiyat bulunamadı"

type Service interface {

	// Fetch resolves the product page url to its current Facts.
	// A failure leaves the caller's prior snapshot authoritative.
	Fetch(ctx context.Context, url string) (f Facts, err error)
}

var ErrFetch = errors.New("failed to fetch the product page")

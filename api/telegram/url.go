package telegram

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrUrl = errors.New("not a supported catalog link")

// ValidateUrl checks that the raw link is an http(s) url on the supported
// catalog host or one of its subdomains.
func ValidateUrl(host, raw string) (err error) {
	u, err := url.Parse(raw)
	switch {
	case err != nil:
		err = fmt.Errorf("%w: %s", ErrUrl, err)
	case u.Scheme != "http" && u.Scheme != "https":
		err = fmt.Errorf("%w: scheme %q", ErrUrl, u.Scheme)
	case u.Hostname() != host && !strings.HasSuffix(u.Hostname(), "."+host):
		err = fmt.Errorf("%w: host %q", ErrUrl, u.Hostname())
	}
	return
}

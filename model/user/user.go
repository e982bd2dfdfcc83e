package user

import "time"

type User struct {

	// Id is the Telegram sender id in decimal form, assigned by the transport.
	Id string `json:"id"`

	// Name is the best effort display name, may be the anonymous placeholder.
	Name string `json:"name"`

	// Joined is set once when the user record is created.
	Joined time.Time `json:"joined"`

	// Blocked users are excluded from nothing yet, the flag is kept for the admin surface.
	Blocked bool `json:"blocked,omitempty"`

	// Watches are keyed by the canonical product page url.
	Watches map[string]Watch `json:"watches"`
}

type Watch struct {
	Url     string    `json:"url"`
	Title   string    `json:"title"`
	Price   string    `json:"price"`
	InStock bool      `json:"inStock"`
	Checked time.Time `json:"checked"`
}

package notify

import (
	"context"
	"errors"
)

var ErrDelivery = errors.New("failed to deliver the message")

// Service delivers texts to users over the chat transport.
type Service interface {

	// Notify performs a single send attempt.
	Notify(ctx context.Context, userId, txt string) (err error)

	// Broadcast sends the text to every given user. A failed delivery never
	// aborts the remaining sends, the count of successful ones is returned
	// for the operator feedback.
	Broadcast(ctx context.Context, userIds []string, txt string) (delivered int)
}

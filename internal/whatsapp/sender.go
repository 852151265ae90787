package whatsapp

import "context"

// Sender is the minimal delivery capability the dispatcher depends on.
// It is deliberately small so the runner and its tests never need the
// concrete Cloud API client.
type Sender interface {
	// SendText delivers one text message and returns the API message ID.
	SendText(ctx context.Context, recipient, text string) (string, error)
}

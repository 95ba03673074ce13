// Package notify provides the outbound email capability used for
// adoption and approval notifications.
package notify

import "context"

// Message is a single outbound email with both plain-text and HTML bodies.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Notifier sends notification emails. Implementations must be safe for
// concurrent use. Callers treat delivery as best-effort: a failed send
// never rolls back the state change that triggered it.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

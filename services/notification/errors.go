package notification

import "errors"

var (
	// ErrMissingRecipient signals that a payment carries no resolvable
	// recipient email. Non-retryable: redelivery cannot fix it.
	ErrMissingRecipient = errors.New("no recipient email for payment confirmation")

	// ErrTransport signals that the email transport rejected the send.
	// The task queue's redelivery is the only retry applied.
	ErrTransport = errors.New("email transport failure")
)

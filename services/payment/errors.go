package payment

import "errors"

var (
	// ErrGatewayUnavailable signals a network-level failure reaching the
	// gateway (timeout, connection refused). Not retried here; the caller
	// must resubmit.
	ErrGatewayUnavailable = errors.New("payment gateway unreachable")

	// ErrGatewayProtocol signals a malformed or unexpected gateway
	// response shape.
	ErrGatewayProtocol = errors.New("unexpected payment gateway response")

	// ErrGatewayDeclined signals that the gateway itself reported failure
	// for the initiation. No Payment record is created.
	ErrGatewayDeclined = errors.New("payment gateway declined the transaction")

	// ErrAlreadyTerminal guards re-verification of a payment that has
	// already reached Completed or Failed.
	ErrAlreadyTerminal = errors.New("payment already in a terminal state")
)

package paymentRepo

import (
	"errors"

	"voyago/models"
)

// ErrNotFound is returned when no payment matches the given id or
// transaction reference.
var ErrNotFound = errors.New("payment not found")

// PaymentRepository abstracts persistence for payments. Status transitions
// are conditional updates so two concurrent verifications of the same
// transaction cannot both move the record out of Pending.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByTransactionID(txRef string) (*models.Payment, error)

	// CompleteIfPending transitions Pending -> Completed and reports
	// whether this call performed the transition.
	CompleteIfPending(txRef string) (bool, error)

	// FailIfPending transitions Pending -> Failed and reports whether this
	// call performed the transition.
	FailIfPending(txRef string) (bool, error)

	// MarkConfirmationSent flips the confirmation-sent marker and reports
	// whether this call performed the flip.
	MarkConfirmationSent(id string) (bool, error)
}

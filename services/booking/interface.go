package booking

import (
	"context"

	"solarcare/models"
)

// Ledger receives every booking before it becomes visible in the store.
// A Ledger error aborts the booking.
type Ledger interface {
	Save(ctx context.Context, record models.BookingRecord) error
}

// History returns a user's previously recorded bookings, most recent first.
// Ledgers that also implement History let a new workspace start with the
// user's order history.
type History interface {
	GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error)
}

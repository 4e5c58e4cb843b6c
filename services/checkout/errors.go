package checkout

import (
	"errors"

	"solarcare/models"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingSchedule      = errors.New("schedule not selected")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// RejectionError reports a user-correctable checkout rejection.
type RejectionError struct {
	Outcome string
	Message string
	cause   error
}

func (e *RejectionError) Error() string {
	return e.Outcome + ": " + e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.cause
}

func rejectEmptyCart() *RejectionError {
	return &RejectionError{
		Outcome: models.OutcomeEmptyCart,
		Message: "Your cart is empty",
		cause:   ErrEmptyCart,
	}
}

func rejectMissingSchedule() *RejectionError {
	return &RejectionError{
		Outcome: models.OutcomeMissingSchedule,
		Message: "Please select a date and time slot",
		cause:   ErrMissingSchedule,
	}
}

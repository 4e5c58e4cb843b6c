// File: solarcare/models/confirmation.go
package models

// PlaceOrderRequest carries the schedule and payment choice for checkout.
type PlaceOrderRequest struct {
	ScheduledDate string        `json:"scheduledDate"`
	ScheduledTime string        `json:"scheduledTime"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// Checkout outcomes.
const (
	OutcomeSuccess         = "Success"
	OutcomeEmptyCart       = "EmptyCart"
	OutcomeMissingSchedule = "MissingSchedule"
)

// PlaceOrderResult is the signal returned from an order placement.
type PlaceOrderResult struct {
	Outcome   string         `json:"outcome"`
	Message   string         `json:"message"`
	BookingID string         `json:"bookingId,omitempty"`
	Booking   *BookingRecord `json:"booking,omitempty"`
}

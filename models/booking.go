package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentMethod string

const (
	PayOnVisit PaymentMethod = "Pay on Visit"
	PayUPI     PaymentMethod = "UPI"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	return m == PayOnVisit || m == PayUPI
}

// BookingRecord represents a confirmed order.
type BookingRecord struct {
	ID            string         `bson:"id" json:"id"`                                           // ORD-<unix millis>
	Items         []CartLineItem `bson:"items" json:"items"`                                     // Cart snapshot at confirmation
	Offers        []AppliedOffer `bson:"offers,omitempty" json:"offers,omitempty"`               // Offers applied at confirmation
	TotalPrice    float64        `bson:"totalPrice" json:"totalPrice"`                           // Σ price * quantity
	Date          string         `bson:"date" json:"date"`                                       // Human-readable creation date
	Status        BookingStatus  `bson:"status" json:"status"`
	PaymentMethod PaymentMethod  `bson:"paymentMethod" json:"paymentMethod"`
	ScheduledDate string         `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"` // Appointment date
	ScheduledTime string         `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"` // Appointment slot, e.g. "10:00 AM"
	UserID        string         `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}

// BookingSnapshot is the input to booking creation.
type BookingSnapshot struct {
	UserID        string
	Items         []CartLineItem
	Offers        []AppliedOffer
	TotalPrice    float64
	PaymentMethod PaymentMethod
	ScheduledDate string
	ScheduledTime string
}

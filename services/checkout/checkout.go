package checkout

import (
	"context"
	"fmt"
	"strings"

	"solarcare/models"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle       State = "Idle"
	StateValidating State = "Validating"
	StateRejected   State = "Rejected"
	StateReady      State = "Ready"
	StateSubmitting State = "Submitting"
	StateCompleted  State = "Completed"
)

// Cart is the part of the cart store checkout reads and clears.
type Cart interface {
	Len() int
	Snapshot() models.CartSnapshot
	Clear()
}

// Bookings materializes a snapshot as a booking record.
type Bookings interface {
	CreateBooking(ctx context.Context, snap models.BookingSnapshot) (*models.BookingRecord, error)
}

// Service drives one user's cart through validation into a booking.
type Service struct {
	Cart     Cart
	Bookings Bookings
	UserID   string
	Logger   *zap.Logger

	// OnTransition, when set, observes every state change.
	OnTransition func(from, to State)

	state State
}

func NewService(cart Cart, bookings Bookings, userID string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Cart:     cart,
		Bookings: bookings,
		UserID:   userID,
		Logger:   logger,
		state:    StateIdle,
	}
}

// State returns the current state, or the terminal state of the last attempt.
func (s *Service) State() State {
	if s.state == "" {
		return StateIdle
	}
	return s.state
}

// PlaceOrder validates the cart and schedule and, when both are present,
// books a snapshot of the cart and clears it. Rejections are returned as
// *RejectionError and leave every store untouched.
func (s *Service) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResult, error) {
	if s.State() != StateIdle {
		s.transition(StateIdle)
	}
	s.transition(StateValidating)

	if s.Cart.Len() == 0 {
		return nil, s.reject(rejectEmptyCart())
	}
	if strings.TrimSpace(req.ScheduledDate) == "" || strings.TrimSpace(req.ScheduledTime) == "" {
		return nil, s.reject(rejectMissingSchedule())
	}

	method := req.PaymentMethod
	if method == "" {
		method = models.PayOnVisit
	}
	if !method.Valid() {
		s.transition(StateIdle)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	s.transition(StateReady)
	s.transition(StateSubmitting)

	cartSnap := s.Cart.Snapshot()
	rec, err := s.Bookings.CreateBooking(ctx, models.BookingSnapshot{
		UserID:        s.UserID,
		Items:         cartSnap.Items,
		Offers:        cartSnap.Offers,
		TotalPrice:    cartSnap.TotalPrice,
		PaymentMethod: method,
		ScheduledDate: strings.TrimSpace(req.ScheduledDate),
		ScheduledTime: strings.TrimSpace(req.ScheduledTime),
	})
	if err != nil {
		s.transition(StateIdle)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Only clear once the booking exists.
	s.Cart.Clear()
	s.transition(StateCompleted)

	return &models.PlaceOrderResult{
		Outcome:   models.OutcomeSuccess,
		Message:   "Booking confirmed",
		BookingID: rec.ID,
		Booking:   rec,
	}, nil
}

func (s *Service) reject(rej *RejectionError) error {
	s.transition(StateRejected)
	s.Logger.Info("checkout rejected", zap.String("userID", s.UserID), zap.String("outcome", rej.Outcome))
	s.transition(StateIdle)
	return rej
}

func (s *Service) transition(to State) {
	from := s.State()
	s.state = to
	if s.OnTransition != nil {
		s.OnTransition(from, to)
	}
}

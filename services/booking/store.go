package booking

import (
	"context"
	"fmt"
	"time"

	"solarcare/models"

	"go.uber.org/zap"
)

// DisplayDateLayout is the human-readable booking date format.
const DisplayDateLayout = "Jan 2, 2006"

// Store is an append-only, most-recent-first list of bookings.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	Ledger Ledger
	IDs    *IDGenerator
	Now    func() time.Time
	Logger *zap.Logger

	records []models.BookingRecord
}

func NewStore(ledger Ledger, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		Ledger: ledger,
		IDs:    defaultIDs,
		Now:    time.Now,
		Logger: logger,
	}
}

// CreateBooking materializes snap as a Confirmed booking and puts it at the
// front of the list. Items and offers are copied, so the caller may reuse
// its slices afterwards.
func (s *Store) CreateBooking(ctx context.Context, snap models.BookingSnapshot) (*models.BookingRecord, error) {
	now := s.Now()
	rec := models.BookingRecord{
		ID:            s.IDs.Next(),
		Items:         append([]models.CartLineItem(nil), snap.Items...),
		TotalPrice:    snap.TotalPrice,
		Date:          now.Format(DisplayDateLayout),
		Status:        models.BookingConfirmed,
		PaymentMethod: snap.PaymentMethod,
		ScheduledDate: snap.ScheduledDate,
		ScheduledTime: snap.ScheduledTime,
		UserID:        snap.UserID,
		CreatedAt:     now,
	}
	if len(snap.Offers) > 0 {
		rec.Offers = append([]models.AppliedOffer(nil), snap.Offers...)
	}

	if s.Ledger != nil {
		if err := s.Ledger.Save(ctx, rec); err != nil {
			s.Logger.Error("CreateBooking: ledger write failed", zap.String("bookingID", rec.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to record booking %s: %w", rec.ID, err)
		}
	}

	s.records = append([]models.BookingRecord{rec}, s.records...)
	s.Logger.Info("booking created",
		zap.String("bookingID", rec.ID),
		zap.String("userID", rec.UserID),
		zap.Float64("totalPrice", rec.TotalPrice),
		zap.Int("items", len(rec.Items)),
	)

	out := copyRecord(rec)
	return &out, nil
}

// Bookings returns copies of all bookings, most recent first.
func (s *Store) Bookings() []models.BookingRecord {
	out := make([]models.BookingRecord, len(s.records))
	for i, r := range s.records {
		out[i] = copyRecord(r)
	}
	return out
}

func (s *Store) Get(id string) (*models.BookingRecord, error) {
	for _, r := range s.records {
		if r.ID == id {
			out := copyRecord(r)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
}

// Restore replaces the list with previously recorded bookings, which must be
// ordered most recent first. The ID generator is advanced past every restored
// ID so new bookings never reuse one.
func (s *Store) Restore(records []models.BookingRecord) {
	s.records = make([]models.BookingRecord, len(records))
	for i, r := range records {
		s.records[i] = copyRecord(r)
		s.IDs.Observe(r.ID)
	}
}

func (s *Store) Len() int {
	return len(s.records)
}

func copyRecord(r models.BookingRecord) models.BookingRecord {
	r.Items = append([]models.CartLineItem(nil), r.Items...)
	if r.Offers != nil {
		r.Offers = append([]models.AppliedOffer(nil), r.Offers...)
	}
	return r
}

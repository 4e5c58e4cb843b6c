package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"solarcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	saved []models.BookingRecord
	err   error
}

func (f *fakeLedger) Save(_ context.Context, rec models.BookingRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, rec)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(ledger Ledger, now time.Time) *Store {
	s := NewStore(ledger, nil)
	s.Now = fixedClock(now)
	s.IDs = NewIDGenerator(fixedClock(now))
	return s
}

func sampleSnapshot() models.BookingSnapshot {
	return models.BookingSnapshot{
		UserID: "u1",
		Items: []models.CartLineItem{
			{ID: "a", Title: "Basic Clean", Price: 500, Quantity: 2},
			{ID: "b", Title: "Inspection", Price: 300, Quantity: 1},
		},
		TotalPrice:    1300,
		PaymentMethod: models.PayOnVisit,
		ScheduledDate: "2026-10-20",
		ScheduledTime: "10:00 AM",
	}
}

func TestIDGenerator_SameMillisecondStaysUnique(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewIDGenerator(fixedClock(now))

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := g.Next()
		require.True(t, strings.HasPrefix(id, "ORD-"))
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, "ORD-1700000000000", NewIDGenerator(fixedClock(now)).Next())
}

func TestIDGenerator_ClockGoingBackwards(t *testing.T) {
	cur := time.UnixMilli(2_000)
	g := NewIDGenerator(func() time.Time { return cur })

	first := g.Next()
	cur = time.UnixMilli(1_000)
	second := g.Next()

	assert.Equal(t, "ORD-2000", first)
	assert.Equal(t, "ORD-2001", second)
}

func TestCreateBooking(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	s := newTestStore(nil, now)

	rec, err := s.CreateBooking(context.Background(), sampleSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "ORD-"+strconv.FormatInt(now.UnixMilli(), 10), rec.ID)
	assert.Equal(t, models.BookingConfirmed, rec.Status)
	assert.Equal(t, 1300.0, rec.TotalPrice)
	assert.Equal(t, "Oct 15, 2026", rec.Date)
	assert.Equal(t, models.PayOnVisit, rec.PaymentMethod)
	assert.Equal(t, "10:00 AM", rec.ScheduledTime)
	assert.Len(t, rec.Items, 2)
	assert.Equal(t, 1, s.Len())
}

func TestCreateBooking_MostRecentFirst(t *testing.T) {
	s := newTestStore(nil, time.Now())

	first, err := s.CreateBooking(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	second, err := s.CreateBooking(context.Background(), sampleSnapshot())
	require.NoError(t, err)

	list := s.Bookings()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateBooking_CopiesInput(t *testing.T) {
	s := newTestStore(nil, time.Now())
	snap := sampleSnapshot()

	rec, err := s.CreateBooking(context.Background(), snap)
	require.NoError(t, err)

	snap.Items[0].Quantity = 99
	snap.Items[0].SystemSize = "20kW"
	rec.Items[1].Price = 1

	stored, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Empty(t, stored.Items[0].SystemSize)
	assert.Equal(t, 300.0, stored.Items[1].Price)
}

func TestCreateBooking_LedgerFailureLeavesStoreUntouched(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("mongo down")}
	s := newTestStore(ledger, time.Now())

	rec, err := s.CreateBooking(context.Background(), sampleSnapshot())
	assert.Error(t, err)
	assert.Nil(t, rec)
	assert.Empty(t, s.Bookings())
}

func TestCreateBooking_WritesLedger(t *testing.T) {
	ledger := &fakeLedger{}
	s := newTestStore(ledger, time.Now())

	rec, err := s.CreateBooking(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	require.Len(t, ledger.saved, 1)
	assert.Equal(t, rec.ID, ledger.saved[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(nil, time.Now())
	_, err := s.Get("ORD-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestIDGenerator_ObserveSkipsPastRestoredIDs(t *testing.T) {
	g := NewIDGenerator(fixedClock(time.UnixMilli(1_000)))

	g.Observe("ORD-5000")
	g.Observe("not-an-order")
	g.Observe("ORD-4000")

	assert.Equal(t, "ORD-5001", g.Next())
}

func TestRestore(t *testing.T) {
	s := newTestStore(nil, time.UnixMilli(1_000))
	history := []models.BookingRecord{
		{ID: "ORD-3000", UserID: "u1", Items: []models.CartLineItem{{ID: "a", Price: 500, Quantity: 1}}, Status: models.BookingConfirmed},
		{ID: "ORD-2000", UserID: "u1", Status: models.BookingCompleted},
	}

	s.Restore(history)
	history[0].Items[0].Quantity = 9

	list := s.Bookings()
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-3000", list[0].ID)
	assert.Equal(t, 1, list[0].Items[0].Quantity)

	rec, err := s.CreateBooking(context.Background(), sampleSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "ORD-3001", rec.ID)
	assert.Equal(t, rec.ID, s.Bookings()[0].ID)
}

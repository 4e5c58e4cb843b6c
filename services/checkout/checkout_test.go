package checkout

import (
	"context"
	"errors"
	"testing"

	"solarcare/models"
	"solarcare/services/booking"
	"solarcare/services/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBookings struct{}

func (failingBookings) CreateBooking(context.Context, models.BookingSnapshot) (*models.BookingRecord, error) {
	return nil, errors.New("ledger unavailable")
}

func setup() (*Service, *cart.Store, *booking.Store) {
	c := cart.NewStore()
	b := booking.NewStore(nil, nil)
	return NewService(c, b, "user-1", nil), c, b
}

func schedule() models.PlaceOrderRequest {
	return models.PlaceOrderRequest{
		ScheduledDate: "2026-10-20",
		ScheduledTime: "10:00 AM",
		PaymentMethod: models.PayUPI,
	}
}

func fillCart(c *cart.Store) {
	a := models.CartLineItem{ID: "a", Title: "Standard Clean", Price: 500}
	c.AddItem(a)
	c.AddItem(a)
	c.AddItem(models.CartLineItem{ID: "b", Title: "Inverter Check", Price: 300})
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, _, b := setup()

	res, err := svc.PlaceOrder(context.Background(), schedule())

	assert.Nil(t, res)
	require.ErrorIs(t, err, ErrEmptyCart)
	var rej *RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, models.OutcomeEmptyCart, rej.Outcome)
	assert.Empty(t, b.Bookings())
	assert.Equal(t, StateIdle, svc.State())
}

func TestPlaceOrder_EmptyCartCheckedFirst(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_MissingSchedule(t *testing.T) {
	cases := map[string]models.PlaceOrderRequest{
		"no date":    {ScheduledTime: "10:00 AM"},
		"no time":    {ScheduledDate: "2026-10-20"},
		"blank both": {ScheduledDate: "  ", ScheduledTime: " "},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			svc, c, b := setup()
			fillCart(c)
			before := c.Items()

			res, err := svc.PlaceOrder(context.Background(), req)

			assert.Nil(t, res)
			require.ErrorIs(t, err, ErrMissingSchedule)
			var rej *RejectionError
			require.True(t, errors.As(err, &rej))
			assert.Equal(t, models.OutcomeMissingSchedule, rej.Outcome)
			assert.Equal(t, before, c.Items())
			assert.Empty(t, b.Bookings())
		})
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	svc, c, b := setup()
	fillCart(c)

	res, err := svc.PlaceOrder(context.Background(), schedule())
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeSuccess, res.Outcome)
	require.NotNil(t, res.Booking)
	assert.Equal(t, res.BookingID, res.Booking.ID)
	assert.Equal(t, 1300.0, res.Booking.TotalPrice)
	assert.Equal(t, models.BookingConfirmed, res.Booking.Status)
	assert.Equal(t, models.PayUPI, res.Booking.PaymentMethod)
	assert.Equal(t, "user-1", res.Booking.UserID)
	require.Len(t, res.Booking.Items, 2)
	assert.Equal(t, 2, res.Booking.Items[0].Quantity)
	assert.Equal(t, 0, c.TotalQuantity())
	assert.Equal(t, 0, c.Len())
	assert.Len(t, b.Bookings(), 1)
	assert.Equal(t, StateCompleted, svc.State())
}

func TestPlaceOrder_DefaultsToPayOnVisit(t *testing.T) {
	svc, c, _ := setup()
	fillCart(c)
	req := schedule()
	req.PaymentMethod = ""

	res, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.PayOnVisit, res.Booking.PaymentMethod)
}

func TestPlaceOrder_InvalidPaymentMethod(t *testing.T) {
	svc, c, b := setup()
	fillCart(c)
	req := schedule()
	req.PaymentMethod = "Card"

	_, err := svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Equal(t, 3, c.TotalQuantity())
	assert.Empty(t, b.Bookings())
}

func TestPlaceOrder_TwoOrders(t *testing.T) {
	svc, c, b := setup()

	fillCart(c)
	first, err := svc.PlaceOrder(context.Background(), schedule())
	require.NoError(t, err)

	fillCart(c)
	second, err := svc.PlaceOrder(context.Background(), schedule())
	require.NoError(t, err)

	list := b.Bookings()
	require.Len(t, list, 2)
	assert.Equal(t, second.BookingID, list[0].ID)
	assert.Equal(t, first.BookingID, list[1].ID)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestPlaceOrder_SnapshotIsolation(t *testing.T) {
	svc, c, b := setup()
	fillCart(c)

	res, err := svc.PlaceOrder(context.Background(), schedule())
	require.NoError(t, err)

	c.AddItem(models.CartLineItem{ID: "a", Title: "Standard Clean", Price: 500})
	require.NoError(t, c.UpdateItemAttribute("a", models.AttrSystemSize, "12kW"))

	stored, err := b.Get(res.BookingID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Empty(t, stored.Items[0].SystemSize)
	assert.Equal(t, 1300.0, stored.TotalPrice)
}

func TestPlaceOrder_BookingFailureKeepsCart(t *testing.T) {
	c := cart.NewStore()
	fillCart(c)
	svc := NewService(c, failingBookings{}, "user-1", nil)

	res, err := svc.PlaceOrder(context.Background(), schedule())

	assert.Nil(t, res)
	assert.Error(t, err)
	assert.Equal(t, 3, c.TotalQuantity())
	assert.Equal(t, StateIdle, svc.State())
}

func TestPlaceOrder_Transitions(t *testing.T) {
	svc, c, _ := setup()
	var trace []State
	svc.OnTransition = func(_, to State) { trace = append(trace, to) }

	_, _ = svc.PlaceOrder(context.Background(), schedule())
	assert.Equal(t, []State{StateValidating, StateRejected, StateIdle}, trace)

	trace = nil
	fillCart(c)
	_, err := svc.PlaceOrder(context.Background(), schedule())
	require.NoError(t, err)
	assert.Equal(t, []State{StateValidating, StateReady, StateSubmitting, StateCompleted}, trace)

	trace = nil
	_, _ = svc.PlaceOrder(context.Background(), schedule())
	assert.Equal(t, []State{StateIdle, StateValidating, StateRejected, StateIdle}, trace)
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"solarcare/models"
	"solarcare/services/booking"
	"solarcare/services/checkout"
	"solarcare/services/session"
	"solarcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlaceOrderHandler handles POST /api/checkout.
func (h *StoreHandler) PlaceOrderHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	// An empty body is an empty request; the checkout gates decide the outcome.
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	var res *models.PlaceOrderResult
	err := ws.Do(func(w *session.Workspace) error {
		var err error
		res, err = w.Checkout.PlaceOrder(c.Request.Context(), req)
		return err
	})

	var rej *checkout.RejectionError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, res)
	case errors.As(err, &rej):
		utils.JSONCodeError(c, http.StatusUnprocessableEntity, rej.Outcome, rej.Message)
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment method", err.Error())
	default:
		getLogger(c, h.Logger).Error("Failed to place order", zap.String("userID", ws.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not place order", "Your cart has been kept. Please try again.")
	}
}

// ListBookingsHandler handles GET /api/bookings.
func (h *StoreHandler) ListBookingsHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var list []models.BookingRecord
	_ = ws.Do(func(w *session.Workspace) error {
		list = w.Bookings.Bookings()
		return nil
	})
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *StoreHandler) GetBookingHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var rec *models.BookingRecord
	err := ws.Do(func(w *session.Workspace) error {
		var err error
		rec, err = w.Bookings.Get(c.Param("id"))
		return err
	})
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
			return
		}
		getLogger(c, h.Logger).Error("Failed to load booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not load booking", "")
		return
	}
	c.JSON(http.StatusOK, rec)
}

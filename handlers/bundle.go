// File: solarcare/handlers/bundle.go
package handlers

import (
	"solarcare/middleware"
	"solarcare/services/catalog"
	"solarcare/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Tokens middleware.TokenValidator

	// Auth endpoints
	RequestOTPHandler gin.HandlerFunc
	VerifyOTPHandler  gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc
	ListOffersHandler   gin.HandlerFunc
	ListSlotsHandler    gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc
	UpdateCartItemHandler gin.HandlerFunc
	ApplyOfferHandler     gin.HandlerFunc
	RemoveOfferHandler    gin.HandlerFunc

	// Checkout and booking endpoints
	PlaceOrderHandler   gin.HandlerFunc
	ListBookingsHandler gin.HandlerFunc
	GetBookingHandler   gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(authSvc AuthService, cat *catalog.Catalog, sessions *session.Registry, logger *zap.Logger) *HandlerBundle {
	if logger == nil {
		logger = zap.NewNop()
	}
	ah := &AuthHandler{AuthService: authSvc, Logger: logger}
	ch := &CatalogHandler{Catalog: cat, Logger: logger}
	sh := &StoreHandler{Catalog: cat, Sessions: sessions, Logger: logger}

	return &HandlerBundle{
		Tokens: authSvc,

		RequestOTPHandler: ah.RequestOTPHandler,
		VerifyOTPHandler:  ah.VerifyOTPHandler,

		ListServicesHandler: ch.ListServicesHandler,
		GetServiceHandler:   ch.GetServiceHandler,
		ListOffersHandler:   ch.ListOffersHandler,
		ListSlotsHandler:    ch.ListSlotsHandler,

		GetCartHandler:        sh.GetCartHandler,
		AddCartItemHandler:    sh.AddCartItemHandler,
		RemoveCartItemHandler: sh.RemoveCartItemHandler,
		UpdateCartItemHandler: sh.UpdateCartItemHandler,
		ApplyOfferHandler:     sh.ApplyOfferHandler,
		RemoveOfferHandler:    sh.RemoveOfferHandler,

		PlaceOrderHandler:   sh.PlaceOrderHandler,
		ListBookingsHandler: sh.ListBookingsHandler,
		GetBookingHandler:   sh.GetBookingHandler,
	}
}

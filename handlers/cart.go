package handlers

import (
	"errors"
	"net/http"

	"solarcare/models"
	"solarcare/services/cart"
	"solarcare/services/catalog"
	"solarcare/services/session"
	"solarcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StoreHandler serves the per-user cart, checkout and booking endpoints.
type StoreHandler struct {
	Catalog  *catalog.Catalog
	Sessions *session.Registry
	Logger   *zap.Logger
}

// workspace resolves the caller's workspace from the "userID" set by the
// auth middleware.
func (h *StoreHandler) workspace(c *gin.Context) (*session.Workspace, bool) {
	id, ok := c.Get("userID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return nil, false
	}
	userID, ok := id.(string)
	if !ok || userID == "" {
		getLogger(c, h.Logger).Error("Invalid user ID type", zap.Any("userID", id))
		utils.JSONError(c, http.StatusInternalServerError, "Invalid user ID type", "")
		return nil, false
	}
	return h.Sessions.Get(c.Request.Context(), userID), true
}

// GetCartHandler handles GET /api/cart.
func (h *StoreHandler) GetCartHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var snap models.CartSnapshot
	_ = ws.Do(func(w *session.Workspace) error {
		snap = w.Cart.Snapshot()
		return nil
	})
	c.JSON(http.StatusOK, snap)
}

// AddCartItemHandler handles POST /api/cart/items.
func (h *StoreHandler) AddCartItemHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req struct {
		ServiceID  string   `json:"serviceId" binding:"required"`
		SystemSize string   `json:"systemSize"`
		AddOns     []string `json:"addOns"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	item, err := h.Catalog.LineItem(req.ServiceID, req.SystemSize, req.AddOns)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound), errors.Is(err, catalog.ErrAddOnNotFound):
			utils.JSONError(c, http.StatusNotFound, "Service not found", err.Error())
		case errors.Is(err, catalog.ErrInvalidSize):
			utils.JSONError(c, http.StatusBadRequest, "Invalid system size", err.Error())
		default:
			getLogger(c, h.Logger).Error("Failed to build line item", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Could not add item", "")
		}
		return
	}

	var snap models.CartSnapshot
	err = ws.Do(func(w *session.Workspace) error {
		if err := w.Cart.CheckSystemSize(item.ID, item.SystemSize); err != nil {
			return err
		}
		w.Cart.AddItem(item)
		snap = w.Cart.Snapshot()
		return nil
	})
	if err != nil {
		if errors.Is(err, cart.ErrSystemSizeConflict) {
			utils.JSONError(c, http.StatusConflict, "Item already in cart with another system size", "Update the system size of the existing item instead.")
			return
		}
		getLogger(c, h.Logger).Error("Failed to add cart item", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not add item", "")
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// RemoveCartItemHandler handles DELETE /api/cart/items/:id.
func (h *StoreHandler) RemoveCartItemHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var snap models.CartSnapshot
	_ = ws.Do(func(w *session.Workspace) error {
		w.Cart.RemoveItem(c.Param("id"))
		snap = w.Cart.Snapshot()
		return nil
	})
	c.JSON(http.StatusOK, snap)
}

// UpdateCartItemHandler handles PATCH /api/cart/items/:id.
func (h *StoreHandler) UpdateCartItemHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	var snap models.CartSnapshot
	err := ws.Do(func(w *session.Workspace) error {
		if err := w.Cart.UpdateItemAttribute(c.Param("id"), req.Field, req.Value); err != nil {
			return err
		}
		snap = w.Cart.Snapshot()
		return nil
	})
	if err != nil {
		if errors.Is(err, cart.ErrUnsupportedAttribute) {
			utils.JSONError(c, http.StatusBadRequest, "Attribute cannot be changed", err.Error())
			return
		}
		getLogger(c, h.Logger).Error("Failed to update cart item", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not update item", "")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ApplyOfferHandler handles POST /api/cart/offers.
func (h *StoreHandler) ApplyOfferHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var req struct {
		OfferID string `json:"offerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	offer, err := h.Catalog.Offer(req.OfferID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Offer not found", err.Error())
		return
	}

	var snap models.CartSnapshot
	err = ws.Do(func(w *session.Workspace) error {
		if err := w.Cart.ApplyOffer(*offer); err != nil {
			return err
		}
		snap = w.Cart.Snapshot()
		return nil
	})
	if err != nil {
		if errors.Is(err, cart.ErrOfferAlreadyApplied) {
			utils.JSONError(c, http.StatusConflict, "Offer already applied", err.Error())
			return
		}
		getLogger(c, h.Logger).Error("Failed to apply offer", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not apply offer", "")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// RemoveOfferHandler handles DELETE /api/cart/offers/:id.
func (h *StoreHandler) RemoveOfferHandler(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	var snap models.CartSnapshot
	_ = ws.Do(func(w *session.Workspace) error {
		w.Cart.RemoveOffer(c.Param("id"))
		snap = w.Cart.Snapshot()
		return nil
	})
	c.JSON(http.StatusOK, snap)
}

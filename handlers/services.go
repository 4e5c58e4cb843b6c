package handlers

import (
	"net/http"

	"solarcare/services/catalog"
	"solarcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

// ListServicesHandler handles GET /api/catalog/services?category=.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services(c.Query("category"))})
}

// GetServiceHandler handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.Service(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListOffersHandler handles GET /api/catalog/offers.
func (h *CatalogHandler) ListOffersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offers": h.Catalog.Offers()})
}

// ListSlotsHandler handles GET /api/catalog/slots.
func (h *CatalogHandler) ListSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": h.Catalog.Schedule()})
}

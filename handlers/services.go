package handlers

import (
	"net/http"

	"barberbook/database/repository/catalog"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service catalog.
type CatalogHandler struct {
	Catalog catalogRepo.ServiceRepository
}

func NewCatalogHandler(repo catalogRepo.ServiceRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: repo}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

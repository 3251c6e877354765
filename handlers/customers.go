package handlers

import (
	"errors"
	"net/http"

	"barberbook/database/repository/customer"
	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves customer record queries and administrative edits.
// Records themselves are created and refreshed only by the booking
// transaction.
type CustomerHandler struct {
	Customers customerRepo.CustomerRepository
}

func NewCustomerHandler(repo customerRepo.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{Customers: repo}
}

// ListCustomers handles GET /api/customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Customers.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerByPhone handles GET /api/customers/:phone.
func (h *CustomerHandler) GetCustomerByPhone(c *gin.Context) {
	customer, err := h.Customers.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		if errors.Is(err, customerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", "customer not found")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /api/customers/:id with an explicit field-level
// patch.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	customer, err := h.Customers.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, customerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", "customer not found")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.Customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, customerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", "customer not found")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

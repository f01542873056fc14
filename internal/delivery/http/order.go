package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leandroveron1110/locus-delivery/internal/models"
	"github.com/leandroveron1110/locus-delivery/internal/projection"
)

// GetOrders
// @Summary GetOrders
// @Description Returns the projected order list for the active company, after visibility filtering, quick filter, search and priority sort
// @ID get-orders
// @Produce json
// @Param filter query string false "quick filter" Enums(all, pending, en_route, completed)
// @Param search query string false "substring matched against order id, customer name and phone"
// @Success 200 {object} ordersResponse
// @Failure 400 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) GetOrders(c *gin.Context) {
	filter := projection.QuickFilter(c.DefaultQuery("filter", string(projection.FilterAll)))
	if !projection.Known(filter) {
		newErrorResponse(c, http.StatusBadRequest, "unknown filter")
		return
	}
	search := c.Query("search")

	c.JSON(http.StatusOK, ordersResponse{Data: h.svc.Orders(filter, search)})
}

// GetFilterCounts
// @Summary GetFilterCounts
// @Description Returns per-quick-filter order counts over the visible list
// @ID get-filter-counts
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/orders/filters [get]
func (h *Handler) GetFilterCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.FilterCounts())
}

// GetOrderByID
// @Summary GetOrderByID
// @Description Returns a single order from the session store
// @ID get-order-by-id
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} models.Order
// @Failure 404 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrderByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}
	ord, ok := h.svc.Order(id)
	if !ok {
		newErrorResponse(c, http.StatusNotFound, "order not found")
		return
	}
	c.JSON(http.StatusOK, ord)
}

type orderActionsResponse struct {
	Status  models.OrderStatus   `json:"status"`
	Actions []models.OrderStatus `json:"actions"`
}

// GetOrderActions
// @Summary GetOrderActions
// @Description Returns the statuses the courier may request for an order, derived from its current status
// @ID get-order-actions
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} orderActionsResponse
// @Failure 404 {object} errorResponse
// @Router /api/orders/{id}/actions [get]
func (h *Handler) GetOrderActions(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	ord, ok := h.svc.Order(id)
	if !ok {
		newErrorResponse(c, http.StatusNotFound, "order not found")
		return
	}
	acts, _ := h.svc.AvailableActions(id)
	c.JSON(http.StatusOK, orderActionsResponse{Status: ord.Status, Actions: acts})
}

type changeStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// ChangeOrderStatus
// @Summary ChangeOrderStatus
// @Description Requests a status transition from the backend and stores the server-confirmed result
// @ID change-order-status
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param body body changeStatusRequest true "target status"
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/orders/{id}/status [patch]
func (h *Handler) ChangeOrderStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id")
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if !req.Status.Valid() {
		newErrorResponse(c, http.StatusBadRequest, "unknown status "+req.Status.String())
		return
	}

	updated, err := h.svc.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		proxyError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leandroveron1110/locus-delivery/internal/models"
)

// GetZones
// @Summary GetZones
// @Description Lists the active company's delivery zones
// @ID get-zones
// @Produce json
// @Success 200 {array} models.Zone
// @Failure 502 {object} errorResponse
// @Router /api/zones [get]
func (h *Handler) GetZones(c *gin.Context) {
	zones, err := h.api.ZonesByCompany(c.Request.Context(), h.svc.CompanyID())
	if err != nil {
		proxyError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

// CreateZone
// @Summary CreateZone
// @Description Creates a delivery zone for the active company
// @ID create-zone
// @Accept json
// @Produce json
// @Param body body models.Zone true "zone"
// @Success 201 {object} models.Zone
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/zones [post]
func (h *Handler) CreateZone(c *gin.Context) {
	var zone models.Zone
	if err := c.ShouldBindJSON(&zone); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	zone.CompanyID = h.svc.CompanyID()
	if zone.HasTimeLimit && (zone.StartTime == nil || zone.EndTime == nil) {
		newErrorResponse(c, http.StatusBadRequest, "time-limited zone needs startTime and endTime")
		return
	}

	created, err := h.api.CreateZone(c.Request.Context(), zone)
	if err != nil {
		proxyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateZone
// @Summary UpdateZone
// @Description Updates a delivery zone
// @ID update-zone
// @Accept json
// @Produce json
// @Param id path string true "zone id"
// @Param body body models.Zone true "zone"
// @Success 200 {object} models.Zone
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/zones/{id} [put]
func (h *Handler) UpdateZone(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing zone id")
		return
	}

	var zone models.Zone
	if err := c.ShouldBindJSON(&zone); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	zone.ID = id
	zone.CompanyID = h.svc.CompanyID()

	updated, err := h.api.UpdateZone(c.Request.Context(), zone)
	if err != nil {
		proxyError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteZone
// @Summary DeleteZone
// @Description Deletes a delivery zone
// @ID delete-zone
// @Produce json
// @Param id path string true "zone id"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/zones/{id} [delete]
func (h *Handler) DeleteZone(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing zone id")
		return
	}
	if err := h.api.DeleteZone(c.Request.Context(), id); err != nil {
		proxyError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

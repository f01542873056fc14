package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/leandroveron1110/locus-delivery/internal/backend"
)

// Login
// @Summary Login
// @Description Proxies login to the backend and keeps the returned session for subsequent calls
// @ID login
// @Accept json
// @Produce json
// @Param body body backend.Credentials true "credentials"
// @Success 200 {object} backend.AuthResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var creds backend.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	resp, err := h.api.Login(c.Request.Context(), creds)
	if err != nil {
		proxyError(c, err)
		return
	}

	h.id.SetSession(resp.AccessToken, resp.CompanyID)
	if resp.CompanyID != "" && resp.CompanyID != h.svc.CompanyID() {
		if err := h.svc.SwitchCompany(c.Request.Context(), resp.CompanyID); err != nil {
			// Session is re-targeted either way; a failed seed fetch is not fatal to login.
			logrus.WithError(err).Warn("company sync after login failed")
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Register
// @Summary Register
// @Description Proxies registration to the backend
// @ID register
// @Accept json
// @Produce json
// @Param body body backend.RegisterPayload true "registration data"
// @Success 200 {object} backend.AuthResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var payload backend.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	resp, err := h.api.Register(c.Request.Context(), payload)
	if err != nil {
		proxyError(c, err)
		return
	}

	h.id.SetSession(resp.AccessToken, resp.CompanyID)
	c.JSON(http.StatusOK, resp)
}

// GetCompanyProfile
// @Summary GetCompanyProfile
// @Description Returns the active delivery company's profile
// @ID get-company-profile
// @Produce json
// @Success 200 {object} models.DeliveryCompany
// @Failure 502 {object} errorResponse
// @Router /api/company [get]
func (h *Handler) GetCompanyProfile(c *gin.Context) {
	company, err := h.api.CompanyByID(c.Request.Context(), h.svc.CompanyID())
	if err != nil {
		proxyError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

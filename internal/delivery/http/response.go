package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/leandroveron1110/locus-delivery/internal/actions"
	"github.com/leandroveron1110/locus-delivery/internal/backend"
)

type errorResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// proxyError maps a backend failure onto our own response, preserving the
// backend's status code when its structured envelope was present.
func proxyError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.StatusCode
		if code < 400 || code > 599 {
			code = http.StatusBadGateway
		}
		newErrorResponse(c, code, apiErr.Error())
		return
	}
	if errors.Is(err, actions.ErrUnknownStatus) {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	newErrorResponse(c, http.StatusBadGateway, err.Error())
}

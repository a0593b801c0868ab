package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/internal/upstream"
	"github.com/studentportal/portal/internal/usecase/portal"
	"github.com/studentportal/portal/internal/usecase/records"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
	Retry   bool   `json:"retry,omitempty"`
}

const generalError = "general error"

// statusClientClosedRequest marks a request whose caller disconnected.
const statusClientClosedRequest = 499

// ErrorResponse writes the recoverable error body for err. Internal details
// never reach the client.
func ErrorResponse(c *gin.Context, err error) {
	var (
		upErr        upstream.UpstreamError
		malformedErr records.MalformedDataError
		missingErr   portal.MissingCredentialError
		authErr      portal.AuthMissingError
	)

	switch {
	case errors.Is(err, context.Canceled):
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.As(err, &upErr):
		upstreamErrorHandle(c, upErr)
	case errors.As(err, &malformedErr):
		msg := malformedErr.Portal.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadGateway, response{Error: msg, Message: msg, Retry: true})
	case errors.As(err, &missingErr):
		msg := missingErr.Portal.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &authErr):
		msg := authErr.Portal.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: msg, Message: msg})
	case errors.Is(err, context.DeadlineExceeded):
		msg := "the request took too long"
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, response{Error: msg, Message: msg, Retry: true})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: generalError, Message: generalError, Retry: true})
	}
}

func upstreamErrorHandle(c *gin.Context, err upstream.UpstreamError) {
	msg := err.Portal.FriendlyMessage()
	if msg == "" {
		msg = generalError
	}

	status := http.StatusBadGateway

	switch {
	case err.Kind == upstream.KindTimeout:
		status = http.StatusGatewayTimeout
	case err.Kind == upstream.KindClientError && passThrough(err.Status):
		status = err.Status
	}

	c.AbortWithStatusJSON(status, response{Error: msg, Message: msg, Retry: true})
}

func passThrough(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}

	return false
}

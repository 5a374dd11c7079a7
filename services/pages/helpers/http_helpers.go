package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-web/internal/pageerrors"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
)

// KeySessionID is the gin context key holding the page session id
const KeySessionID = "pageSessionID"

// SessionID returns the page session id set by the session middleware
func SessionID(c *gin.Context) string {
	return c.GetString(KeySessionID)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// RespondError sends err with the status MapErrorToHTTP picks and the
// page's own message.
func RespondError(c *gin.Context, handlerName string, err error, message string) {
	status, _ := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)

	fields := map[string]any{
		"handler": handlerName,
		"status":  status,
		"error":   err.Error(),
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps page and backend errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, pageerrors.ErrInvalidOption):
		return http.StatusBadRequest, pageerrors.ErrInvalidOption.Error()
	case errors.Is(err, pageerrors.ErrMissingItemReference),
		errors.Is(err, pageerrors.ErrBidTooLow),
		errors.Is(err, pageerrors.ErrMissingRefundAccount),
		errors.Is(err, pageerrors.ErrMissingFields),
		errors.Is(err, pageerrors.ErrPasswordRequired),
		errors.Is(err, pageerrors.ErrPasswordMismatch),
		errors.Is(err, pageerrors.ErrPasswordTooShort),
		errors.Is(err, pageerrors.ErrEmptyContent),
		errors.Is(err, pageerrors.ErrMissingID),
		errors.Is(err, pageerrors.ErrZipcodeRequired),
		errors.Is(err, pageerrors.ErrIDNotChecked),
		errors.Is(err, pageerrors.ErrIDRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, pageerrors.ErrNotVerified):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, pageerrors.ErrSubmissionInFlight),
		errors.Is(err, pageerrors.ErrAlreadySubmitted):
		return http.StatusConflict, err.Error()
	case errors.Is(err, pageerrors.ErrPageExpired):
		return http.StatusGone, err.Error()
	case errors.Is(err, pageerrors.ErrPaymentSDKUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, pageerrors.ErrMissingPaymentID),
		errors.Is(err, pageerrors.ErrMissingMerchantUID),
		errors.Is(err, pageerrors.ErrUnexpectedShape):
		return http.StatusBadGateway, err.Error()
	}

	if be, ok := pageerrors.AsBackend(err); ok {
		if be.Kind == pageerrors.Business {
			return http.StatusUnprocessableEntity, pageerrors.UserMessage(err, pageerrors.MsgServerError)
		}
		switch be.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusUnauthorized, pageerrors.MsgLoginRequired
		case http.StatusNotFound:
			return http.StatusNotFound, pageerrors.MsgNotFound
		case 0:
			return http.StatusBadGateway, pageerrors.MsgNoConnection
		default:
			return http.StatusBadGateway, pageerrors.UserMessage(err, pageerrors.MsgServerError)
		}
	}

	return http.StatusInternalServerError, pageerrors.MsgServerError
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

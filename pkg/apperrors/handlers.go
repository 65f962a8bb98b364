package apperrors

import (
	"github.com/gin-gonic/gin"

	"github.com/hansols27/QWER-Back-end/internal/logger"
)

// ErrorResponse is the failure envelope every endpoint returns.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// GinErrorHandler shapes errors into HTTP responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "request failed", appErr,
			"path", c.Request.URL.Path, "code", string(appErr.Code))
		if !h.Debug {
			// Internal detail stays server-side.
			appErr = New(appErr.Code, appErr.Domain, "Internal server error", appErr.HTTPCode)
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// HandleError is the shorthand the handlers use.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

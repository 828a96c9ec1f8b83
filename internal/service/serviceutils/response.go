package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/Sayed24/Employee-Management-System/internal/logger"
)

// APIResponse is the common response envelope.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ResponseSuccess writes a success envelope with the given status code.
func ResponseSuccess(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ResponseError logs err and writes an error envelope. The message is the
// user-visible part; err stays in the logs.
func ResponseError(c echo.Context, code int, message string, err error) error {
	if err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
	}
	return c.JSON(code, APIResponse{
		Status:  "error",
		Message: message,
	})
}

package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorResponse represents the structure of error responses sent to clients
type HTTPErrorResponse struct {
	Error   ErrorInfo              `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ErrorInfo contains the core error information
type ErrorInfo struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ToHTTPError converts a PdbctlError to an Echo HTTP error
func ToHTTPError(err error) error {
	if pe, ok := err.(*PdbctlError); ok {
		return echo.NewHTTPError(pe.GetHTTPStatus(), HTTPErrorResponse{
			Error: ErrorInfo{
				Code:    pe.Code,
				Message: pe.Message,
				Details: pe.Details,
			},
			Context: pe.Context,
		})
	}

	// For non-PdbctlError, create a generic internal error
	return echo.NewHTTPError(http.StatusInternalServerError, HTTPErrorResponse{
		Error: ErrorInfo{
			Code:    ErrInternal,
			Message: "Internal server error",
			Details: err.Error(),
		},
	})
}

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zephyrtronium/postfix"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	// Kind classifies expression errors: "malformed", "unbalanced", or
	// "division_by_zero".
	Kind   string `json:"kind,omitempty"`
	Reason string `json:"reason,omitempty"`
	Pos    int    `json:"pos,omitempty"`
}

// ValidationError is a request that cannot be evaluated at all.
type ValidationError struct {
	Message string
	Status  int
}

func (e *ValidationError) Error() string {
	return e.Message
}

// classify maps an expression error to a status code and response body. The
// result is false if err is not an expression error.
func classify(err error) (int, ErrorResponse, bool) {
	var (
		me *postfix.MalformedExpressionError
		ue *postfix.UnbalancedParenthesesError
		de *postfix.DivisionByZeroError
	)
	switch {
	case errors.As(err, &me):
		return http.StatusBadRequest, ErrorResponse{Error: me.Error(), Kind: "malformed", Reason: me.Reason.String(), Pos: me.Pos()}, true
	case errors.As(err, &ue):
		return http.StatusBadRequest, ErrorResponse{Error: ue.Error(), Kind: "unbalanced", Pos: ue.Pos()}, true
	case errors.As(err, &de):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: de.Error(), Kind: "division_by_zero", Pos: de.Pos()}, true
	default:
		return 0, ErrorResponse{}, false
	}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if code, body, ok := classify(err); ok {
			_ = c.JSON(code, body)
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(ve.Status, ErrorResponse{Error: ve.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

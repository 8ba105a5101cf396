package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const genericFailure = "Something went wrong"

// Respond writes data inside the envelope.
func Respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{
		Status:  status,
		Message: http.StatusText(status),
		Data:    data,
	})
}

func OK(c echo.Context, data interface{}) error {
	return Respond(c, http.StatusOK, data)
}

// Invalid answers 400 with the list of request problems.
func Invalid(c echo.Context, list []Problem) error {
	return Respond(c, http.StatusBadRequest, list)
}

// Fail answers with the AppError found in err's chain. Any other error becomes a
// generic 500 so internal details never reach the client.
func Fail(c echo.Context, err error) error {
	var ae *AppError
	if !errors.As(err, &ae) {
		ae = Internal(genericFailure)
	}
	return Respond(c, ae.Status, []Problem{ae.Problem})
}

// errorHandler renders errors escaping handlers (unknown routes, bad methods) in the envelope.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		_ = Respond(c, he.Code, []Problem{{Code: "ERR_HTTP", Message: msg}})
		return
	}
	_ = Fail(c, err)
}

package adapter

import "errors"

// Errors returned by [ServerAdapter] implementations. Status-code errors are
// produced by mapHTTPError; the remaining ones describe failures where no
// usable response arrived.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrMalformedResponse means a 2xx response whose body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrTransport means the request never produced a response.
	ErrTransport = errors.New("transport failure")
	// ErrCircuitOpen means the request was short-circuited by the breaker.
	ErrCircuitOpen = errors.New("circuit open")
)

// IsNoResponse reports whether err means the server was never reached, as
// opposed to the server answering with a rejection.
func IsNoResponse(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrCircuitOpen)
}

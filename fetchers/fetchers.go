package fetchers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrClient  = errors.New("client error")
	ErrServer  = errors.New("server error")
	ErrUnknown = errors.New("unknown error")
)

// RequestError ties a transport failure to the URL that produced it.
// One RequestError never aborts the sibling requests of a batch.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func classifyStatus(statusCode int) error {
	switch {
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrClient, statusCode)
	case statusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServer, statusCode)
	default:
		return fmt.Errorf("%w: status %d", ErrUnknown, statusCode)
	}
}

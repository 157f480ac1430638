package pocket

import (
	"fmt"
	"net/http"
)

// Response is the envelope returned for every request: status, headers and
// the undecoded body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns an *APIError built from the error headers, or nil when the
// response is successful.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	code := r.Header.Get("X-Error-Code")
	if code == "" {
		code = "0"
	}
	return &APIError{
		StatusCode: r.StatusCode,
		Code:       code,
		Message:    r.Header.Get("X-Error"),
	}
}

// APIError is a non-successful API response. Pocket reports failures in the
// X-Error-Code and X-Error headers rather than in the body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

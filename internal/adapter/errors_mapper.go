package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server message. JSON error bodies contribute their "error" and "trace_id"
// fields, any other body is used verbatim.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())

	sentinel, ok := statusErrors[resp.StatusCode()]
	if !ok {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}

	fields := gjson.GetManyBytes(body, "error", "trace_id")
	message := fields[0].String()
	if message == "" {
		return strings.TrimSpace(string(body))
	}
	if traceID := fields[1].String(); traceID != "" {
		message += " (trace id " + traceID + ")"
	}
	return message
}

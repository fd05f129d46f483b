package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-uaa/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it returns the
// sentinel for the status, annotated with the problem error key or the raw
// body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := problemDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

// problemDetail extracts the error key of a problem body, falling back to
// the trimmed body.
func problemDetail(body []byte) string {
	var p models.Problem
	if err := json.Unmarshal(body, &p); err == nil && p.ErrorKey != "" {
		return p.ErrorKey
	}
	return strings.TrimSpace(string(body))
}

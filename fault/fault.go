// Package fault implements the closed error taxonomy shared by every layer.
//
// Adapters classify raw transport and protocol failures into a Fault at the
// boundary; no unclassified error is allowed to escape an adapter. The retry
// policy and the fallback selector act only on the classification, never on
// transport detail.
package fault

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anihelper/anihelper/media"
)

// Code enumerates the closed failure taxonomy.
type Code string

const (
	InvalidArg     Code = "INVALID_ARG"
	Upstream429    Code = "UPSTREAM_429"
	Upstream5xx    Code = "UPSTREAM_5XX"
	Upstream4xx    Code = "UPSTREAM_4XX"
	Timeout        Code = "TIMEOUT"
	NormalizeError Code = "NORMALIZE_ERROR"
	NotFound       Code = "NOT_FOUND"
	Cancelled      Code = "CANCELLED"
	Internal       Code = "INTERNAL"
)

// Retryable reports whether a failure with this code is eligible for another
// attempt under the backoff policy.
func (c Code) Retryable() bool {
	switch c {
	case Upstream429, Upstream5xx, Timeout:
		return true
	}
	return false
}

// Fault is a classified failure. It is a value object: once constructed it is
// never mutated, only surfaced or replaced by a more recent attempt's fault.
type Fault struct {
	Code    Code            `json:"code"`
	Message string          `json:"message"`
	Source  media.SourceTag `json:"source"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s (%s): %s", f.Code, f.Source, f.Message)
}

// Retryable reports whether the wrapped code is retryable.
func (f *Fault) Retryable() bool {
	return f.Code.Retryable()
}

// New constructs a classified failure.
func New(source media.SourceTag, code Code, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...), Source: source}
}

// As extracts the classified failure from an error chain. Any error that does
// not carry a Fault is folded into the INTERNAL code attributed to the local
// layer, so callers always observe a classified failure.
func As(err error) *Fault {
	if err == nil {
		return nil
	}

	var f *Fault
	if errors.As(err, &f) {
		return f
	}

	return New(media.TagLocal, Internal, "%s", err.Error())
}

// FromStatus classifies a non-success HTTP status code.
func FromStatus(source media.SourceTag, status int) *Fault {
	switch {
	case status == http.StatusNotFound:
		return New(source, NotFound, "resource not found on %s", source)
	case status == http.StatusTooManyRequests:
		return New(source, Upstream429, "%s rate limited the request", source)
	case status >= 500:
		return New(source, Upstream5xx, "%s returned status %d", source, status)
	case status >= 400:
		return New(source, Upstream4xx, "%s returned status %d", source, status)
	default:
		return New(source, Internal, "unexpected status %d from %s", status, source)
	}
}

// FromTransport classifies a transport-level error: context expiry maps to
// TIMEOUT, caller aborts to CANCELLED, and any other connection-class failure
// to TIMEOUT since it is indistinguishable from an unresponsive upstream and
// equally retryable.
func FromTransport(source media.SourceTag, err error) *Fault {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return New(source, Timeout, "no response from %s within the call budget", source)
	case errors.Is(err, context.Canceled):
		return New(source, Cancelled, "request to %s aborted by caller", source)
	default:
		return New(source, Timeout, "request to %s failed: %s", source, err.Error())
	}
}

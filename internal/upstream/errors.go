package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/studentportal/portal/pkg/portalerrors"
)

// Kind classifies an upstream failure.
type Kind int

const (
	KindTransport Kind = iota
	KindTimeout
	KindClientError
	KindServerError
	KindInvalidPayload
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindClientError:
		return "client error"
	case KindServerError:
		return "server error"
	case KindInvalidPayload:
		return "invalid payload"
	}

	return "unknown"
}

// ErrTimeout matches any UpstreamError of KindTimeout with errors.Is.
var ErrTimeout = errors.New("upstream timeout")

var errStatus = errors.New("unexpected upstream status")

// UpstreamError is returned by every failed Fetch. Status is zero when no
// response was received.
type UpstreamError struct {
	Portal   portalerrors.InternalError
	Kind     Kind
	Status   int
	Endpoint Endpoint
}

func (e UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: %s (status %d): %v", e.Endpoint, e.Kind, e.Status, e.Portal.OriginalError)
	}

	return fmt.Sprintf("upstream %s: %s: %v", e.Endpoint, e.Kind, e.Portal.OriginalError)
}

func (e UpstreamError) Unwrap() error {
	return e.Portal.OriginalError
}

func (e UpstreamError) Is(target error) bool {
	return target == ErrTimeout && e.Kind == KindTimeout
}

// Timeout -.
func (e UpstreamError) Timeout() bool {
	return e.Kind == KindTimeout
}

func newError(kind Kind, endpoint Endpoint, status int, cause error) UpstreamError {
	e := UpstreamError{
		Portal:   portalerrors.CreatePortalError("UpstreamClient"),
		Kind:     kind,
		Status:   status,
		Endpoint: endpoint,
	}

	_ = e.Portal.Wrap("Fetch", string(endpoint), cause)

	switch kind {
	case KindTimeout:
		e.Portal.Message = "the academic records service took too long to answer"
	case KindClientError:
		e.Portal.Message = "the academic records service rejected the request"
	case KindServerError, KindTransport:
		e.Portal.Message = "the academic records service is unavailable"
	case KindInvalidPayload:
		e.Portal.Message = "the academic records service sent an unreadable answer"
	}

	return e
}

// classify turns a transport-level error into an UpstreamError.
func classify(endpoint Endpoint, err error) UpstreamError {
	var netErr net.Error

	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return newError(KindTimeout, endpoint, 0, err)
	}

	return newError(KindTransport, endpoint, 0, err)
}

func statusError(endpoint Endpoint, status int) UpstreamError {
	kind := KindServerError
	if status < 500 {
		kind = KindClientError
	}

	return newError(kind, endpoint, status, fmt.Errorf("%w: %d", errStatus, status))
}

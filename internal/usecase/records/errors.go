package records

import "github.com/studentportal/portal/pkg/portalerrors"

var (
	ErrRecords   = portalerrors.CreatePortalError("RecordsNormalizer")
	ErrMalformed = MalformedDataError{Portal: ErrRecords}
)

// MalformedDataError reports a record shape the normalizer cannot place.
// The whole normalization fails; no partial result is returned.
type MalformedDataError struct {
	Portal portalerrors.InternalError
}

func (e MalformedDataError) Error() string {
	return e.Portal.Error()
}

func (e MalformedDataError) Unwrap() error {
	return e.Portal.OriginalError
}

func (e MalformedDataError) Wrap(call, function string, err error) error {
	_ = e.Portal.Wrap(call, function, err)
	e.Portal.Message = "academic records could not be read"

	return e
}

package portal

import (
	"fmt"

	"github.com/studentportal/portal/pkg/portalerrors"
)

var (
	ErrPortalUseCase     = portalerrors.CreatePortalError("PortalUseCase")
	ErrAuthMissing       = AuthMissingError{Portal: ErrPortalUseCase}
	ErrMissingCredential = MissingCredentialError{Portal: ErrPortalUseCase}
)

// AuthMissingError is returned when a protected resource is asked for
// without a session token.
type AuthMissingError struct {
	Portal portalerrors.InternalError
}

func (e AuthMissingError) Error() string {
	return e.Portal.Error()
}

func (e AuthMissingError) Wrap(call, function string, err error) error {
	_ = e.Portal.Wrap(call, function, err)
	e.Portal.Message = "you are not signed in"

	return e
}

// MissingCredentialError names the cookie a resource needed but did not get.
type MissingCredentialError struct {
	Portal     portalerrors.InternalError
	Credential string
}

func (e MissingCredentialError) Error() string {
	return e.Portal.Error()
}

func (e MissingCredentialError) Wrap(call, credential string) error {
	e.Credential = credential
	_ = e.Portal.Wrap(call, credential, nil)
	e.Portal.Message = fmt.Sprintf("the session is missing %q", credential)

	return e
}

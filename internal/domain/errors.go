package domain

import "errors"

// Error is a domain error carrying a stable code. The code doubles as the
// i18n key suffix ("error.<code>") for user-facing messages.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrEventNotFound       = newError("event_not_found", "event not found")
	ErrEventTypeNotFound   = newError("event_type_not_found", "event type not found")
	ErrAddressNotFound     = newError("address_not_found", "address not found")
	ErrMenuNotFound        = newError("menu_not_found", "menu not found")
	ErrPageNotFound        = newError("page_not_found", "page not found")
	ErrViewerNotFound      = newError("viewer_not_found", "viewer not found")
	ErrEventNotSaved       = newError("event_not_saved", "event has not been saved yet")
	ErrEventRequired       = newError("event_required", "expected exactly one event")
	ErrRegistrationExists  = newError("registration_exists", "already registered to this event")
	ErrEventFull           = newError("event_full", "no seats left for this event")
	ErrInvalidSlug         = newError("invalid_slug", "invalid event slug")
	ErrInvalidRegistration = newError("invalid_registration", "a name and an email are required")
	ErrForbidden           = newError("forbidden", "login required")
)

// Code extracts the domain error code from err, or "" when err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}

// IsNotFound reports whether err wraps one of the not-found domain errors.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrEventNotFound, ErrEventTypeNotFound, ErrAddressNotFound,
		ErrMenuNotFound, ErrPageNotFound, ErrViewerNotFound, ErrInvalidSlug,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

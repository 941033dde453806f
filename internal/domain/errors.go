package domain

import "errors"

// Request validation errors.
var (
	ErrNoAuthorization   = errors.New("no authorization given")
	ErrUserNameMissing   = errors.New("no user name in token")
	ErrDomainNameMissing = errors.New("no domain name provided")
)

// Authorization errors.
var (
	ErrUserNotInGroup = errors.New("user not in group for requested domain")
)

// Provisioning errors.
var (
	ErrDomainNotFound            = errors.New("studio domain not found")
	ErrUnrecoverableProvisioning = errors.New("unrecoverable error from SageMaker API")
)

// Gateway-internal errors. These never cross the handler boundary: the
// usecase consumes them as expected branches of the ensure-profile step.
var (
	ErrProfileNotFound      = errors.New("user profile not found")
	ErrProfileAlreadyExists = errors.New("user profile already exists")
)

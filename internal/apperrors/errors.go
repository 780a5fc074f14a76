package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAuthFailure indicates bad credentials. Unknown user and wrong password both map here.
var ErrAuthFailure = errors.New("invalid username or password")

// ErrAccessDenied indicates that the requester may not see or change the resource.
var ErrAccessDenied = errors.New("access denied")

// ErrUnauthenticated is returned when an operation requires a session and none is present.
// It matches ErrAccessDenied under errors.Is.
var ErrUnauthenticated = fmt.Errorf("%w: authentication required", ErrAccessDenied)

// ErrStorage indicates that an attachment could not be written to or removed from storage.
var ErrStorage = errors.New("attachment storage error")

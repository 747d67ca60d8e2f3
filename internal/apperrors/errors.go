package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDomain indicates that a business rule was violated, e.g. a goal contribution
// exceeding the target or a loan with a non-positive principal.
var ErrDomain = errors.New("domain rule violation")

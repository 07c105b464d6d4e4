package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoSelection indicates that a bulk action was requested with nothing selected.
var ErrNoSelection = errors.New("no transactions selected")

// ErrAIUnavailable indicates that the AI service is not configured.
var ErrAIUnavailable = errors.New("ai service unavailable")

package model

import "errors"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrAccessDenied      = errors.New("access denied")
	ErrEditWindowExpired = errors.New("edit window expired")
)

package utils

import "errors"

var (
	ErrUnknownCategory  = errors.New("unknown trip category")
	ErrSessionNotFound  = errors.New("planning session not found")
	ErrInvalidSelection = errors.New("selection not in catalog")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPackageNotFound  = errors.New("package not found")
	ErrContentAPIError  = errors.New("content api error")
	ErrMalformedCatalog = errors.New("malformed catalog fixture")
)

package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidGateway indicates an unrecognized payment gateway selector.
	ErrInvalidGateway = errors.New("invalid gateway")
	// ErrValidation indicates a malformed or incomplete client request.
	ErrValidation = errors.New("validation failed")
	// ErrSignatureMismatch indicates a webhook whose signature did not verify.
	ErrSignatureMismatch = errors.New("signature verification failed")
)

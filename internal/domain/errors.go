package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrInvalidRecord = errors.New("invalid health record")
)

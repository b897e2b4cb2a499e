package application

import "errors"

var (
	ErrNotFound   = errors.New("application not found")
	ErrValidation = errors.New("invalid application")
)

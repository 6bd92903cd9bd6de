package domain

import "errors"

var (
	ErrVideoNotFound = errors.New("video not found")
)

package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert admin")
	ErrFailedToGet    = errors.New("failed to get admin")
	ErrNoFilter       = errors.New("admin lookup needs an id or an email")
)

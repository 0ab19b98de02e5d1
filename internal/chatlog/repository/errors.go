package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert chat log")
	ErrFailedToList   = errors.New("failed to list chat logs")
)

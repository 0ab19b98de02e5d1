package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert report")
	ErrFailedToList   = errors.New("failed to list reports")
	ErrFailedToUpdate = errors.New("failed to update report")
)

package chat

import "errors"

var (
	ErrEmptyQuestion  = errors.New("question is required")
	ErrEmptySessionID = errors.New("session id is required")
)

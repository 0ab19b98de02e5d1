package chatlog

import "errors"

var (
	ErrInvalidPayload = errors.New("session_id, message and response are required")
)

package nlu

import "errors"

var (
	ErrEmptyQuestion     = errors.New("nlu: question is empty")
	ErrMalformedResponse = errors.New("nlu: classifier returned malformed JSON")
)

package document

import "errors"

var (
	ErrEmptyQuery     = errors.New("query is empty")
	ErrEmptyDirectory = errors.New("ingest directory is empty")
	ErrNoDocuments    = errors.New("no .txt or .md documents found")
	ErrInvalidChunk   = errors.New("chunk overlap must be smaller than chunk size")
)

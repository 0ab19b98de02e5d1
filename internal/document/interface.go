package document

import "context"

// UseCase owns the document corpus: ingestion into the vector store and
// passage retrieval for answer generation.
type UseCase interface {
	// Retrieve returns up to limit passages most similar to query.
	Retrieve(ctx context.Context, query string, limit int) ([]Passage, error)
	// Ingest reads every .txt and .md file under dir, chunks it and stores the vectors.
	Ingest(ctx context.Context, dir string) (IngestResult, error)
}

package usecase

import (
	"context"

	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/document/repository"
	pkgLog "uxo-chatbot/pkg/log"
)

// Options tunes chunking, batching and retrieval. Zero values take the package defaults.
type Options struct {
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
	TopK         int
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.VectorRepository
	splitter splitter
	batch    int
	topK     int
}

// New creates the document use case.
func New(l pkgLog.Logger, repo repository.VectorRepository, opt Options) document.UseCase {
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = document.DefaultChunkSize
	}
	if opt.ChunkOverlap < 0 {
		opt.ChunkOverlap = 0
	}
	if opt.ChunkOverlap >= opt.ChunkSize {
		l.Warnf(context.Background(), "internal.document.usecase.New: %v (size=%d overlap=%d), using size/5",
			document.ErrInvalidChunk, opt.ChunkSize, opt.ChunkOverlap)
		opt.ChunkOverlap = opt.ChunkSize / 5
	}
	if opt.BatchSize <= 0 {
		opt.BatchSize = document.DefaultBatchSize
	}
	if opt.TopK <= 0 {
		opt.TopK = document.DefaultTopK
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		splitter: splitter{size: opt.ChunkSize, overlap: opt.ChunkOverlap},
		batch:    opt.BatchSize,
		topK:     opt.TopK,
	}
}

package usecase

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"uxo-chatbot/internal/document"
)

var ingestExtensions = map[string]bool{".txt": true, ".md": true}

// Ingest walks dir, cleans and chunks every text document and upserts the
// chunks in batches. Sources are stored relative to dir so ids stay stable.
func (uc *implUseCase) Ingest(ctx context.Context, dir string) (document.IngestResult, error) {
	var result document.IngestResult
	if strings.TrimSpace(dir) == "" {
		return result, document.ErrEmptyDirectory
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && ingestExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("walk %s: %w", dir, err)
	}
	if len(files) == 0 {
		return result, document.ErrNoDocuments
	}

	if err := uc.repo.EnsureCollection(ctx); err != nil {
		return result, err
	}

	var pending []document.Chunk
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := uc.repo.Upsert(ctx, pending); err != nil {
			return err
		}
		result.Chunks += len(pending)
		pending = nil
		return nil
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		chunks, err := uc.chunkFile(dir, path)
		if err != nil {
			return result, err
		}
		if len(chunks) == 0 {
			uc.l.Warnf(ctx, "internal.document.usecase.Ingest: %s is empty after cleaning", path)
			result.Skipped = append(result.Skipped, path)
			continue
		}
		result.Files++

		for _, c := range chunks {
			pending = append(pending, c)
			if len(pending) >= uc.batch {
				if err := flush(); err != nil {
					return result, err
				}
			}
		}
	}
	if err := flush(); err != nil {
		return result, err
	}

	uc.l.Infof(ctx, "internal.document.usecase.Ingest: %d files, %d chunks, %d skipped",
		result.Files, result.Chunks, len(result.Skipped))
	return result, nil
}

func (uc *implUseCase) chunkFile(root, path string) ([]document.Chunk, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text := cleanText(string(raw))
	if text == "" {
		return nil, nil
	}

	source, err := filepath.Rel(root, path)
	if err != nil {
		source = path
	}
	source = filepath.ToSlash(source)
	docType := classifyDocument(text)

	parts := uc.splitter.Split(text)
	chunks := make([]document.Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = document.Chunk{Source: source, DocType: docType, Index: i, Content: p}
	}
	return chunks, nil
}

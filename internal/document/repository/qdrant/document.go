package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/document/repository"
	pkgQdrant "uxo-chatbot/pkg/qdrant"
	"uxo-chatbot/pkg/voyage"
)

// pointNamespace is the DNS namespace; point ids are UUIDv5 over "source#index".
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// EnsureCollection creates the collection on first use.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	err := r.client.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: Distance},
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.qdrant.EnsureCollection: %v", err)
		return fmt.Errorf("failed to ensure collection %s: %w", r.collectionName, err)
	}
	return nil
}

// Upsert embeds the chunks in one call and stores them. Re-ingesting the same
// file overwrites its points because ids are derived from source and index.
func (r *implRepository) Upsert(ctx context.Context, chunks []document.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vectors, err := r.embedder.EmbedWithInputType(ctx, texts, voyage.InputTypeDocument)
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.qdrant.Upsert: embed: %v", err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(chunks))
	}

	points := make([]pkgQdrant.Point, len(chunks))
	for i, c := range chunks {
		points[i] = pkgQdrant.Point{
			ID:     PointID(c.Source, c.Index),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				document.PayloadContent:    c.Content,
				document.PayloadSource:     c.Source,
				document.PayloadType:       c.DocType,
				document.PayloadChunkIndex: c.Index,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "internal.document.repository.qdrant.Upsert: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Debugf(ctx, "internal.document.repository.qdrant.Upsert: stored %d chunks", len(points))
	return nil
}

// Search embeds the query and returns the nearest passages.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]document.Passage, error) {
	vectors, err := r.embedder.EmbedWithInputType(ctx, []string{opt.Query}, voyage.InputTypeQuery)
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "internal.document.repository.qdrant.Search: embed: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	req := pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       opt.Limit,
		WithPayload: true,
	}
	if opt.DocType != "" {
		req.Filter = &pkgQdrant.Filter{Must: []pkgQdrant.FieldCondition{
			{Key: document.PayloadType, Match: pkgQdrant.MatchValue{Value: opt.DocType}},
		}}
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.qdrant.Search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	passages := make([]document.Passage, 0, len(resp.Result))
	for _, scored := range resp.Result {
		content, ok := scored.Payload[document.PayloadContent].(string)
		if !ok || content == "" {
			r.l.Warnf(ctx, "internal.document.repository.qdrant.Search: point %v has no content payload", scored.ID)
			continue
		}
		passages = append(passages, toPassage(content, scored))
	}
	return passages, nil
}

// PointID returns the deterministic Qdrant id for chunk index of source.
func PointID(source string, index int) string {
	return uuid.NewSHA1(pointNamespace, []byte(fmt.Sprintf("%s#%d", source, index))).String()
}

func toPassage(content string, scored pkgQdrant.ScoredPoint) document.Passage {
	p := document.Passage{Content: content, Score: scored.Score}
	p.Source, _ = scored.Payload[document.PayloadSource].(string)
	p.DocType, _ = scored.Payload[document.PayloadType].(string)
	// JSON numbers decode as float64.
	if idx, ok := scored.Payload[document.PayloadChunkIndex].(float64); ok {
		p.ChunkIndex = int(idx)
	}
	return p
}

package voyage

import "context"

// IVoyage embeds text for the document index. Safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedWithInputType(ctx context.Context, texts []string, inputType string) ([][]float32, error)
}

var _ IVoyage = (*Client)(nil)

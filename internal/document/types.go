package document

// Passage is a retrieved chunk with its similarity score.
type Passage struct {
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	DocType    string  `json:"type"`
	ChunkIndex int     `json:"chunk_index"`
	Score      float64 `json:"score"`
}

// Chunk is one piece of a cleaned document ready to be embedded.
type Chunk struct {
	Source  string
	DocType string
	Index   int
	Content string
}

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	Files   int      `json:"files"`
	Chunks  int      `json:"chunks"`
	Skipped []string `json:"skipped,omitempty"`
}

// ChunkOptions controls how documents are split.
type ChunkOptions struct {
	Size    int
	Overlap int
}

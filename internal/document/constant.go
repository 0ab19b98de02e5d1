package document

// Document types assigned during ingestion.
const (
	TypeSafetyGuidelines = "safety_guidelines"
	TypeContactInfo      = "contact_info"
	TypeUXOInfo          = "uxo_info"
	TypeGeneral          = "general"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultBatchSize    = 64
	DefaultTopK         = 4

	// Payload keys stored with each vector.
	PayloadContent    = "content"
	PayloadSource     = "source"
	PayloadType       = "type"
	PayloadChunkIndex = "chunk_index"
)

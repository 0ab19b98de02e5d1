package qdrant

import (
	"uxo-chatbot/internal/document/repository"
	pkgLog "uxo-chatbot/pkg/log"
	pkgQdrant "uxo-chatbot/pkg/qdrant"
	"uxo-chatbot/pkg/voyage"
)

// Distance is the similarity metric used for the document collection.
const Distance = "Cosine"

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed document repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

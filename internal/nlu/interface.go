package nlu

import (
	"context"

	"uxo-chatbot/internal/model"
)

// Classifier labels a question with one of model.KnownIntents.
type Classifier interface {
	Classify(ctx context.Context, question, language string) (Classification, error)
}

// Extractor pulls location, object-type and action mentions from a question.
type Extractor interface {
	ExtractEntities(ctx context.Context, question, language string) (model.Entities, error)
}

// UseCase is the language-understanding layer of the chatbot.
type UseCase interface {
	Classifier
	Extractor
	// Resolve classifies the question and applies session-aware follow-up
	// rules. On any failure it returns UnknownResolution together with the error.
	Resolve(ctx context.Context, in ResolveInput) (Resolution, error)
}

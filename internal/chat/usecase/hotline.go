package usecase

import (
	"context"
	"fmt"

	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/hotline"
	"uxo-chatbot/internal/model"
)

// hotlineReply answers with the number of the first location that has one.
// Locations named in the current question win; fallback (the enriched or
// combined query) is searched only when the question names none.
func (uc *implUseCase) hotlineReply(ctx context.Context, question, fallback, language string) reply {
	entities, candidates := uc.hotlineCandidates(ctx, question, language)
	if len(candidates) == 0 && fallback != "" && fallback != question {
		entities, candidates = uc.hotlineCandidates(ctx, fallback, language)
	}
	if len(candidates) == 0 {
		return reply{entities: entities, answer: chat.MessageAskLocation}
	}

	for _, loc := range candidates {
		if number, ok := uc.hotlines.Find(loc); ok {
			return reply{entities: entities, answer: fmt.Sprintf(chat.FormatHotline, loc, number)}
		}
	}
	return reply{entities: entities, answer: hotline.NotFoundMessage}
}

// hotlineCandidates returns extracted locations first, then provinces
// matched from the lexicon.
func (uc *implUseCase) hotlineCandidates(ctx context.Context, text, language string) (model.Entities, []string) {
	entities, err := uc.nlu.ExtractEntities(ctx, text, language)
	if err != nil {
		uc.l.Warnf(ctx, "%s: entity extraction failed: %v", chat.LogPrefixAnswer, err)
		entities = model.EmptyEntities()
	}
	candidates := appendUnique(nil, entities.Locations...)
	return entities, appendUnique(candidates, uc.lex.MatchProvinces(text)...)
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		seen := false
		for _, d := range dst {
			if d == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"uxo-chatbot/internal/lexicon"
	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/pkg/vntext"
)

func (uc *implUseCase) Resolve(ctx context.Context, in nlu.ResolveInput) (nlu.Resolution, error) {
	if strings.TrimSpace(in.Question) == "" {
		return nlu.UnknownResolution(), nlu.ErrEmptyQuestion
	}

	cls, err := uc.Classify(ctx, in.Question, in.Language)
	if err != nil {
		return nlu.UnknownResolution(), fmt.Errorf("%s: %w", nlu.LogPrefixResolve, err)
	}

	sess, err := uc.sessions.Get(ctx, in.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: session read failed: %v", nlu.LogPrefixResolve, err)
		return nlu.UnknownResolution(), fmt.Errorf("%s: %w", nlu.LogPrefixResolve, err)
	}

	res := decide(uc.lex, in.Question, cls, sess)
	if res.Intent != cls.Intent {
		uc.l.Info(ctx, "intent overridden by session context",
			"session_id", in.SessionID,
			"classified", cls.Intent,
			"resolved", res.Intent,
			"enriched_query", res.EnrichedQuery,
		)
	}
	return res, nil
}

// decide applies the follow-up rules to one classified question. It reads
// nothing but its arguments.
func decide(lex *lexicon.Lexicon, question string, cls nlu.Classification, sess model.Session) nlu.Resolution {
	words := vntext.Words(question)
	short := len(words) <= nlu.ShortQuestionWords
	awaiting := lex.IsAwaitingLocation(sess.LastAssistantMessage())

	res := nlu.Resolution{
		Intent:           cls.Intent,
		Confidence:       cls.Confidence,
		LastIntent:       sess.LastIntent,
		LastQuestion:     sess.LastQuestion,
		AwaitingLocation: awaiting,
	}

	bareLocation := lex.HasLocation(question) &&
		short &&
		!lex.HasQuestionTrigger(question) &&
		!lex.HasHotlineKeyword(question)

	if bareLocation && (awaiting || sess.LastIntent == model.IntentAskHotline) {
		res.Intent = model.IntentAskHotline
		if sess.LastQuestion != "" {
			res.EnrichedQuery = sess.LastQuestion + " " + question
		} else {
			res.EnrichedQuery = "hotline " + question
		}
	}

	if res.EnrichedQuery == "" && sess.LastQuestion != "" && len(words) <= nlu.FragmentWords {
		res.EnrichedQuery = sess.LastQuestion + " " + question
	}
	return res
}

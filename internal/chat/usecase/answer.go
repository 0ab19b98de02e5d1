package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/nlu"
)

// reply is what one dispatch path produced. turnIntent, when set, is the
// intent stored on the session turn instead of intent.
type reply struct {
	intent     string
	turnIntent string
	entities   model.Entities
	answer     string
}

func (uc *implUseCase) Answer(ctx context.Context, input chat.AnswerInput) (chat.AnswerOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return chat.AnswerOutput{}, chat.ErrEmptyQuestion
	}
	if strings.TrimSpace(input.SessionID) == "" {
		return chat.AnswerOutput{}, chat.ErrEmptySessionID
	}
	if input.Language == "" {
		input.Language = chat.DefaultLanguage
	}

	unlock := uc.sessions.Lock(input.SessionID)
	defer unlock()

	res, err := uc.nlu.Resolve(ctx, nlu.ResolveInput{
		Question:  question,
		Language:  input.Language,
		SessionID: input.SessionID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: resolve failed, continuing with %q: %v", chat.LogPrefixAnswer, res.Intent, err)
		res = uc.withSessionContext(ctx, input.SessionID, res)
	}

	r, err := uc.dispatch(ctx, question, input.Language, input.SessionID, res)
	if err != nil {
		uc.l.Errorf(ctx, "%s: session_id=%s: %v", chat.LogPrefixAnswer, input.SessionID, err)
		r = reply{intent: model.IntentError, entities: model.EmptyEntities(), answer: chat.MessageApology}
	}
	if r.intent == "" {
		r.intent = model.IntentGeneral
	}
	turnIntent := r.turnIntent
	if turnIntent == "" {
		turnIntent = r.intent
	}

	if err := uc.sessions.AppendTurn(ctx, input.SessionID, model.Turn{
		Input:     question,
		Output:    r.answer,
		Intent:    turnIntent,
		CreatedAt: time.Now(),
	}); err != nil {
		uc.l.Errorf(ctx, "%s: append turn: %v", chat.LogPrefixAnswer, err)
	}

	uc.record(ctx, input.SessionID, question, r, res.Confidence)

	memory := 0
	if turns, err := uc.sessions.RecentTurns(ctx, input.SessionID); err == nil {
		memory = len(turns) * 2
	}

	return chat.AnswerOutput{
		SessionID:    input.SessionID,
		Intent:       r.intent,
		Confidence:   res.Confidence,
		Entities:     r.entities,
		Answer:       r.answer,
		EnrichedText: res.EnrichedQuery,
		MemoryLength: memory,
	}, nil
}

// dispatch picks the first matching path: hotline, hotline follow-up, then RAG.
// A panic in any path is returned as an error.
func (uc *implUseCase) dispatch(ctx context.Context, question, language, sessionID string, res nlu.Resolution) (r reply, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("dispatch panic: %v", p)
		}
	}()

	switch {
	case res.Intent == model.IntentAskHotline || uc.lex.HasHotlineKeyword(question):
		r = uc.hotlineReply(ctx, question, res.EnrichedQuery, language)
		r.intent = model.IntentAskHotline
		return r, nil

	case res.LastIntent == model.IntentAskHotline || res.AwaitingLocation:
		combined := strings.TrimSpace(res.LastQuestion + " " + question)
		r = uc.hotlineReply(ctx, question, combined, language)
		r.intent = model.IntentAskHotline
		r.turnIntent = res.Intent
		if r.turnIntent == "" {
			r.turnIntent = model.IntentGeneral
		}
		return r, nil

	default:
		return uc.ragReply(ctx, question, language, sessionID, res)
	}
}

// withSessionContext fills the follow-up fields of a failed resolution from
// the session itself, so a classifier outage does not break hotline follow-ups.
func (uc *implUseCase) withSessionContext(ctx context.Context, sessionID string, res nlu.Resolution) nlu.Resolution {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: session read failed: %v", chat.LogPrefixAnswer, err)
		return res
	}
	res.LastIntent = sess.LastIntent
	res.LastQuestion = sess.LastQuestion
	res.AwaitingLocation = uc.lex.IsAwaitingLocation(sess.LastAssistantMessage())
	return res
}

func (uc *implUseCase) record(ctx context.Context, sessionID, question string, r reply, confidence float64) {
	if uc.chatlogs == nil {
		return
	}
	if _, err := uc.chatlogs.Record(ctx, chatlog.RecordInput{
		SessionID:  sessionID,
		Message:    question,
		Response:   r.answer,
		Intent:     r.intent,
		Entities:   r.entities,
		Confidence: confidence,
	}); err != nil {
		uc.l.Warnf(ctx, "%s: chat log not recorded: %v", chat.LogPrefixAnswer, err)
	}
}

func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, chat.ErrEmptySessionID
	}
	return uc.sessions.RecentTurns(ctx, sessionID)
}

func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return chat.ErrEmptySessionID
	}
	unlock := uc.sessions.Lock(sessionID)
	defer unlock()
	return uc.sessions.Clear(ctx, sessionID)
}

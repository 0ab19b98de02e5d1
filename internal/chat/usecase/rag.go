package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/pkg/llmprovider"
	"uxo-chatbot/pkg/vntext"
)

var errEmptyGeneration = errors.New("empty generation")

func (uc *implUseCase) ragReply(ctx context.Context, question, language, sessionID string, res nlu.Resolution) (reply, error) {
	query := question
	if res.EnrichedQuery != "" {
		query = res.EnrichedQuery
	}

	passages, err := uc.retriever.Retrieve(ctx, query, uc.topK)
	if err != nil {
		return reply{}, fmt.Errorf("retrieve: %w", err)
	}

	history, err := uc.sessions.ChatHistory(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: chat history unavailable: %v", chat.LogPrefixAnswer, err)
		history = ""
	}

	prompt := buildPrompt(res.Intent, history, passages, query, language)
	req := llmprovider.UserPrompt(chat.SystemInstruction, prompt)
	req.Temperature = chat.AnswerTemperature

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return reply{}, fmt.Errorf("generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return reply{}, errEmptyGeneration
	}

	return reply{intent: res.Intent, entities: model.EmptyEntities(), answer: text}, nil
}

func buildPrompt(intent, history string, passages []document.Passage, query, language string) string {
	if vntext.ContainsPhrase(query, "ở đâu") {
		query = chat.LocationHint + query
	}
	return fmt.Sprintf(promptFor(intent), history, renderContext(passages), query, language)
}

func promptFor(intent string) string {
	switch intent {
	case model.IntentSafetyAdvice:
		return chat.PromptSafetyAdvice
	case model.IntentLocationInfo:
		return chat.PromptLocationInfo
	case model.IntentReportUXO:
		return chat.PromptReportUXO
	default:
		return chat.PromptDefinition
	}
}

func renderContext(passages []document.Passage) string {
	if len(passages) == 0 {
		return chat.NoContext + "\n"
	}
	var b strings.Builder
	for _, p := range passages {
		fmt.Fprintf(&b, "[%s] %s\n\n", p.Source, strings.TrimSpace(p.Content))
	}
	return b.String()
}

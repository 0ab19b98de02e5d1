package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"uxo-chatbot/internal/model"
	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/pkg/llmprovider"
)

func (uc *implUseCase) Classify(ctx context.Context, question, language string) (nlu.Classification, error) {
	unknown := nlu.Classification{Intent: model.IntentUnknown}
	if strings.TrimSpace(question) == "" {
		return unknown, nlu.ErrEmptyQuestion
	}
	if language == "" {
		language = nlu.DefaultLanguage
	}

	req := llmprovider.UserPrompt("", fmt.Sprintf(nlu.PromptClassify, question, language))
	req.Temperature = nlu.ClassifierTemperature
	req.JSONOutput = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: LLM call failed: %v", nlu.LogPrefixClassify, err)
		return unknown, fmt.Errorf("%s: %w", nlu.LogPrefixClassify, err)
	}

	cls, err := parseClassification(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v: %q", nlu.LogPrefixClassify, err, truncate(resp.Text, 200))
		return unknown, err
	}

	uc.l.Infof(ctx, "%s: classified as %s (confidence %.2f)", nlu.LogPrefixClassify, cls.Intent, cls.Confidence)
	return cls, nil
}

// parseClassification reads {"intent", "confidence"}. Percent-scale
// confidences are divided by 100 and clamped to [0, 1]. Labels outside
// model.KnownIntents become "unknown" with zero confidence.
func parseClassification(text string) (nlu.Classification, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nlu.Classification{Intent: model.IntentUnknown}, nlu.ErrMalformedResponse
	}

	intent := strings.ToLower(strings.TrimSpace(gjson.Get(raw, "intent").String()))
	if !isKnownIntent(intent) {
		return nlu.Classification{Intent: model.IntentUnknown}, nil
	}

	confidence := gjson.Get(raw, "confidence").Float()
	if confidence > 1 {
		confidence /= 100
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return nlu.Classification{Intent: intent, Confidence: confidence}, nil
}

func isKnownIntent(intent string) bool {
	for _, k := range model.KnownIntents {
		if k == intent {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

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

func (uc *implUseCase) ExtractEntities(ctx context.Context, question, language string) (model.Entities, error) {
	if strings.TrimSpace(question) == "" {
		return model.EmptyEntities(), nlu.ErrEmptyQuestion
	}
	if language == "" {
		language = nlu.DefaultLanguage
	}

	req := llmprovider.UserPrompt("", fmt.Sprintf(nlu.PromptExtract, question, language))
	req.Temperature = nlu.ClassifierTemperature
	req.JSONOutput = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: LLM call failed: %v", nlu.LogPrefixExtract, err)
		return model.EmptyEntities(), fmt.Errorf("%s: %w", nlu.LogPrefixExtract, err)
	}

	ents, err := parseEntities(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", nlu.LogPrefixExtract, err)
		return model.EmptyEntities(), err
	}
	uc.l.Debug(ctx, "entities extracted", "locations", ents.Locations, "uxo_types", ents.ObjectTypes, "actions", ents.Actions)
	return ents, nil
}

// parseEntities reads {"entities": {"location": [], "uxo_type": [], "action": []}}.
// A bare object without the "entities" wrapper is accepted too.
func parseEntities(text string) (model.Entities, error) {
	raw := extractJSON(text)
	if raw == "" {
		return model.EmptyEntities(), nlu.ErrMalformedResponse
	}

	root := gjson.Get(raw, "entities")
	if !root.Exists() {
		root = gjson.Parse(raw)
	}
	return model.Entities{
		Locations:   stringList(root.Get("location")),
		ObjectTypes: stringList(root.Get("uxo_type")),
		Actions:     stringList(root.Get("action")),
	}, nil
}

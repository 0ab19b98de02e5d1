package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/internal/document"
	"uxo-chatbot/internal/hotline"
	"uxo-chatbot/internal/lexicon"
	"uxo-chatbot/internal/model"
	nluUC "uxo-chatbot/internal/nlu/usecase"
	"uxo-chatbot/internal/session"
	"uxo-chatbot/internal/session/repository/memory"
	sessionUC "uxo-chatbot/internal/session/usecase"
	"uxo-chatbot/pkg/llmprovider"
	"uxo-chatbot/pkg/log"
)

// scriptedLLM answers classification and extraction prompts per question and
// returns answer for every other prompt.
type scriptedLLM struct {
	mu       sync.Mutex
	classify map[string]string
	extract  map[string]string
	answer   string
	err      error
	prompts  []string
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prompt := req.Messages[0].Text

	switch {
	case strings.HasPrefix(prompt, "Phân tích câu hỏi"):
		for q, out := range s.classify {
			if strings.Contains(prompt, "Câu hỏi: "+q+"\n") {
				return &llmprovider.Response{Text: out}, nil
			}
		}
		return &llmprovider.Response{Text: `{"intent": "general", "confidence": 0.5}`}, nil
	case strings.HasPrefix(prompt, "Trích xuất"):
		for q, out := range s.extract {
			if strings.Contains(prompt, "Câu hỏi: "+q+"\n") {
				return &llmprovider.Response{Text: out}, nil
			}
		}
		return &llmprovider.Response{Text: `{"entities": {"location": [], "uxo_type": [], "action": []}}`}, nil
	}

	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.answer}, nil
}

type fakeRetriever struct {
	passages []document.Passage
	err      error
	panics   bool
	queries  []string
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string, limit int) ([]document.Passage, error) {
	if f.panics {
		panic("index out of range")
	}
	f.queries = append(f.queries, query)
	return f.passages, f.err
}

type fakeChatLogs struct {
	recorded []chatlog.RecordInput
	err      error
}

func (f *fakeChatLogs) Record(ctx context.Context, in chatlog.RecordInput) (chatlog.Log, error) {
	f.recorded = append(f.recorded, in)
	return chatlog.Log{}, f.err
}

func (f *fakeChatLogs) List(ctx context.Context, in chatlog.ListInput) (chatlog.ListOutput, error) {
	return chatlog.ListOutput{}, nil
}

type fixture struct {
	uc        chat.UseCase
	llm       *scriptedLLM
	retriever *fakeRetriever
	sessions  session.UseCase
	logs      *fakeChatLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)

	llm := &scriptedLLM{
		classify: map[string]string{},
		extract:  map[string]string{},
		answer:   "Bom bi là loại bom chùm.",
	}
	retriever := &fakeRetriever{passages: []document.Passage{{Content: "Bom bi (cluster bomb) ...", Source: "uxo.md"}}}
	sessions := sessionUC.New(log.NewNop(), memory.New(100, time.Hour), 5)
	logs := &fakeChatLogs{}

	uc := New(log.NewNop(), Deps{
		NLU:       nluUC.New(log.NewNop(), llm, sessions, lex),
		Sessions:  sessions,
		Retriever: retriever,
		LLM:       llm,
		Hotlines:  hotline.FromLexicon(lex),
		Lexicon:   lex,
		ChatLogs:  logs,
	})
	return &fixture{uc: uc, llm: llm, retriever: retriever, sessions: sessions, logs: logs}
}

func TestAnswer_HotlineEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q := "Số hotline Quảng Trị là gì?"
	f.llm.classify[q] = `{"intent": "ask_hotline", "confidence": 0.95}`
	f.llm.extract[q] = `{"entities": {"location": ["Quảng Trị"], "uxo_type": [], "action": []}}`

	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: q, SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "Số hotline của Quảng Trị là: 0901 941 941", out.Answer)
	assert.Equal(t, model.IntentAskHotline, out.Intent)
	assert.InDelta(t, 0.95, out.Confidence, 1e-9)
	assert.Equal(t, []string{"Quảng Trị"}, out.Entities.Locations)
	assert.Equal(t, 2, out.MemoryLength)
	assert.Empty(t, f.retriever.queries)

	turns, err := f.sessions.RecentTurns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, q, turns[0].Input)
	assert.Equal(t, model.IntentAskHotline, turns[0].Intent)

	require.Len(t, f.logs.recorded, 1)
	assert.Equal(t, "s1", f.logs.recorded[0].SessionID)
	assert.Equal(t, out.Answer, f.logs.recorded[0].Response)
}

func TestAnswer_HotlineKeywordWithoutIntent(t *testing.T) {
	f := newFixture(t)
	q := "cho mình xin sđt ở qb"
	f.llm.classify[q] = `{"intent": "general", "confidence": 0.4}`

	out, err := f.uc.Answer(context.Background(), chat.AnswerInput{Question: q, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Số hotline của Quảng Bình là: 1800 1741", out.Answer)
	assert.Equal(t, model.IntentAskHotline, out.Intent)
}

func TestAnswer_HotlineMiss(t *testing.T) {
	f := newFixture(t)
	q := "hotline Hanoi"
	f.llm.classify[q] = `{"intent": "ask_hotline", "confidence": 0.9}`
	f.llm.extract[q] = `{"entities": {"location": ["Hanoi"], "uxo_type": [], "action": []}}`

	out, err := f.uc.Answer(context.Background(), chat.AnswerInput{Question: q, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, hotline.NotFoundMessage, out.Answer)
}

func TestAnswer_ClarificationThenLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := "Cho tôi số hotline"
	f.llm.classify[first] = `{"intent": "ask_hotline", "confidence": 0.9}`

	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: first, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, chat.MessageAskLocation, out.Answer)

	f.llm.classify["Quảng Trị"] = `{"intent": "location_info", "confidence": 0.6}`
	out, err = f.uc.Answer(ctx, chat.AnswerInput{Question: "Quảng Trị", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, model.IntentAskHotline, out.Intent)
	assert.Equal(t, "Cho tôi số hotline Quảng Trị", out.EnrichedText)
	assert.Equal(t, "Số hotline của Quảng Trị là: 0901 941 941", out.Answer)
	assert.Equal(t, 4, out.MemoryLength)
}

func TestAnswer_HotlineFollowUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := "Số hotline Quảng Trị là gì?"
	f.llm.classify[first] = `{"intent": "ask_hotline", "confidence": 0.9}`
	_, err := f.uc.Answer(ctx, chat.AnswerInput{Question: first, SessionID: "s1"})
	require.NoError(t, err)

	second := "Còn Quảng Bình thì sao"
	f.llm.classify[second] = `{"intent": "general", "confidence": 0.5}`
	f.llm.extract[second] = `{"entities": {"location": ["Quảng Bình"], "uxo_type": [], "action": []}}`

	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: second, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Số hotline của Quảng Bình là: 1800 1741", out.Answer)
	assert.Equal(t, model.IntentAskHotline, out.Intent)
	assert.Equal(t, []string{"Quảng Bình"}, out.Entities.Locations)
	assert.Empty(t, f.retriever.queries)

	// the turn keeps the resolved intent so the follow-up lasts one turn
	turns, err := f.sessions.RecentTurns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, model.IntentGeneral, turns[1].Intent)
	require.Len(t, f.logs.recorded, 2)
	assert.Equal(t, model.IntentAskHotline, f.logs.recorded[1].Intent)
}

func TestAnswer_HotlinePrefersLocationInCurrentQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := "Quảng Trị có nhiều bom không?"
	_, err := f.uc.Answer(ctx, chat.AnswerInput{Question: first, SessionID: "s1"})
	require.NoError(t, err)

	second := "hotline qb"
	f.llm.classify[second] = `{"intent": "ask_hotline", "confidence": 0.9}`

	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: second, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, first+" "+second, out.EnrichedText)
	assert.Equal(t, "Số hotline của Quảng Bình là: 1800 1741", out.Answer)
	assert.Equal(t, model.IntentAskHotline, out.Intent)
}

func TestAnswer_HotlineFollowUpSurvivesClassifierFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := "Cho tôi số hotline"
	f.llm.classify[first] = `{"intent": "ask_hotline", "confidence": 0.9}`
	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: first, SessionID: "s1"})
	require.NoError(t, err)
	require.Equal(t, chat.MessageAskLocation, out.Answer)

	f.llm.classify["Quảng Trị"] = "not json at all"
	out, err = f.uc.Answer(ctx, chat.AnswerInput{Question: "Quảng Trị", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Số hotline của Quảng Trị là: 0901 941 941", out.Answer)
	assert.Equal(t, model.IntentAskHotline, out.Intent)
	assert.Empty(t, f.retriever.queries)

	turns, err := f.sessions.RecentTurns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, model.IntentUnknown, turns[1].Intent)
}

func TestAnswer_RAG(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q := "Bom bi là gì?"
	f.llm.classify[q] = `{"intent": "definition", "confidence": 0.88}`

	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: q, SessionID: "s1", Language: "vi"})
	require.NoError(t, err)
	assert.Equal(t, "Bom bi là loại bom chùm.", out.Answer)
	assert.Equal(t, model.IntentDefinition, out.Intent)
	assert.Equal(t, []string{q}, f.retriever.queries)

	require.Len(t, f.llm.prompts, 1)
	assert.Contains(t, f.llm.prompts[0], "Bom bi (cluster bomb)")
	assert.Contains(t, f.llm.prompts[0], "Câu hỏi: "+q)
	assert.NotContains(t, f.llm.prompts[0], chat.LocationHint)
}

func TestAnswer_RAGUsesHistoryAndHints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.sessions.AppendTurn(ctx, "s1", model.Turn{Input: "Bom bi là gì?", Output: "Là bom chùm.", Intent: model.IntentDefinition}))

	q := "Khu vực nhiều bom mìn nhất ở đâu?"
	f.llm.classify[q] = `{"intent": "location_info", "confidence": 0.7}`

	_, err := f.uc.Answer(ctx, chat.AnswerInput{Question: q, SessionID: "s1"})
	require.NoError(t, err)

	require.Len(t, f.llm.prompts, 1)
	assert.Contains(t, f.llm.prompts[0], "User: Bom bi là gì?")
	assert.Contains(t, f.llm.prompts[0], chat.LocationHint+q)
	assert.Contains(t, f.llm.prompts[0], "cung cấp thông tin về khu vực")
}

func TestAnswer_RetrievalFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.retriever.err = errors.New("qdrant: connection refused")
	q := "Bom bi là gì?"
	f.llm.classify[q] = `{"intent": "definition", "confidence": 0.9}`

	out, err := f.uc.Answer(ctx, chat.AnswerInput{Question: q, SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, chat.MessageApology, out.Answer)
	assert.Equal(t, model.IntentError, out.Intent)
	assert.NotContains(t, out.Answer, "qdrant")

	turns, err := f.sessions.RecentTurns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, model.IntentError, turns[0].Intent)
	assert.Equal(t, chat.MessageApology, turns[0].Output)
}

func TestAnswer_GenerationFailure(t *testing.T) {
	f := newFixture(t)
	f.llm.err = errors.New("all providers failed")

	out, err := f.uc.Answer(context.Background(), chat.AnswerInput{Question: "Mìn là gì?", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, chat.MessageApology, out.Answer)
	assert.Equal(t, model.IntentError, out.Intent)
}

func TestAnswer_EmptyGeneration(t *testing.T) {
	f := newFixture(t)
	f.llm.answer = "   "

	out, err := f.uc.Answer(context.Background(), chat.AnswerInput{Question: "Mìn là gì?", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, chat.MessageApology, out.Answer)
}

func TestAnswer_PanicRecovered(t *testing.T) {
	f := newFixture(t)
	f.retriever.panics = true

	out, err := f.uc.Answer(context.Background(), chat.AnswerInput{Question: "Mìn là gì?", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, chat.MessageApology, out.Answer)
	assert.Equal(t, model.IntentError, out.Intent)

	// the session lock must have been released
	unlock := f.sessions.Lock("s1")
	unlock()
}

func TestAnswer_ChatLogFailureIgnored(t *testing.T) {
	f := newFixture(t)
	f.logs.err = errors.New("disk full")

	out, err := f.uc.Answer(context.Background(), chat.AnswerInput{Question: "Mìn là gì?", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Bom bi là loại bom chùm.", out.Answer)
}

func TestAnswer_InvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Answer(ctx, chat.AnswerInput{Question: "  ", SessionID: "s1"})
	assert.ErrorIs(t, err, chat.ErrEmptyQuestion)

	_, err = f.uc.Answer(ctx, chat.AnswerInput{Question: "Mìn là gì?"})
	assert.ErrorIs(t, err, chat.ErrEmptySessionID)
}

func TestAnswer_ConcurrentSameSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.uc.Answer(ctx, chat.AnswerInput{Question: fmt.Sprintf("Mìn số %d là gì?", i), SessionID: "s1"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	turns, err := f.sessions.RecentTurns(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, turns, 5)
}

func TestHistoryAndReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Answer(ctx, chat.AnswerInput{Question: "Mìn là gì?", SessionID: "s1"})
	require.NoError(t, err)

	turns, err := f.uc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, turns, 1)

	require.NoError(t, f.uc.Reset(ctx, "s1"))
	turns, err = f.uc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, turns)

	_, err = f.uc.History(ctx, "")
	assert.ErrorIs(t, err, chat.ErrEmptySessionID)
	assert.ErrorIs(t, f.uc.Reset(ctx, " "), chat.ErrEmptySessionID)
}

func TestPromptFor(t *testing.T) {
	assert.Equal(t, chat.PromptSafetyAdvice, promptFor(model.IntentSafetyAdvice))
	assert.Equal(t, chat.PromptReportUXO, promptFor(model.IntentReportUXO))
	assert.Equal(t, chat.PromptLocationInfo, promptFor(model.IntentLocationInfo))
	assert.Equal(t, chat.PromptDefinition, promptFor(model.IntentGeneral))
	assert.Equal(t, chat.PromptDefinition, promptFor(model.IntentUnknown))
}

func TestBuildPrompt_LocationHintNeedsWholeWords(t *testing.T) {
	p := buildPrompt(model.IntentDefinition, "", nil, "cho đâu có mìn", "vi")
	assert.NotContains(t, p, chat.LocationHint)
	assert.Contains(t, p, chat.NoContext)

	p = buildPrompt(model.IntentDefinition, "", nil, "mìn o dau", "vi")
	assert.Contains(t, p, chat.LocationHint)
}

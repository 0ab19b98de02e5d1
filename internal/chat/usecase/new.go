package usecase

import (
	"uxo-chatbot/internal/chat"
	"uxo-chatbot/internal/chatlog"
	"uxo-chatbot/internal/hotline"
	"uxo-chatbot/internal/lexicon"
	"uxo-chatbot/internal/nlu"
	"uxo-chatbot/internal/session"
	"uxo-chatbot/pkg/llmprovider"
	"uxo-chatbot/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	nlu       nlu.UseCase
	sessions  session.UseCase
	retriever chat.Retriever
	llm       llmprovider.Generator
	hotlines  *hotline.Directory
	lex       *lexicon.Lexicon
	chatlogs  chatlog.UseCase
	topK      int
}

var _ chat.UseCase = (*implUseCase)(nil)

// Deps groups the collaborators of the chat use case. ChatLogs may be nil.
type Deps struct {
	NLU       nlu.UseCase
	Sessions  session.UseCase
	Retriever chat.Retriever
	LLM       llmprovider.Generator
	Hotlines  *hotline.Directory
	Lexicon   *lexicon.Lexicon
	ChatLogs  chatlog.UseCase
	TopK      int
}

func New(l log.Logger, d Deps) chat.UseCase {
	topK := d.TopK
	if topK <= 0 {
		topK = chat.DefaultTopK
	}
	return &implUseCase{
		l:         l,
		nlu:       d.NLU,
		sessions:  d.Sessions,
		retriever: d.Retriever,
		llm:       d.LLM,
		hotlines:  d.Hotlines,
		lex:       d.Lexicon,
		chatlogs:  d.ChatLogs,
		topK:      topK,
	}
}
